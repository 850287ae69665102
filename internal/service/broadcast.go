package service

import (
	"sync"
	"sync/atomic"

	"github.com/shenikar/crime_radar/internal/models"
)

// snapshotBufferSize - буфер канала подписчика; отстающий потребитель
// пропускает промежуточные версии, но всегда получит более новую
const snapshotBufferSize = 8

// Broadcaster рассылает опубликованные представления подписчикам.
// Медленные подписчики не блокируют публикацию.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[uint64]chan *models.ViewSnapshot
	nextID      atomic.Uint64
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[uint64]chan *models.ViewSnapshot),
	}
}

// Subscribe регистрирует нового подписчика и возвращает его id и канал
func (b *Broadcaster) Subscribe() (uint64, <-chan *models.ViewSnapshot) {
	id := b.nextID.Add(1)
	ch := make(chan *models.ViewSnapshot, snapshotBufferSize)

	b.mu.Lock()
	b.subscribers[id] = ch
	b.mu.Unlock()

	return id, ch
}

// Unsubscribe снимает подписку и закрывает канал подписчика
func (b *Broadcaster) Unsubscribe(id uint64) {
	b.mu.Lock()
	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
	b.mu.Unlock()
}

// Publish рассылает снапшот всем подписчикам без блокировки
func (b *Broadcaster) Publish(snapshot *models.ViewSnapshot) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- snapshot:
		default:
			// Переполненный подписчик пропускает эту версию
		}
	}
}

// SubscriberCount возвращает число активных подписчиков
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close закрывает каналы всех подписчиков
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, id)
	}
}
