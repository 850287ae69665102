package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crime_radar/internal/config"
	"github.com/shenikar/crime_radar/internal/models"
	"github.com/sirupsen/logrus"
)

// Synchronizer держит каноническую проекцию коллекции отчетов в актуальном
// состоянии и публикует неизменяемые представления при каждом изменении
// коллекции, состояния запроса или опорной точки.
//
// Жизненный цикл связи: loading -> ready -> (updating) -> ready -> ...;
// при обрыве подписки представление помечается stale и продолжает
// отдаваться, пока переподписка с экспоненциальной задержкой не восстановит
// поток. Пересчет идет на копии, предыдущее представление остается доступным
// без пауз.
type Synchronizer struct {
	store       ReportStore
	broadcaster *Broadcaster
	logger      *logrus.Logger
	cfg         *config.Config

	mu           sync.RWMutex
	reports      *models.Collection
	query        models.QueryState
	reference    *models.Coordinate
	connectivity models.Connectivity
	version      uint64
	current      *models.ViewSnapshot
}

func NewSynchronizer(store ReportStore, broadcaster *Broadcaster, logger *logrus.Logger, cfg *config.Config) *Synchronizer {
	return &Synchronizer{
		store:        store,
		broadcaster:  broadcaster,
		logger:       logger,
		cfg:          cfg,
		query:        models.DefaultQueryState(),
		connectivity: models.ConnectivityLoading,
	}
}

// Run ведет подписку на поток полных снапшотов до отмены контекста.
// Обрывы подписки не фатальны: поток долгоживущий, переподписка
// повторяется неограниченно.
func (s *Synchronizer) Run(ctx context.Context) {
	log := s.logger.WithField("service", "synchronizer")
	delay := s.cfg.ResubscribeBaseDelay

	for {
		if ctx.Err() != nil {
			return
		}

		ch, err := s.store.SubscribeAll(ctx)
		if err != nil {
			s.markStale()
			log.WithError(err).Warnf("Subscription failed. Retrying in %v", delay)
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
			delay = minDuration(delay*2, s.cfg.ResubscribeMaxDelay)
			continue
		}
		delay = s.cfg.ResubscribeBaseDelay

		if !s.consume(ctx, ch, log) {
			return
		}
		// Поток оборвался - последнее представление остается доступным как stale
		s.markStale()
		log.Warn("Snapshot stream dropped, resubscribing")
	}
}

// consume читает снапшоты из потока. Возвращает false при отмене контекста.
func (s *Synchronizer) consume(ctx context.Context, ch <-chan []models.RawReport, log *logrus.Entry) bool {
	// Ограниченное ожидание первого снапшота: его отсутствие - признак
	// деградации связи, а не фатальная ошибка
	var firstTimeout <-chan time.Time
	if s.Connectivity() == models.ConnectivityLoading {
		timer := time.NewTimer(s.cfg.FirstSnapshotTimeout)
		defer timer.Stop()
		firstTimeout = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return false
		case <-firstTimeout:
			log.Warn("No initial snapshot within timeout, connectivity degraded")
			firstTimeout = nil
		case raw, ok := <-ch:
			if !ok {
				return true
			}
			firstTimeout = nil
			s.Apply(raw)
		}
	}
}

// Apply нормализует сырой снапшот и заменяет проекцию.
// Обновления сериализованы: два применения не чередуют свои шаги.
func (s *Synchronizer) Apply(raw []models.RawReport) {
	// Нормализация - чистая функция, выполняется вне критической секции;
	// старое представление остается доступным во время пересчета
	collection := Normalize(raw)

	s.mu.Lock()
	s.reports = collection
	s.connectivity = models.ConnectivityReady
	snapshot := s.recomputeLocked()
	s.mu.Unlock()

	s.broadcaster.Publish(snapshot)
}

// SetQuery накладывает частичное обновление состояния запроса и публикует
// пересчитанное представление
func (s *Synchronizer) SetQuery(patch models.QueryPatch) {
	s.mu.Lock()
	s.query = patch.Apply(s.query)
	snapshot := s.recomputeLocked()
	s.mu.Unlock()

	s.broadcaster.Publish(snapshot)
}

// SetReference меняет опорную точку и публикует пересчитанное представление
func (s *Synchronizer) SetReference(ref *models.Coordinate) {
	s.mu.Lock()
	s.reference = ref
	snapshot := s.recomputeLocked()
	s.mu.Unlock()

	s.broadcaster.Publish(snapshot)
}

// Current возвращает последнее опубликованное представление.
// До первого снапшота возвращает пустое представление в состоянии loading.
func (s *Synchronizer) Current() *models.ViewSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return &models.ViewSnapshot{
			Connectivity: s.connectivity,
			Query:        s.query,
			ComputedAt:   time.Now().UTC(),
		}
	}
	return s.current
}

// Lookup возвращает отчет из текущей проекции
func (s *Synchronizer) Lookup(id uuid.UUID) (*models.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reports.Get(id)
}

// Collection возвращает текущую каноническую коллекцию
func (s *Synchronizer) Collection() *models.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reports
}

// QueryState возвращает активное состояние запроса и опорную точку
func (s *Synchronizer) QueryState() (models.QueryState, *models.Coordinate) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query, s.reference
}

// Connectivity возвращает текущее состояние связи
func (s *Synchronizer) Connectivity() models.Connectivity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connectivity
}

// markStale помечает последнее представление устаревшим, не удаляя его
func (s *Synchronizer) markStale() {
	s.mu.Lock()
	if s.connectivity != models.ConnectivityReady {
		s.mu.Unlock()
		return
	}
	s.connectivity = models.ConnectivityStale
	snapshot := s.recomputeLocked()
	s.mu.Unlock()

	s.broadcaster.Publish(snapshot)
}

// recomputeLocked собирает новое неизменяемое представление.
// Вызывается только под s.mu.
func (s *Synchronizer) recomputeLocked() *models.ViewSnapshot {
	s.version++

	snapshot := &models.ViewSnapshot{
		Version:      s.version,
		Reports:      View(s.reports, s.query, s.reference),
		Connectivity: s.connectivity,
		Query:        s.query,
		Reference:    s.reference,
		ComputedAt:   time.Now().UTC(),
	}
	if s.reference != nil {
		snapshot.RiskByCategory = RiskByCategory(*s.reference, s.reports)
		snapshot.RiskByStoredProbability = RiskByStoredProbability(*s.reference, s.reports)
	}

	s.current = snapshot
	return snapshot
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
