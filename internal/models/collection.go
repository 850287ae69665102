package models

import "github.com/google/uuid"

// Collection - нормализованная, дедуплицированная проекция всех отчетов.
// После сборки не изменяется: каждое обновление потока порождает новую коллекцию.
type Collection struct {
	byID    map[uuid.UUID]*Report
	ordered []*Report
}

// NewCollection собирает коллекцию из уже упорядоченного списка отчетов
func NewCollection(ordered []*Report) *Collection {
	byID := make(map[uuid.UUID]*Report, len(ordered))
	for _, r := range ordered {
		byID[r.ID] = r
	}
	return &Collection{byID: byID, ordered: ordered}
}

// Get возвращает отчет по id
func (c *Collection) Get(id uuid.UUID) (*Report, bool) {
	if c == nil {
		return nil, false
	}
	r, ok := c.byID[id]
	return r, ok
}

// All возвращает отчеты в базовом порядке (created_at по убыванию, затем id)
func (c *Collection) All() []*Report {
	if c == nil {
		return nil
	}
	return c.ordered
}

// Len возвращает количество отчетов в коллекции
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ordered)
}
