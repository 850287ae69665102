package models

import "time"

// Connectivity - состояние связи проекции с хранилищем
type Connectivity string

const (
	// ConnectivityLoading - первый снапшот еще не получен
	ConnectivityLoading Connectivity = "loading"
	// ConnectivityReady - проекция актуальна
	ConnectivityReady Connectivity = "ready"
	// ConnectivityStale - подписка потеряна, отдается последнее известное представление
	ConnectivityStale Connectivity = "stale"
)

// ViewSnapshot - неизменяемый результат пересчета представления:
// отфильтрованный и отсортированный список отчетов плюс оценки риска
// для активной опорной точки
type ViewSnapshot struct {
	Version                 uint64       `json:"version"`
	Reports                 []*Report    `json:"reports"`
	RiskByCategory          int          `json:"risk_by_category"`
	RiskByStoredProbability int          `json:"risk_by_stored_probability"`
	Connectivity            Connectivity `json:"connectivity"`
	Query                   QueryState   `json:"query"`
	Reference               *Coordinate  `json:"reference,omitempty"`
	ComputedAt              time.Time    `json:"computed_at"`
}

// RiskAssessment - обе оценки риска для произвольной точки
type RiskAssessment struct {
	Point                   Coordinate `json:"point"`
	RiskByCategory          int        `json:"risk_by_category"`
	RiskByStoredProbability int        `json:"risk_by_stored_probability"`
	NeighborhoodSize        int        `json:"neighborhood_size"`
}
