package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateReportRequest DTO для создания отчета о происшествии
// @Description DTO для создания отчета о происшествии
type CreateReportRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=255"`
	Description string `json:"description" validate:"required,min=2"`
	// Координаты - указатели: нулевое значение (экватор, нулевой меридиан)
	// допустимо и не должно считаться отсутствующим
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
	RadiusMeters int      `json:"radius_meters,omitempty" validate:"omitempty,gte=50,lte=5000"`
}

// VoteRequest DTO для голосования за отчет
// @Description DTO для голосования за отчет
type VoteRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

// QueryStateRequest DTO для частичного обновления состояния запроса
// @Description DTO для частичного обновления состояния запроса
type QueryStateRequest struct {
	Search    *string  `json:"search,omitempty"`
	Mode      *string  `json:"mode,omitempty" validate:"omitempty,oneof=nearby unbounded"`
	RangeKm   *float64 `json:"range_km,omitempty" validate:"omitempty,gt=0"`
	SortBy    *string  `json:"sort_by,omitempty" validate:"omitempty,oneof=upvotes downvotes severity"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// VotesResponse счетчики голосов
type VotesResponse struct {
	Up   int `json:"up"`
	Down int `json:"down"`
}

// ReportResponse DTO для ответа с информацией об отчете
// @Description DTO для ответа с информацией об отчете
type ReportResponse struct {
	ID               uuid.UUID     `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Category         string        `json:"category"`
	Latitude         float64       `json:"latitude"`
	Longitude        float64       `json:"longitude"`
	RadiusMeters     int           `json:"radius_meters"`
	Votes            VotesResponse `json:"votes"`
	CrimeProbability int           `json:"crime_probability"`
	Queryable        bool          `json:"queryable"`
	CreatedAt        time.Time     `json:"created_at"`
}

// SnapshotResponse DTO для опубликованного представления
// @Description DTO для опубликованного представления
type SnapshotResponse struct {
	Version                 uint64            `json:"version"`
	Reports                 []*ReportResponse `json:"reports"`
	RiskByCategory          int               `json:"risk_by_category"`
	RiskByStoredProbability int               `json:"risk_by_stored_probability"`
	Connectivity            string            `json:"connectivity"`
	ComputedAt              time.Time         `json:"computed_at"`
}

// RiskResponse DTO для оценки риска в точке
// @Description DTO для оценки риска в точке
type RiskResponse struct {
	Latitude                float64 `json:"latitude"`
	Longitude               float64 `json:"longitude"`
	RiskByCategory          int     `json:"risk_by_category"`
	RiskByStoredProbability int     `json:"risk_by_stored_probability"`
	NeighborhoodSize        int     `json:"neighborhood_size"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	TotalReports    int            `json:"total_reports"`
	QueryableCount  int            `json:"queryable_count"`
	PerCategory     map[string]int `json:"per_category"`
	SnapshotVersion uint64         `json:"snapshot_version"`
	Connectivity    string         `json:"connectivity"`
}
