package models

// SortKey - ключ сортировки представления
type SortKey string

const (
	SortByUpvotes   SortKey = "upvotes"
	SortByDownvotes SortKey = "downvotes"
	SortBySeverity  SortKey = "severity"
)

// SpatialMode - режим пространственной фильтрации
type SpatialMode string

const (
	// SpatialNearby оставляет только отчеты в радиусе RangeKm от опорной точки
	SpatialNearby SpatialMode = "nearby"
	// SpatialUnbounded отключает пространственный фильтр
	SpatialUnbounded SpatialMode = "unbounded"
)

// QueryState - эфемерное состояние запроса представления
type QueryState struct {
	Search  string      `json:"search"`
	Mode    SpatialMode `json:"mode"`
	RangeKm float64     `json:"range_km"`
	SortBy  SortKey     `json:"sort_by"`
}

// DefaultQueryState возвращает состояние запроса по умолчанию
func DefaultQueryState() QueryState {
	return QueryState{
		Mode:    SpatialUnbounded,
		RangeKm: 5,
		SortBy:  SortByUpvotes,
	}
}

// QueryPatch - частичное обновление состояния запроса, nil-поля не трогаются
type QueryPatch struct {
	Search  *string      `json:"search,omitempty"`
	Mode    *SpatialMode `json:"mode,omitempty"`
	RangeKm *float64     `json:"range_km,omitempty"`
	SortBy  *SortKey     `json:"sort_by,omitempty"`
}

// Apply накладывает патч на копию состояния и возвращает ее
func (p QueryPatch) Apply(base QueryState) QueryState {
	if p.Search != nil {
		base.Search = *p.Search
	}
	if p.Mode != nil {
		base.Mode = *p.Mode
	}
	if p.RangeKm != nil {
		base.RangeKm = *p.RangeKm
	}
	if p.SortBy != nil {
		base.SortBy = *p.SortBy
	}
	return base
}
