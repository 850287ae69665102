package models

// CreateReportInput - проверенные данные для создания отчета
type CreateReportInput struct {
	Title        string
	Description  string
	Position     Coordinate
	RadiusMeters int
}

// Stats - сводка по текущей проекции коллекции отчетов
type Stats struct {
	TotalReports    int              `json:"total_reports"`
	QueryableCount  int              `json:"queryable_count"`
	PerCategory     map[Category]int `json:"per_category"`
	SnapshotVersion uint64           `json:"snapshot_version"`
	Connectivity    Connectivity     `json:"connectivity"`
}
