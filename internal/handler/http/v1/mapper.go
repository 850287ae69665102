package v1

import (
	"github.com/shenikar/crime_radar/internal/models"
)

// DTOToCreateInput преобразует DTO создания в данные для сервиса
func DTOToCreateInput(dto CreateReportRequest) *models.CreateReportInput {
	return &models.CreateReportInput{
		Title:       dto.Title,
		Description: dto.Description,
		Position: models.Coordinate{
			Latitude:  *dto.Latitude,
			Longitude: *dto.Longitude,
		},
		RadiusMeters: dto.RadiusMeters,
	}
}

// DTOToQueryPatch преобразует DTO в патч состояния запроса и опорную точку.
// Опорная точка возвращается отдельно: она меняется только когда заданы
// обе координаты.
func DTOToQueryPatch(dto QueryStateRequest) (models.QueryPatch, *models.Coordinate) {
	patch := models.QueryPatch{
		Search:  dto.Search,
		RangeKm: dto.RangeKm,
	}
	if dto.Mode != nil {
		mode := models.SpatialMode(*dto.Mode)
		patch.Mode = &mode
	}
	if dto.SortBy != nil {
		sortBy := models.SortKey(*dto.SortBy)
		patch.SortBy = &sortBy
	}

	var ref *models.Coordinate
	if dto.Latitude != nil && dto.Longitude != nil {
		ref = &models.Coordinate{Latitude: *dto.Latitude, Longitude: *dto.Longitude}
	}
	return patch, ref
}

// ModelToReportResponse преобразует доменную модель в DTO для ответа
func ModelToReportResponse(model *models.Report) *ReportResponse {
	return &ReportResponse{
		ID:               model.ID,
		Title:            model.Title,
		Description:      model.Description,
		Category:         string(model.Category),
		Latitude:         model.Position.Latitude,
		Longitude:        model.Position.Longitude,
		RadiusMeters:     model.RadiusMeters,
		Votes:            VotesResponse{Up: model.Votes.Up, Down: model.Votes.Down},
		CrimeProbability: model.CrimeProbability,
		Queryable:        model.Queryable,
		CreatedAt:        model.CreatedAt,
	}
}

// ModelsToReportResponses преобразует список моделей в список DTO
func ModelsToReportResponses(reports []*models.Report) []*ReportResponse {
	responses := make([]*ReportResponse, 0, len(reports))
	for _, r := range reports {
		responses = append(responses, ModelToReportResponse(r))
	}
	return responses
}

// SnapshotToResponse преобразует опубликованное представление в DTO
func SnapshotToResponse(snapshot *models.ViewSnapshot) *SnapshotResponse {
	return &SnapshotResponse{
		Version:                 snapshot.Version,
		Reports:                 ModelsToReportResponses(snapshot.Reports),
		RiskByCategory:          snapshot.RiskByCategory,
		RiskByStoredProbability: snapshot.RiskByStoredProbability,
		Connectivity:            string(snapshot.Connectivity),
		ComputedAt:              snapshot.ComputedAt,
	}
}

// RiskToResponse преобразует оценку риска в DTO
func RiskToResponse(risk models.RiskAssessment) *RiskResponse {
	return &RiskResponse{
		Latitude:                risk.Point.Latitude,
		Longitude:               risk.Point.Longitude,
		RiskByCategory:          risk.RiskByCategory,
		RiskByStoredProbability: risk.RiskByStoredProbability,
		NeighborhoodSize:        risk.NeighborhoodSize,
	}
}

// StatsToResponse преобразует сводку в DTO
func StatsToResponse(stats *models.Stats) *StatsResponse {
	perCategory := make(map[string]int, len(stats.PerCategory))
	for category, count := range stats.PerCategory {
		perCategory[string(category)] = count
	}
	return &StatsResponse{
		TotalReports:    stats.TotalReports,
		QueryableCount:  stats.QueryableCount,
		PerCategory:     perCategory,
		SnapshotVersion: stats.SnapshotVersion,
		Connectivity:    string(stats.Connectivity),
	}
}
