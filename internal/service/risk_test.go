package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/crime_radar/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// riskReport собирает пригодный для пространственных операций отчет
func riskReport(category models.Category, position models.Coordinate, radiusMeters, probability int) *models.Report {
	return &models.Report{
		ID:               uuid.New(),
		Title:            "Отчет",
		Category:         category,
		Position:         position,
		RadiusMeters:     radiusMeters,
		CrimeProbability: probability,
		Queryable:        true,
	}
}

func TestRiskByCategory_AverageOverNeighborhood(t *testing.T) {
	// Подготовка
	point := models.Coordinate{Latitude: 55.75, Longitude: 37.62}
	// Все три зоны покрывают точку: (90 + 60 + 30) / 3 = 60
	collection := models.NewCollection([]*models.Report{
		riskReport(models.CategorySevere, point, 300, 0),
		riskReport(models.CategoryModerate, point, 300, 0),
		riskReport(models.CategoryLow, point, 300, 0),
	})

	// Действие
	risk := RiskByCategory(point, collection)

	// Проверки
	assert.Equal(t, 60, risk)
}

func TestRiskByCategory_EmptyNeighborhood(t *testing.T) {
	// Подготовка
	point := models.Coordinate{Latitude: 55.75, Longitude: 37.62}
	collection := models.NewCollection(nil)

	// Действие и проверки
	assert.Equal(t, 0, RiskByCategory(point, collection))
	assert.Equal(t, 0, RiskByStoredProbability(point, collection))
}

func TestNeighborhood_RespectsOwnRadius(t *testing.T) {
	// Подготовка
	point := models.Coordinate{Latitude: 55.75, Longitude: 37.62}
	// Сдвиг на 0.009 градуса широты - около километра
	far := models.Coordinate{Latitude: 55.759, Longitude: 37.62}

	narrow := riskReport(models.CategorySevere, far, 300, 0)
	wide := riskReport(models.CategorySevere, far, 2000, 0)
	collection := models.NewCollection([]*models.Report{narrow, wide})

	// Действие
	neighborhood := Neighborhood(point, collection)

	// Проверки: зона в 300 м не дотягивается до точки, зона в 2000 м покрывает
	require.Len(t, neighborhood, 1)
	assert.Equal(t, wide.ID, neighborhood[0].ID)
}

func TestNeighborhood_SkipsNonQueryable(t *testing.T) {
	// Подготовка
	point := models.Coordinate{Latitude: 55.75, Longitude: 37.62}
	broken := riskReport(models.CategorySevere, point, 300, 0)
	broken.Queryable = false
	collection := models.NewCollection([]*models.Report{broken})

	// Действие и проверки
	assert.Empty(t, Neighborhood(point, collection))
}

func TestRiskStatistics_AreIndependent(t *testing.T) {
	// Подготовка
	point := models.Coordinate{Latitude: 55.75, Longitude: 37.62}
	// Категорийный вес и сохраненная вероятность намеренно расходятся
	collection := models.NewCollection([]*models.Report{
		riskReport(models.CategorySevere, point, 300, 10),
		riskReport(models.CategorySevere, point, 300, 20),
	})

	// Действие
	byCategory := RiskByCategory(point, collection)
	byStored := RiskByStoredProbability(point, collection)

	// Проверки: две самостоятельные статистики, никакого усреднения между ними
	assert.Equal(t, 90, byCategory)
	assert.Equal(t, 15, byStored)
}

func TestRiskByCategory_RoundsToNearest(t *testing.T) {
	// Подготовка
	point := models.Coordinate{Latitude: 55.75, Longitude: 37.62}
	collection := models.NewCollection([]*models.Report{
		riskReport(models.CategorySevere, point, 300, 0),
		riskReport(models.CategorySevere, point, 300, 0),
		riskReport(models.CategoryModerate, point, 300, 0),
		riskReport(models.CategoryLow, point, 300, 0),
	})

	// Действие и проверки: (90 + 90 + 60 + 30) / 4 = 67.5 -> 68
	assert.Equal(t, 68, RiskByCategory(point, collection))
}
