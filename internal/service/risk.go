package service

import (
	"math"

	"github.com/shenikar/crime_radar/internal/geo"
	"github.com/shenikar/crime_radar/internal/models"
)

// Neighborhood возвращает отчеты, чья собственная зона влияния покрывает
// точку: пригодные для пространственных операций записи с расстоянием до
// точки не больше их radius_meters
func Neighborhood(point models.Coordinate, reports *models.Collection) []*models.Report {
	var result []*models.Report
	for _, r := range reports.All() {
		if !r.Queryable {
			continue
		}
		if geo.Distance(point, r.Position) <= float64(r.RadiusMeters) {
			result = append(result, r)
		}
	}
	return result
}

// RiskByCategory - средний вес категорий по окрестности точки,
// округленный до целого. Пустая окрестность дает 0.
// Пересчитывается по требованию, инкрементально не поддерживается.
func RiskByCategory(point models.Coordinate, reports *models.Collection) int {
	n := Neighborhood(point, reports)
	if len(n) == 0 {
		return 0
	}
	var sum float64
	for _, r := range n {
		sum += r.Category.Weight()
	}
	return int(math.Round(sum / float64(len(n))))
}

// RiskByStoredProbability - среднее сохраненных при создании значений
// crime_probability по той же окрестности. Самостоятельная статистика,
// не смешивается с RiskByCategory.
func RiskByStoredProbability(point models.Coordinate, reports *models.Collection) int {
	n := Neighborhood(point, reports)
	if len(n) == 0 {
		return 0
	}
	var sum float64
	for _, r := range n {
		sum += float64(r.CrimeProbability)
	}
	return int(math.Round(sum / float64(len(n))))
}
