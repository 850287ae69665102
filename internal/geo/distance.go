package geo

import (
	"math"

	"github.com/shenikar/crime_radar/internal/models"
)

// Средний радиус Земли в метрах (WGS84)
const earthRadiusMeters = 6371000.0

// Distance возвращает расстояние по дуге большого круга между двумя точками
// в метрах (формула гаверсинусов). Для рабочих дистанций до 20 км точность
// составляет единицы метров.
func Distance(a, b models.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	return 2 * earthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}
