package service

import (
	"sort"
	"strings"

	"github.com/shenikar/crime_radar/internal/geo"
	"github.com/shenikar/crime_radar/internal/models"
)

// View - чистая проекция коллекции: текстовый фильтр, пространственный
// фильтр, стабильная сортировка. Порядок этапов фиксирован. Повторный вызов
// с теми же аргументами дает тот же результат.
func View(reports *models.Collection, query models.QueryState, ref *models.Coordinate) []*models.Report {
	result := make([]*models.Report, 0, reports.Len())

	search := strings.ToLower(strings.TrimSpace(query.Search))
	for _, r := range reports.All() {
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		if query.Mode == models.SpatialNearby && ref != nil {
			// В режиме nearby записи без валидной позиции исключаются
			if !r.Queryable {
				continue
			}
			if geo.Distance(*ref, r.Position) > query.RangeKm*1000 {
				continue
			}
		}
		result = append(result, r)
	}

	// Стабильная сортировка: равные ключи сохраняют базовый порядок,
	// чтобы позиции в интерфейсе не прыгали между пересчетами
	sort.SliceStable(result, func(i, j int) bool {
		return sortLess(result[i], result[j], query.SortBy)
	})

	return result
}

// matchesSearch ищет подстроку в склейке заголовка и описания.
// Разделитель-пробел исключает ложные совпадения на стыке полей.
func matchesSearch(r *models.Report, search string) bool {
	haystack := strings.ToLower(r.Title + " " + r.Description)
	return strings.Contains(haystack, search)
}

func sortLess(a, b *models.Report, key models.SortKey) bool {
	switch key {
	case models.SortByDownvotes:
		return a.Votes.Down > b.Votes.Down
	case models.SortBySeverity:
		return a.Category.Rank() > b.Category.Rank()
	default:
		return a.Votes.Up > b.Votes.Up
	}
}
