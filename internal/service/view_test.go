package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crime_radar/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewReport(title string, votes models.Votes, category models.Category) *models.Report {
	return &models.Report{
		ID:        uuid.New(),
		Title:     title,
		Category:  category,
		Position:  models.Coordinate{Latitude: 55.75, Longitude: 37.62},
		Votes:     votes,
		Queryable: true,
		CreatedAt: time.Now(),
	}
}

func TestView_TextFilterMatchesTitle(t *testing.T) {
	// Подготовка
	flooded := viewReport("Flooded street", models.Votes{}, models.CategoryLow)
	tree := viewReport("Fallen tree", models.Votes{}, models.CategoryLow)
	collection := models.NewCollection([]*models.Report{flooded, tree})

	query := models.DefaultQueryState()
	query.Search = "flood"

	// Действие
	result := View(collection, query, nil)

	// Проверки
	require.Len(t, result, 1)
	assert.Equal(t, flooded.ID, result[0].ID)
}

func TestView_TextFilterMatchesDescription(t *testing.T) {
	// Подготовка
	r := viewReport("Происшествие", models.Votes{}, models.CategoryLow)
	r.Description = "Подвал затоплен после ливня"
	collection := models.NewCollection([]*models.Report{r})

	query := models.DefaultQueryState()
	query.Search = "ЗАТОПЛЕН"

	// Действие и проверки: поиск нечувствителен к регистру
	assert.Len(t, View(collection, query, nil), 1)
}

func TestView_TextFilterDoesNotMatchAcrossFieldBoundary(t *testing.T) {
	// Подготовка: подстрока на стыке заголовка и описания
	r := viewReport("Пожар", models.Votes{}, models.CategoryLow)
	r.Description = "Вызвали наряд"
	collection := models.NewCollection([]*models.Report{r})

	query := models.DefaultQueryState()
	query.Search = "пожарвызвали"

	// Действие и проверки: поля склеиваются через пробел
	assert.Empty(t, View(collection, query, nil))

	query.Search = "пожар вызвали"
	assert.Len(t, View(collection, query, nil), 1)
}

func TestView_NearbyExcludesBeyondRange(t *testing.T) {
	// Подготовка
	ref := models.Coordinate{Latitude: 55.75, Longitude: 37.62}
	far := viewReport("Кража", models.Votes{}, models.CategoryLow)
	// Сдвиг на 0.0135 градуса широты - около полутора километров
	far.Position = models.Coordinate{Latitude: 55.7635, Longitude: 37.62}
	collection := models.NewCollection([]*models.Report{far})

	query := models.DefaultQueryState()
	query.Mode = models.SpatialNearby
	query.RangeKm = 1

	// Действие и проверки: в радиусе километра отчет не виден
	assert.Empty(t, View(collection, query, &ref))

	// Без пространственного фильтра отчет возвращается
	query.Mode = models.SpatialUnbounded
	assert.Len(t, View(collection, query, &ref), 1)

	// Расширение радиуса возвращает отчет
	query.Mode = models.SpatialNearby
	query.RangeKm = 2
	assert.Len(t, View(collection, query, &ref), 1)
}

func TestView_NearbySkipsNonQueryable(t *testing.T) {
	// Подготовка
	ref := models.Coordinate{Latitude: 55.75, Longitude: 37.62}
	broken := viewReport("Без координат", models.Votes{}, models.CategoryLow)
	broken.Queryable = false
	collection := models.NewCollection([]*models.Report{broken})

	query := models.DefaultQueryState()
	query.Mode = models.SpatialNearby

	// Действие и проверки: в nearby запись скрыта, в unbounded видна
	assert.Empty(t, View(collection, query, &ref))

	query.Mode = models.SpatialUnbounded
	assert.Len(t, View(collection, query, &ref), 1)
}

func TestView_NearbyWithoutReferenceReturnsAll(t *testing.T) {
	// Подготовка
	collection := models.NewCollection([]*models.Report{
		viewReport("Отчет", models.Votes{}, models.CategoryLow),
	})

	query := models.DefaultQueryState()
	query.Mode = models.SpatialNearby

	// Действие и проверки: без опорной точки фильтровать не по чему
	assert.Len(t, View(collection, query, nil), 1)
}

func TestView_SortByUpvotes(t *testing.T) {
	// Подготовка
	low := viewReport("Мало голосов", models.Votes{Up: 1}, models.CategoryLow)
	high := viewReport("Много голосов", models.Votes{Up: 10}, models.CategoryLow)
	collection := models.NewCollection([]*models.Report{low, high})

	// Действие
	result := View(collection, models.DefaultQueryState(), nil)

	// Проверки
	require.Len(t, result, 2)
	assert.Equal(t, high.ID, result[0].ID)
	assert.Equal(t, low.ID, result[1].ID)
}

func TestView_SortBySeverity(t *testing.T) {
	// Подготовка
	low := viewReport("Мелкое", models.Votes{Up: 100}, models.CategoryLow)
	severe := viewReport("Тяжкое", models.Votes{}, models.CategorySevere)
	collection := models.NewCollection([]*models.Report{low, severe})

	query := models.DefaultQueryState()
	query.SortBy = models.SortBySeverity

	// Действие
	result := View(collection, query, nil)

	// Проверки: голоса не влияют на сортировку по тяжести
	require.Len(t, result, 2)
	assert.Equal(t, severe.ID, result[0].ID)
}

func TestView_SortByDownvotes(t *testing.T) {
	// Подготовка
	calm := viewReport("Спокойный", models.Votes{Down: 1}, models.CategoryLow)
	contested := viewReport("Спорный", models.Votes{Down: 7}, models.CategoryLow)
	collection := models.NewCollection([]*models.Report{calm, contested})

	query := models.DefaultQueryState()
	query.SortBy = models.SortByDownvotes

	// Действие
	result := View(collection, query, nil)

	// Проверки
	require.Len(t, result, 2)
	assert.Equal(t, contested.ID, result[0].ID)
}

func TestView_StableSortPreservesBaseOrder(t *testing.T) {
	// Подготовка: одинаковые голоса, базовый порядок как в коллекции
	first := viewReport("Первый", models.Votes{Up: 5}, models.CategoryLow)
	second := viewReport("Второй", models.Votes{Up: 5}, models.CategoryLow)
	third := viewReport("Третий", models.Votes{Up: 5}, models.CategoryLow)
	collection := models.NewCollection([]*models.Report{first, second, third})

	// Действие: два пересчета подряд
	a := View(collection, models.DefaultQueryState(), nil)
	b := View(collection, models.DefaultQueryState(), nil)

	// Проверки: равные ключи не перемешиваются между пересчетами
	require.Len(t, a, 3)
	assert.Equal(t, first.ID, a[0].ID)
	assert.Equal(t, second.ID, a[1].ID)
	assert.Equal(t, third.ID, a[2].ID)
	assert.Equal(t, a, b)
}
