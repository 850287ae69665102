package models

import (
	"time"

	"github.com/google/uuid"
)

// Category - категория тяжести происшествия, присваивается классификатором
// один раз при создании и больше не пересчитывается
type Category string

const (
	CategorySevere        Category = "severe"
	CategoryModerate      Category = "moderate"
	CategoryLow           Category = "low"
	CategoryUncategorized Category = "uncategorized"
)

// ParseCategory приводит произвольную строку к известной категории.
// Неизвестные значения считаются uncategorized.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategorySevere, CategoryModerate, CategoryLow:
		return Category(s)
	default:
		return CategoryUncategorized
	}
}

// Weight возвращает вес категории для расчета риска
func (c Category) Weight() float64 {
	switch c {
	case CategorySevere:
		return 90
	case CategoryModerate:
		return 60
	default:
		// low и uncategorized имеют одинаковый вес
		return 30
	}
}

// Rank возвращает ранг категории для сортировки по тяжести
func (c Category) Rank() int {
	switch c {
	case CategorySevere:
		return 3
	case CategoryModerate:
		return 2
	case CategoryLow:
		return 1
	default:
		return 0
	}
}

// VoteDirection - направление голоса пользователя
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

// Coordinate - точка на карте в градусах WGS84
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid проверяет, что координаты лежат в допустимых пределах
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Votes - счетчики голосов, каждое поле только растет
type Votes struct {
	Up   int `json:"up"`
	Down int `json:"down"`
}

// Report - каноническая запись о происшествии после нормализации
type Report struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Category         Category   `json:"category"`
	Position         Coordinate `json:"position"`
	RadiusMeters     int        `json:"radius_meters"`
	Votes            Votes      `json:"votes"`
	CrimeProbability int        `json:"crime_probability"`
	CreatedAt        time.Time  `json:"created_at"`

	// Queryable = false, если запись не прошла валидацию обязательных полей
	// (нет позиции или голосов). Такая запись показывается в списках,
	// но исключается из всех пространственных операций.
	Queryable bool `json:"queryable"`
}

// RawReport - сырая запись из полного снапшота хранилища.
// Необязательные поля представлены указателями: хранилище может отдавать
// неполные записи, решение о дефолтах принимает только нормализатор.
type RawReport struct {
	ID               uuid.UUID
	Title            string
	Description      string
	Category         string
	Latitude         *float64
	Longitude        *float64
	RadiusMeters     *int
	VotesUp          *int
	VotesDown        *int
	CrimeProbability *int
	CreatedAt        time.Time
}
