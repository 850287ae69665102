package service

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/crime_radar/internal/models"
)

// Политика дефолтов, применяется в одном месте - только здесь
const (
	DefaultRadiusMeters = 300
	MinRadiusMeters     = 50
	MaxRadiusMeters     = 5000
)

// Normalize превращает сырой полный снапшот хранилища в каноническую
// коллекцию: дедупликация по id (последнее вхождение побеждает), дефолты и
// ограничения полей, пометка записей, непригодных для пространственных
// операций. Детерминирован и идемпотентен: одинаковый вход дает одинаковую
// коллекцию.
func Normalize(raw []models.RawReport) *models.Collection {
	byID := make(map[uuid.UUID]*models.Report, len(raw))
	for _, rr := range raw {
		if rr.ID == uuid.Nil {
			// Запись без идентификатора адресовать невозможно
			continue
		}
		byID[rr.ID] = normalizeOne(rr)
	}

	ordered := make([]*models.Report, 0, len(byID))
	for _, r := range byID {
		ordered = append(ordered, r)
	}

	// Базовый порядок: created_at по убыванию, при равенстве - по id.
	// Стабильная сортировка представления опирается на этот порядок.
	sort.Slice(ordered, func(i, j int) bool {
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
		}
		return ordered[i].ID.String() < ordered[j].ID.String()
	})

	return models.NewCollection(ordered)
}

func normalizeOne(rr models.RawReport) *models.Report {
	r := &models.Report{
		ID:          rr.ID,
		Title:       strings.TrimSpace(rr.Title),
		Description: strings.TrimSpace(rr.Description),
		Category:    models.ParseCategory(rr.Category),
		CreatedAt:   rr.CreatedAt,
		Queryable:   true,
	}

	// Отсутствие позиции или счетчиков голосов не удаляет запись,
	// а лишь исключает ее из пространственных операций
	if rr.Latitude == nil || rr.Longitude == nil {
		r.Queryable = false
	} else {
		r.Position = models.Coordinate{Latitude: *rr.Latitude, Longitude: *rr.Longitude}
		if !r.Position.Valid() {
			r.Queryable = false
		}
	}

	if rr.VotesUp == nil || rr.VotesDown == nil {
		r.Queryable = false
	}
	if rr.VotesUp != nil && *rr.VotesUp > 0 {
		r.Votes.Up = *rr.VotesUp
	}
	if rr.VotesDown != nil && *rr.VotesDown > 0 {
		r.Votes.Down = *rr.VotesDown
	}

	r.RadiusMeters = DefaultRadiusMeters
	if rr.RadiusMeters != nil {
		r.RadiusMeters = clampInt(*rr.RadiusMeters, MinRadiusMeters, MaxRadiusMeters)
	}

	if rr.CrimeProbability != nil {
		r.CrimeProbability = clampInt(*rr.CrimeProbability, 0, 100)
	}

	return r
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
