package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/crime_radar/internal/config"
	"github.com/shenikar/crime_radar/internal/models"
	"github.com/shenikar/crime_radar/internal/webhook"
	"github.com/sirupsen/logrus"
)

type reportService struct {
	store        ReportStore
	classifier   Classifier
	synchronizer *Synchronizer
	ledger       *VoteLedger
	broadcaster  *Broadcaster
	webhook      webhook.Publisher
	logger       *logrus.Logger
	cfg          *config.Config
}

func NewReportService(
	store ReportStore,
	votes VoteStore,
	classifier Classifier,
	synchronizer *Synchronizer,
	broadcaster *Broadcaster,
	webhookPublisher webhook.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) ReportService {
	return &reportService{
		store:        store,
		classifier:   classifier,
		synchronizer: synchronizer,
		ledger:       NewVoteLedger(votes, store, synchronizer, logger, cfg),
		broadcaster:  broadcaster,
		webhook:      webhookPublisher,
		logger:       logger,
		cfg:          cfg,
	}
}

// CreateReport классифицирует и сохраняет новый отчет. Отчет вернется в
// проекцию обычным обновлением потока снапшотов.
func (s *reportService) CreateReport(ctx context.Context, input *models.CreateReportInput) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "CreateReport",
		"title":   input.Title,
	})
	log.Info("Attempting to create a new report")

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, fmt.Errorf("%w: title and description must not be empty", ErrValidation)
	}
	if !input.Position.Valid() {
		return nil, fmt.Errorf("%w: position out of range", ErrValidation)
	}

	radius := input.RadiusMeters
	if radius == 0 {
		radius = DefaultRadiusMeters
	}
	radius = clampInt(radius, MinRadiusMeters, MaxRadiusMeters)

	// Отказ классификатора не блокирует создание отчета
	category, err := s.classifier.Classify(ctx, title, description)
	if err != nil {
		log.WithError(err).Warn("Classification failed, falling back to uncategorized")
		category = models.CategoryUncategorized
	}

	report := &models.Report{
		Title:            title,
		Description:      description,
		Category:         category,
		Position:         input.Position,
		RadiusMeters:     radius,
		CrimeProbability: s.probabilitySnapshot(input.Position, category),
		Queryable:        true,
	}

	if err := s.store.Create(ctx, report); err != nil {
		log.WithError(err).Error("Failed to create report in store")
		return nil, fmt.Errorf("service: could not create report: %w", err)
	}

	if report.Category == models.CategorySevere && s.webhook != nil {
		event := webhook.SevereReportEvent{
			ReportID:     report.ID.String(),
			Title:        report.Title,
			Category:     string(report.Category),
			Latitude:     report.Position.Latitude,
			Longitude:    report.Position.Longitude,
			RadiusMeters: report.RadiusMeters,
			CreatedAt:    report.CreatedAt,
		}
		if err := s.webhook.Publish(ctx, event); err != nil {
			// Доставка вебхука не входит в гарантию создания отчета
			log.WithError(err).Error("Failed to publish severe report event")
		}
	}

	log.WithField("report_id", report.ID).Info("Report created successfully")
	return report, nil
}

// probabilitySnapshot фиксирует значение crime_probability на момент
// создания: категорийный риск в точке отчета по текущей коллекции.
// Далее поле не пересчитывается.
func (s *reportService) probabilitySnapshot(position models.Coordinate, category models.Category) int {
	collection := s.synchronizer.Collection()
	if len(Neighborhood(position, collection)) == 0 {
		return int(math.Round(category.Weight()))
	}
	return RiskByCategory(position, collection)
}

// Vote применяет голос пользователя через журнал голосов
func (s *reportService) Vote(ctx context.Context, userID string, reportID uuid.UUID, direction models.VoteDirection) error {
	return s.ledger.Vote(ctx, userID, reportID, direction)
}

// Snapshot возвращает последнее опубликованное представление
func (s *reportService) Snapshot() *models.ViewSnapshot {
	return s.synchronizer.Current()
}

// SetQuery обновляет активное состояние запроса
func (s *reportService) SetQuery(patch models.QueryPatch) {
	s.synchronizer.SetQuery(patch)
}

// SetReference обновляет опорную точку
func (s *reportService) SetReference(ref *models.Coordinate) {
	s.synchronizer.SetReference(ref)
}

// Query вычисляет разовое представление без изменения активного состояния
func (s *reportService) Query(query models.QueryState, ref *models.Coordinate) []*models.Report {
	return View(s.synchronizer.Collection(), query, ref)
}

// RiskAt возвращает обе оценки риска для точки. Значения считаются одним
// пересчетом по требованию, без инкрементального сопровождения.
func (s *reportService) RiskAt(point models.Coordinate) models.RiskAssessment {
	collection := s.synchronizer.Collection()
	return models.RiskAssessment{
		Point:                   point,
		RiskByCategory:          RiskByCategory(point, collection),
		RiskByStoredProbability: RiskByStoredProbability(point, collection),
		NeighborhoodSize:        len(Neighborhood(point, collection)),
	}
}

// SubscribeSnapshots подписывает потребителя на публикуемые представления
func (s *reportService) SubscribeSnapshots() (uint64, <-chan *models.ViewSnapshot) {
	return s.broadcaster.Subscribe()
}

// UnsubscribeSnapshots отменяет подписку потребителя
func (s *reportService) UnsubscribeSnapshots(id uint64) {
	s.broadcaster.Unsubscribe(id)
}

// Stats возвращает сводку по текущей проекции
func (s *reportService) Stats() *models.Stats {
	snapshot := s.synchronizer.Current()
	collection := s.synchronizer.Collection()

	stats := &models.Stats{
		TotalReports:    collection.Len(),
		PerCategory:     make(map[models.Category]int),
		SnapshotVersion: snapshot.Version,
		Connectivity:    snapshot.Connectivity,
	}
	for _, r := range collection.All() {
		stats.PerCategory[r.Category]++
		if r.Queryable {
			stats.QueryableCount++
		}
	}
	return stats
}
