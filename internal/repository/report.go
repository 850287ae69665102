package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crime_radar/internal/config"
	"github.com/shenikar/crime_radar/internal/models"
	"github.com/shenikar/crime_radar/internal/service"
	"github.com/sirupsen/logrus"
)

// Канал NOTIFY, триггер объявлен в миграциях
const reportsChannel = "reports_changed"

type ReportRepository struct {
	db     *pgxpool.Pool
	logger *logrus.Logger
	cfg    *config.Config
}

func NewReportRepository(db *pgxpool.Pool, logger *logrus.Logger, cfg *config.Config) service.ReportStore {
	return &ReportRepository{
		db:     db,
		logger: logger,
		cfg:    cfg,
	}
}

// Create создает новую запись об отчете в бд
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO reports (title, description, category, latitude, longitude, radius_meters, crime_probability)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		report.Title,
		report.Description,
		string(report.Category),
		report.Position.Latitude,
		report.Position.Longitude,
		report.RadiusMeters,
		report.CrimeProbability,
	).Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// ApplyVote атомарно увеличивает счетчик голосов одним запросом.
// Уменьшение или изменение чужих полей невозможно по построению.
func (r *ReportRepository) ApplyVote(ctx context.Context, id uuid.UUID, direction models.VoteDirection) error {
	var query string
	switch direction {
	case models.VoteUp:
		query = `UPDATE reports SET votes_up = votes_up + 1 WHERE id = $1;`
	case models.VoteDown:
		query = `UPDATE reports SET votes_down = votes_down + 1 WHERE id = $1;`
	default:
		return fmt.Errorf("unknown vote direction: %s", direction)
	}

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to apply vote: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("report with id %s not found for vote", id)
	}
	return nil
}

// LoadAll возвращает полный снапшот коллекции отчетов
func (r *ReportRepository) LoadAll(ctx context.Context) ([]models.RawReport, error) {
	query := `
		SELECT
			id,
			title,
			description,
			category,
			latitude,
			longitude,
			radius_meters,
			votes_up,
			votes_down,
			crime_probability,
			created_at
		FROM reports
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load reports: %w", err)
	}
	defer rows.Close()

	reports := make([]models.RawReport, 0)
	for rows.Next() {
		var (
			rr                 models.RawReport
			votesUp, votesDown int
			radius, crimeProb  int
		)
		err := rows.Scan(
			&rr.ID,
			&rr.Title,
			&rr.Description,
			&rr.Category,
			&rr.Latitude,
			&rr.Longitude,
			&radius,
			&votesUp,
			&votesDown,
			&crimeProb,
			&rr.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		rr.RadiusMeters = &radius
		rr.VotesUp = &votesUp
		rr.VotesDown = &votesDown
		rr.CrimeProbability = &crimeProb
		reports = append(reports, rr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return reports, nil
}

// SubscribeAll открывает поток полных снапшотов: первичная загрузка, затем
// перечитывание коллекции по каждому NOTIFY и по периодическому таймеру.
// Закрытие канала означает обрыв подписки - переподписку ведет потребитель.
func (r *ReportRepository) SubscribeAll(ctx context.Context) (<-chan []models.RawReport, error) {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection for subscription: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+reportsChannel); err != nil {
		conn.Release()
		return nil, fmt.Errorf("failed to listen on %s: %w", reportsChannel, err)
	}

	ch := make(chan []models.RawReport, 1)
	go func() {
		defer close(ch)
		defer conn.Release()

		// Первичный полный снапшот
		if !r.emit(ctx, ch) {
			return
		}

		for {
			// Таймаут ожидания служит периодическим обновлением на случай
			// пропущенного уведомления
			waitCtx, cancel := context.WithTimeout(ctx, r.cfg.SnapshotRefreshInterval)
			_, err := conn.Conn().WaitForNotification(waitCtx)
			cancel()

			if err != nil {
				if ctx.Err() != nil {
					return
				}
				if !errors.Is(err, context.DeadlineExceeded) {
					r.logger.WithError(err).Warn("Report subscription connection lost")
					return
				}
			}

			if !r.emit(ctx, ch) {
				return
			}
		}
	}()

	return ch, nil
}

// emit загружает полный снапшот и отправляет его в канал
func (r *ReportRepository) emit(ctx context.Context, ch chan<- []models.RawReport) bool {
	raw, err := r.LoadAll(ctx)
	if err != nil {
		if ctx.Err() == nil {
			r.logger.WithError(err).Error("Failed to load snapshot for subscription")
		}
		return false
	}

	select {
	case ch <- raw:
		return true
	case <-ctx.Done():
		return false
	}
}
