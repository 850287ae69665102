package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shenikar/crime_radar/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// ReportStore определяет контракт адаптера хранилища отчетов.
// Хранилище отдает полные снапшоты коллекции, а не дельты.
type ReportStore interface {
	// Create сохраняет новый отчет, присваивая ему id и created_at
	Create(ctx context.Context, report *models.Report) error
	// ApplyVote атомарно увеличивает выбранный счетчик голосов на единицу
	ApplyVote(ctx context.Context, id uuid.UUID, direction models.VoteDirection) error
	// LoadAll возвращает полный снапшот коллекции
	LoadAll(ctx context.Context) ([]models.RawReport, error)
	// SubscribeAll открывает поток полных снапшотов. Канал закрывается
	// при обрыве подписки или отмене контекста.
	SubscribeAll(ctx context.Context) (<-chan []models.RawReport, error)
}

// VoteStore определяет контракт журнала голосов пользователя
type VoteStore interface {
	// Claim регистрирует пару (user, report). Возвращает false,
	// если пара уже была зарегистрирована ранее.
	Claim(ctx context.Context, userID string, reportID uuid.UUID) (bool, error)
	// Release снимает регистрацию пары - компенсация при неудачной записи голоса
	Release(ctx context.Context, userID string, reportID uuid.UUID) error
}

// Classifier определяет контракт внешнего классификатора тяжести
type Classifier interface {
	Classify(ctx context.Context, title, description string) (models.Category, error)
}

// ReportService определяет контракт бизнес-логики движка отчетов
type ReportService interface {
	// CreateReport классифицирует и сохраняет новый отчет
	CreateReport(ctx context.Context, input *models.CreateReportInput) (*models.Report, error)
	// Vote применяет голос пользователя с семантикой "ровно один раз"
	Vote(ctx context.Context, userID string, reportID uuid.UUID, direction models.VoteDirection) error
	// Snapshot возвращает последнее опубликованное представление
	Snapshot() *models.ViewSnapshot
	// SetQuery накладывает частичное обновление на состояние запроса
	// и инициирует пересчет представления
	SetQuery(patch models.QueryPatch)
	// SetReference меняет опорную точку и инициирует пересчет
	SetReference(ref *models.Coordinate)
	// Query вычисляет разовое представление, не меняя активного состояния запроса
	Query(query models.QueryState, ref *models.Coordinate) []*models.Report
	// RiskAt возвращает обе оценки риска для произвольной точки
	RiskAt(point models.Coordinate) models.RiskAssessment
	// SubscribeSnapshots подписывает потребителя на публикуемые представления
	SubscribeSnapshots() (uint64, <-chan *models.ViewSnapshot)
	// UnsubscribeSnapshots отменяет подписку и закрывает ее канал
	UnsubscribeSnapshots(id uint64)
	// Stats возвращает сводку по текущей проекции
	Stats() *models.Stats
}
