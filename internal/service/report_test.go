package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crime_radar/internal/config"
	"github.com/shenikar/crime_radar/internal/models"
	"github.com/shenikar/crime_radar/internal/service/mocks"
	"github.com/shenikar/crime_radar/internal/webhook"
	webhook_mocks "github.com/shenikar/crime_radar/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestReportService - вспомогательная функция для создания сервиса с моками
func newTestReportService(t *testing.T) (ReportService, *Synchronizer, *mocks.MockReportStore, *mocks.MockClassifier, *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockReportStore(ctrl)
	votesMock := mocks.NewMockVoteStore(ctrl)
	classifierMock := mocks.NewMockClassifier(ctrl)
	webhookMock := webhook_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		VoteMaxRetries: 3,
		VoteBaseDelay:  time.Millisecond,
	}

	broadcaster := NewBroadcaster()
	t.Cleanup(broadcaster.Close)
	synchronizer := NewSynchronizer(storeMock, broadcaster, logger, cfg)

	svc := NewReportService(storeMock, votesMock, classifierMock, synchronizer, broadcaster, webhookMock, logger, cfg)
	return svc, synchronizer, storeMock, classifierMock, webhookMock
}

func TestCreateReport_Success(t *testing.T) {
	// Подготовка
	svc, _, storeMock, classifierMock, webhookMock := newTestReportService(t)
	ctx := context.Background()
	input := &models.CreateReportInput{
		Title:       "Кража у метро",
		Description: "Вырвали телефон из рук",
		Position:    models.Coordinate{Latitude: 55.75, Longitude: 37.62},
	}

	// Ожидания
	classifierMock.EXPECT().
		Classify(ctx, input.Title, input.Description).
		Return(models.CategoryModerate, nil).
		Times(1)
	storeMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Report) error {
			// Симулируем, что БД присвоила id и created_at
			r.ID = uuid.New()
			r.CreatedAt = time.Now()
			return nil
		}).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	report, err := svc.CreateReport(ctx, input)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, report.ID)
	assert.Equal(t, models.CategoryModerate, report.Category)
	assert.Equal(t, DefaultRadiusMeters, report.RadiusMeters)
	// Пустая окрестность - вероятность равна весу собственной категории
	assert.Equal(t, 60, report.CrimeProbability)
}

func TestCreateReport_SeverePublishesWebhook(t *testing.T) {
	// Подготовка
	svc, _, storeMock, classifierMock, webhookMock := newTestReportService(t)
	ctx := context.Background()
	input := &models.CreateReportInput{
		Title:       "Вооруженное нападение",
		Description: "Ночью во дворе",
		Position:    models.Coordinate{Latitude: 55.75, Longitude: 37.62},
	}

	// Ожидания
	classifierMock.EXPECT().Classify(ctx, input.Title, input.Description).Return(models.CategorySevere, nil).Times(1)
	storeMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Report) error {
			r.ID = uuid.New()
			return nil
		}).Times(1)
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event webhook.SevereReportEvent) {
			assert.Equal(t, "severe", event.Category)
			assert.Equal(t, input.Title, event.Title)
		}).Return(nil).Times(1)

	// Действие
	report, err := svc.CreateReport(ctx, input)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.CategorySevere, report.Category)
}

func TestCreateReport_WebhookFailureDoesNotFailCreation(t *testing.T) {
	// Подготовка
	svc, _, storeMock, classifierMock, webhookMock := newTestReportService(t)
	ctx := context.Background()
	input := &models.CreateReportInput{
		Title:       "Вооруженное нападение",
		Description: "Ночью во дворе",
		Position:    models.Coordinate{Latitude: 55.75, Longitude: 37.62},
	}

	// Ожидания: доставка вебхука не входит в гарантию создания отчета
	classifierMock.EXPECT().Classify(ctx, gomock.Any(), gomock.Any()).Return(models.CategorySevere, nil).Times(1)
	storeMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("queue full")).Times(1)

	// Действие
	_, err := svc.CreateReport(ctx, input)

	// Проверки
	require.NoError(t, err)
}

func TestCreateReport_ClassifierFailureFallsBack(t *testing.T) {
	// Подготовка
	svc, _, storeMock, classifierMock, webhookMock := newTestReportService(t)
	ctx := context.Background()
	input := &models.CreateReportInput{
		Title:       "Шум во дворе",
		Description: "Что-то происходит",
		Position:    models.Coordinate{Latitude: 55.75, Longitude: 37.62},
	}

	// Ожидания: отказ классификатора не блокирует создание
	classifierMock.EXPECT().
		Classify(ctx, gomock.Any(), gomock.Any()).
		Return(models.CategoryUncategorized, errors.New("timeout")).
		Times(1)
	storeMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	report, err := svc.CreateReport(ctx, input)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.CategoryUncategorized, report.Category)
	assert.Equal(t, 30, report.CrimeProbability)
}

func TestCreateReport_EmptyTitle(t *testing.T) {
	// Подготовка
	svc, _, storeMock, classifierMock, _ := newTestReportService(t)
	input := &models.CreateReportInput{
		Title:       "   ",
		Description: "Описание",
		Position:    models.Coordinate{Latitude: 55.75, Longitude: 37.62},
	}

	// Ожидания
	classifierMock.EXPECT().Classify(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	storeMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := svc.CreateReport(context.Background(), input)

	// Проверки
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateReport_InvalidPosition(t *testing.T) {
	// Подготовка
	svc, _, _, _, _ := newTestReportService(t)
	input := &models.CreateReportInput{
		Title:       "Кража",
		Description: "Описание",
		Position:    models.Coordinate{Latitude: 123, Longitude: 37.62},
	}

	// Действие
	_, err := svc.CreateReport(context.Background(), input)

	// Проверки
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateReport_StoreError(t *testing.T) {
	// Подготовка
	svc, _, storeMock, classifierMock, _ := newTestReportService(t)
	ctx := context.Background()
	input := &models.CreateReportInput{
		Title:       "Кража",
		Description: "Описание",
		Position:    models.Coordinate{Latitude: 55.75, Longitude: 37.62},
	}
	storeErr := errors.New("insert failed")

	// Ожидания
	classifierMock.EXPECT().Classify(ctx, gomock.Any(), gomock.Any()).Return(models.CategoryLow, nil).Times(1)
	storeMock.EXPECT().Create(ctx, gomock.Any()).Return(storeErr).Times(1)

	// Действие
	_, err := svc.CreateReport(ctx, input)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}

func TestCreateReport_ProbabilityFromNeighborhood(t *testing.T) {
	// Подготовка: в коллекции уже есть тяжкий отчет, покрывающий точку
	svc, synchronizer, storeMock, classifierMock, _ := newTestReportService(t)
	ctx := context.Background()

	existing := rawReport(uuid.New(), time.Now())
	existing.Category = "severe"
	synchronizer.Apply([]models.RawReport{existing})

	input := &models.CreateReportInput{
		Title:       "Мелкая кража",
		Description: "Украли самокат",
		Position:    models.Coordinate{Latitude: 55.75, Longitude: 37.62},
	}

	// Ожидания
	classifierMock.EXPECT().Classify(ctx, gomock.Any(), gomock.Any()).Return(models.CategoryLow, nil).Times(1)
	storeMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	report, err := svc.CreateReport(ctx, input)

	// Проверки: вероятность фиксируется по окрестности, а не по своей категории
	require.NoError(t, err)
	assert.Equal(t, 90, report.CrimeProbability)
}

func TestStats_CountsProjection(t *testing.T) {
	// Подготовка
	svc, synchronizer, _, _, _ := newTestReportService(t)

	severe := rawReport(uuid.New(), time.Now())
	severe.Category = "severe"
	broken := rawReport(uuid.New(), time.Now())
	broken.Category = "low"
	broken.Latitude = nil
	synchronizer.Apply([]models.RawReport{severe, broken})

	// Действие
	stats := svc.Stats()

	// Проверки
	assert.Equal(t, 2, stats.TotalReports)
	assert.Equal(t, 1, stats.QueryableCount)
	assert.Equal(t, 1, stats.PerCategory[models.CategorySevere])
	assert.Equal(t, 1, stats.PerCategory[models.CategoryLow])
	assert.Equal(t, models.ConnectivityReady, stats.Connectivity)
}

func TestRiskAt_UsesCurrentProjection(t *testing.T) {
	// Подготовка
	svc, synchronizer, _, _, _ := newTestReportService(t)

	severe := rawReport(uuid.New(), time.Now())
	severe.Category = "severe"
	severe.CrimeProbability = iptr(40)
	synchronizer.Apply([]models.RawReport{severe})

	// Действие
	assessment := svc.RiskAt(models.Coordinate{Latitude: 55.75, Longitude: 37.62})

	// Проверки: обе оценки считаются независимо
	assert.Equal(t, 90, assessment.RiskByCategory)
	assert.Equal(t, 40, assessment.RiskByStoredProbability)
	assert.Equal(t, 1, assessment.NeighborhoodSize)
}

func TestQuery_DoesNotTouchActiveState(t *testing.T) {
	// Подготовка
	svc, synchronizer, _, _, _ := newTestReportService(t)

	flooded := rawReport(uuid.New(), time.Now())
	flooded.Title = "Flooded street"
	tree := rawReport(uuid.New(), time.Now())
	tree.Title = "Fallen tree"
	synchronizer.Apply([]models.RawReport{flooded, tree})

	oneOff := models.DefaultQueryState()
	oneOff.Search = "flood"

	// Действие
	result := svc.Query(oneOff, nil)

	// Проверки: разовый запрос не меняет активного состояния
	require.Len(t, result, 1)
	activeQuery, _ := synchronizer.QueryState()
	assert.Equal(t, "", activeQuery.Search)
}
