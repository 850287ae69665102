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
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeProjection - проекция с фиксированным набором отчетов
type fakeProjection struct {
	reports map[uuid.UUID]*models.Report
}

func (p *fakeProjection) Lookup(id uuid.UUID) (*models.Report, bool) {
	r, ok := p.reports[id]
	return r, ok
}

// newTestLedger - вспомогательная функция для создания журнала голосов с моками
func newTestLedger(t *testing.T, known ...uuid.UUID) (*VoteLedger, *mocks.MockVoteStore, *mocks.MockReportStore) {
	ctrl := gomock.NewController(t)
	votesMock := mocks.NewMockVoteStore(ctrl)
	storeMock := mocks.NewMockReportStore(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		VoteMaxRetries: 3,
		VoteBaseDelay:  time.Millisecond,
	}

	projection := &fakeProjection{reports: make(map[uuid.UUID]*models.Report)}
	for _, id := range known {
		projection.reports[id] = &models.Report{ID: id, Queryable: true}
	}

	return NewVoteLedger(votesMock, storeMock, projection, logger, cfg), votesMock, storeMock
}

func TestVote_Success(t *testing.T) {
	// Подготовка
	reportID := uuid.New()
	ledger, votesMock, storeMock := newTestLedger(t, reportID)
	ctx := context.Background()

	// Ожидания
	votesMock.EXPECT().Claim(ctx, "user-1", reportID).Return(true, nil).Times(1)
	storeMock.EXPECT().ApplyVote(ctx, reportID, models.VoteUp).Return(nil).Times(1)

	// Действие
	err := ledger.Vote(ctx, "user-1", reportID, models.VoteUp)

	// Проверки
	require.NoError(t, err)
}

func TestVote_WithoutUserIdentity(t *testing.T) {
	// Подготовка
	reportID := uuid.New()
	ledger, votesMock, storeMock := newTestLedger(t, reportID)

	// Ожидания: до хранилищ дело не доходит
	votesMock.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	storeMock.EXPECT().ApplyVote(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := ledger.Vote(context.Background(), "", reportID, models.VoteUp)

	// Проверки
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestVote_UnknownDirection(t *testing.T) {
	// Подготовка
	reportID := uuid.New()
	ledger, _, _ := newTestLedger(t, reportID)

	// Действие
	err := ledger.Vote(context.Background(), "user-1", reportID, models.VoteDirection("sideways"))

	// Проверки
	assert.ErrorIs(t, err, ErrValidation)
}

func TestVote_UnknownReport(t *testing.T) {
	// Подготовка: проекция пуста
	ledger, votesMock, _ := newTestLedger(t)

	// Ожидания
	votesMock.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := ledger.Vote(context.Background(), "user-1", uuid.New(), models.VoteUp)

	// Проверки
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVote_Duplicate(t *testing.T) {
	// Подготовка
	reportID := uuid.New()
	ledger, votesMock, storeMock := newTestLedger(t, reportID)
	ctx := context.Background()

	// Ожидания: пара уже зарегистрирована, инкремента не будет
	votesMock.EXPECT().Claim(ctx, "user-1", reportID).Return(false, nil).Times(1)
	storeMock.EXPECT().ApplyVote(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := ledger.Vote(ctx, "user-1", reportID, models.VoteDown)

	// Проверки
	assert.ErrorIs(t, err, ErrAlreadyVoted)
}

func TestVote_ClaimStoreFailure(t *testing.T) {
	// Подготовка
	reportID := uuid.New()
	ledger, votesMock, _ := newTestLedger(t, reportID)
	ctx := context.Background()

	// Ожидания
	votesMock.EXPECT().Claim(ctx, "user-1", reportID).Return(false, errors.New("connection refused")).Times(1)

	// Действие
	err := ledger.Vote(ctx, "user-1", reportID, models.VoteUp)

	// Проверки
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestVote_RetriesThenSucceeds(t *testing.T) {
	// Подготовка
	reportID := uuid.New()
	ledger, votesMock, storeMock := newTestLedger(t, reportID)
	ctx := context.Background()
	transient := errors.New("deadlock detected")

	// Ожидания: две неудачи, третья попытка проходит, отката нет
	votesMock.EXPECT().Claim(ctx, "user-1", reportID).Return(true, nil).Times(1)
	gomock.InOrder(
		storeMock.EXPECT().ApplyVote(ctx, reportID, models.VoteUp).Return(transient).Times(2),
		storeMock.EXPECT().ApplyVote(ctx, reportID, models.VoteUp).Return(nil).Times(1),
	)
	votesMock.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := ledger.Vote(ctx, "user-1", reportID, models.VoteUp)

	// Проверки
	require.NoError(t, err)
}

func TestVote_ApplyFailureReleasesClaim(t *testing.T) {
	// Подготовка
	reportID := uuid.New()
	ledger, votesMock, storeMock := newTestLedger(t, reportID)
	ctx := context.Background()
	storeErr := errors.New("write failed")

	// Ожидания: все попытки исчерпаны, регистрация снимается
	votesMock.EXPECT().Claim(ctx, "user-1", reportID).Return(true, nil).Times(1)
	storeMock.EXPECT().ApplyVote(ctx, reportID, models.VoteUp).Return(storeErr).Times(3)
	votesMock.EXPECT().Release(gomock.Any(), "user-1", reportID).Return(nil).Times(1)

	// Действие
	err := ledger.Vote(ctx, "user-1", reportID, models.VoteUp)

	// Проверки: после отката пользователь может повторить попытку
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestVote_CancelledRequestStillReleasesClaim(t *testing.T) {
	// Подготовка: запрос отменяется во время применения голоса
	reportID := uuid.New()
	ledger, votesMock, storeMock := newTestLedger(t, reportID)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ожидания: откат выполняется на живом контексте, иначе пара
	// осталась бы зарегистрированной без инкремента счетчика
	votesMock.EXPECT().Claim(gomock.Any(), "user-1", reportID).Return(true, nil).Times(1)
	storeMock.EXPECT().ApplyVote(gomock.Any(), reportID, models.VoteUp).
		DoAndReturn(func(context.Context, uuid.UUID, models.VoteDirection) error {
			cancel()
			return errors.New("connection reset")
		}).Times(1)
	votesMock.EXPECT().Release(gomock.Any(), "user-1", reportID).
		DoAndReturn(func(releaseCtx context.Context, _ string, _ uuid.UUID) error {
			assert.NoError(t, releaseCtx.Err())
			return nil
		}).Times(1)

	// Действие
	err := ledger.Vote(ctx, "user-1", reportID, models.VoteUp)

	// Проверки
	assert.ErrorIs(t, err, ErrUnavailable)
}
