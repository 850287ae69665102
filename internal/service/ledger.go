package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crime_radar/internal/config"
	"github.com/shenikar/crime_radar/internal/models"
	"github.com/sirupsen/logrus"
)

// releaseTimeout ограничивает компенсирующее снятие регистрации голоса
const releaseTimeout = 5 * time.Second

// projection - источник текущей канонической коллекции для проверки
// существования отчета. Реализуется синхронизатором.
type projection interface {
	Lookup(id uuid.UUID) (*models.Report, bool)
}

// VoteLedger применяет голоса с семантикой "не более одного голоса на пару
// (пользователь, отчет)". Регистрация пары выполняется до инкремента:
// повторный вызов (в том числе ретрай клиента) не может удвоить счетчик.
type VoteLedger struct {
	votes      VoteStore
	store      ReportStore
	projection projection
	logger     *logrus.Logger
	cfg        *config.Config

	// Сериализует шаги чтения-изменения-записи между конкурентными голосами
	mu sync.Mutex
}

func NewVoteLedger(votes VoteStore, store ReportStore, projection projection, logger *logrus.Logger, cfg *config.Config) *VoteLedger {
	return &VoteLedger{
		votes:      votes,
		store:      store,
		projection: projection,
		logger:     logger,
		cfg:        cfg,
	}
}

// Vote применяет голос пользователя. Порядок шагов:
//  1. проверка идентичности и существования отчета;
//  2. атомарная регистрация пары (user, report) в журнале;
//  3. инкремент счетчика через адаптер с ограниченными повторами;
//  4. при окончательной неудаче - компенсирующее снятие регистрации.
func (l *VoteLedger) Vote(ctx context.Context, userID string, reportID uuid.UUID, direction models.VoteDirection) error {
	log := l.logger.WithFields(logrus.Fields{
		"service":   "ledger",
		"method":    "Vote",
		"user_id":   userID,
		"report_id": reportID,
		"direction": direction,
	})

	if userID == "" {
		log.Warn("Vote attempt without user identity")
		return ErrUnauthenticated
	}
	if direction != models.VoteUp && direction != models.VoteDown {
		return fmt.Errorf("%w: unknown vote direction %q", ErrValidation, direction)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.projection.Lookup(reportID); !ok {
		log.Warn("Vote attempt for unknown report")
		return ErrNotFound
	}

	claimed, err := l.votes.Claim(ctx, userID, reportID)
	if err != nil {
		log.WithError(err).Error("Failed to claim vote in ledger store")
		return fmt.Errorf("%w: vote claim failed: %v", ErrUnavailable, err)
	}
	if !claimed {
		log.Info("Duplicate vote rejected")
		return ErrAlreadyVoted
	}

	if err := l.applyWithRetry(ctx, reportID, direction, log); err != nil {
		// Откат регистрации, чтобы пользователь мог повторить попытку.
		// Частичный отказ не должен оставить голос записанным без инкремента.
		// Откат идет на отвязанном контексте: отмена исходного запроса
		// не должна сорвать снятие регистрации.
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		defer cancel()
		if relErr := l.votes.Release(releaseCtx, userID, reportID); relErr != nil {
			log.WithError(relErr).Error("Failed to release vote claim after apply failure")
		}
		return err
	}

	log.Info("Vote applied successfully")
	return nil
}

// applyWithRetry повторяет запись голоса с экспоненциальной задержкой
func (l *VoteLedger) applyWithRetry(ctx context.Context, reportID uuid.UUID, direction models.VoteDirection, log *logrus.Entry) error {
	maxRetries := l.cfg.VoteMaxRetries
	delay := l.cfg.VoteBaseDelay

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		lastErr = l.store.ApplyVote(ctx, reportID, direction)
		if lastErr == nil {
			return nil
		}
		if i == maxRetries-1 {
			break
		}

		log.WithError(lastErr).Warnf("Failed to apply vote. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
		case <-time.After(delay):
		}
		delay *= 2
	}

	log.WithError(lastErr).Errorf("Failed to apply vote after %d retries", maxRetries)
	return fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}
