package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crime_radar/internal/service"
)

type VoteRepository struct {
	redisClient *redis.Client
}

func NewVoteRepository(redisClient *redis.Client) service.VoteStore {
	return &VoteRepository{
		redisClient: redisClient,
	}
}

func userVotesKey(userID string) string {
	return fmt.Sprintf("user_votes:%s", userID)
}

// Claim регистрирует пару (user, report) через SADD. SADD атомарен:
// возврат 0 означает, что пара уже была зарегистрирована, и второй голос
// отклоняется без какой-либо мутации счетчиков.
func (r *VoteRepository) Claim(ctx context.Context, userID string, reportID uuid.UUID) (bool, error) {
	added, err := r.redisClient.SAdd(ctx, userVotesKey(userID), reportID.String()).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim vote: %w", err)
	}
	return added == 1, nil
}

// Release снимает регистрацию пары - компенсация при неудачной записи голоса
func (r *VoteRepository) Release(ctx context.Context, userID string, reportID uuid.UUID) error {
	if err := r.redisClient.SRem(ctx, userVotesKey(userID), reportID.String()).Err(); err != nil {
		return fmt.Errorf("failed to release vote claim: %w", err)
	}
	return nil
}
