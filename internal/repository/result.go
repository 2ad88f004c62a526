package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/cubetactoe-backend/internal/entity"
)

const (
	recentResultsKey = "results:recent"
	recentResultsCap = 100
)

// ResultRepository archives finished games. Live room state is in-memory by
// design; only terminal outcomes are written out.
type ResultRepository interface {
	Save(ctx context.Context, result *entity.GameResult) error
	Recent(ctx context.Context, limit int) ([]*entity.GameResult, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

func (that *dbResult) Save(ctx context.Context, result *entity.GameResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	resultKey := fmt.Sprintf("result:%s:%d", result.RoomCode, result.FinishedAt.UnixNano())
	if err = that.client.Set(ctx, resultKey, resultJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set result: %w", err)
	}

	if err = that.client.LPush(ctx, recentResultsKey, resultJSON).Err(); err != nil {
		return fmt.Errorf("failed to push result to recent list: %w", err)
	}

	if err = that.client.LTrim(ctx, recentResultsKey, 0, recentResultsCap-1).Err(); err != nil {
		return fmt.Errorf("failed to trim recent list: %w", err)
	}

	return nil
}

// Recent returns up to limit finished games, newest first.
func (that *dbResult) Recent(ctx context.Context, limit int) ([]*entity.GameResult, error) {
	if limit <= 0 || limit > recentResultsCap {
		limit = recentResultsCap
	}

	entries, err := that.client.LRange(ctx, recentResultsKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read recent results: %w", err)
	}

	results := make([]*entity.GameResult, 0, len(entries))
	for _, entry := range entries {
		var result entity.GameResult
		if err = json.Unmarshal([]byte(entry), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}
		results = append(results, &result)
	}

	return results, nil
}
