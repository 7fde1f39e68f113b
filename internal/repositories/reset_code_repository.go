package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"menageBack/internal/models"
)

// ResetCodeRepository keeps short-lived password reset codes in Redis so
// they expire on their own.
type ResetCodeRepository struct {
	RDB *redis.Client
}

func resetKey(userID int) string {
	return fmt.Sprintf("reset_code:%d", userID)
}

func (r *ResetCodeRepository) StoreResetCode(ctx context.Context, userID int, code string, ttl time.Duration) error {
	return r.RDB.Set(ctx, resetKey(userID), code, ttl).Err()
}

func (r *ResetCodeRepository) VerifyResetCode(ctx context.Context, userID int, code string) error {
	stored, err := r.RDB.Get(ctx, resetKey(userID)).Result()
	if err == redis.Nil {
		return models.ErrInvalidResetCode
	}
	if err != nil {
		return err
	}
	if stored != code {
		return models.ErrInvalidResetCode
	}
	return nil
}

func (r *ResetCodeRepository) DeleteResetCode(ctx context.Context, userID int) error {
	return r.RDB.Del(ctx, resetKey(userID)).Err()
}
