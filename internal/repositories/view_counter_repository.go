package repositories

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ViewCounterRepository counts listing detail views in Redis. Counts are
// best-effort; callers treat errors as zero views rather than failing the
// request.
type ViewCounterRepository struct {
	RDB *redis.Client
}

func viewKey(listingID int) string {
	return fmt.Sprintf("listing:views:%d", listingID)
}

func (r *ViewCounterRepository) IncrementViews(ctx context.Context, listingID int) (int64, error) {
	return r.RDB.Incr(ctx, viewKey(listingID)).Result()
}

func (r *ViewCounterRepository) Views(ctx context.Context, listingID int) (int64, error) {
	count, err := r.RDB.Get(ctx, viewKey(listingID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return count, err
}
