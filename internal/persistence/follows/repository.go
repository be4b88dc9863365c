package follows

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"feedgraph/internal/core"
	"feedgraph/internal/persistence"
)

type Repository struct {
	DB core.DB
}

// Follow inserts the edge. The primary key makes the insert the check: a concurrent duplicate affects no rows.
func (r *Repository) Follow(ctx context.Context, followerID, followingID int64) error {
	return r.DB.Transaction(ctx, func(tx *gorm.DB) error {
		for _, id := range []int64{followerID, followingID} {
			if err := persistence.MustExist(tx, &persistence.User{}, "user", id); err != nil {
				return err
			}
		}

		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&persistence.Follow{
			FollowerID:  followerID,
			FollowingID: followingID,
		})
		if res.Error != nil {
			return persistence.Translate(res.Error, "user", followingID)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: user %d already follows user %d", core.ErrConflict, followerID, followingID)
		}

		return nil
	})
}

func (r *Repository) Unfollow(ctx context.Context, followerID, followingID int64) error {
	res := r.DB.Conn(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&persistence.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: user %d does not follow user %d", core.ErrNotFound, followerID, followingID)
	}

	return nil
}

func (r *Repository) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	var count int64
	err := r.DB.Conn(ctx).
		Model(&persistence.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error

	return count > 0, err
}

// Followers lists who follows userID, most recent follower first.
func (r *Repository) Followers(ctx context.Context, userID int64) ([]core.User, error) {
	return r.list(ctx, "f.follower_id", "f.following_id", userID)
}

// Following lists whom userID follows, most recently followed first.
func (r *Repository) Following(ctx context.Context, userID int64) ([]core.User, error) {
	return r.list(ctx, "f.following_id", "f.follower_id", userID)
}

func (r *Repository) list(ctx context.Context, joinOn, filterOn string, userID int64) ([]core.User, error) {
	var found []core.User
	err := r.DB.Conn(ctx).
		Table("follows AS f").
		Select("u.id, u.username, u.full_name, u.created_at").
		Joins("JOIN users AS u ON u.id = "+joinOn).
		Where(filterOn+" = ?", userID).
		Order("f.created_at DESC").
		Order("u.id ASC").
		Find(&found).Error

	return found, err
}

// Stats counts both directions independently. The two numbers are not a consistent snapshot.
func (r *Repository) Stats(ctx context.Context, userID int64) (core.FollowStats, error) {
	var stats core.FollowStats

	wg, ctx := errgroup.WithContext(ctx)
	wg.Go(func() error {
		return r.DB.Conn(ctx).Model(&persistence.Follow{}).
			Where("following_id = ?", userID).
			Count(&stats.FollowersCount).Error
	})
	wg.Go(func() error {
		return r.DB.Conn(ctx).Model(&persistence.Follow{}).
			Where("follower_id = ?", userID).
			Count(&stats.FollowingCount).Error
	})

	return stats, wg.Wait()
}
