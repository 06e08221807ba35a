package dbmysql

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gotube/internal/common"
)

// Like is one actor→target edge. The unique index on
// (user_id, target_kind, target_id) is what keeps at most one row per pair
// under concurrent toggles.
type Like struct {
	ID         string            `gorm:"primaryKey;column:id;type:char(36)" json:"_id"`
	UserID     string            `gorm:"column:user_id;type:char(24);not null;uniqueIndex:idx_like_actor_target,priority:1" json:"likedBy"`
	TargetKind common.TargetKind `gorm:"column:target_kind;type:enum('video','comment','tweet');not null;uniqueIndex:idx_like_actor_target,priority:2;index:idx_like_target,priority:1" json:"targetKind"`
	TargetID   string            `gorm:"column:target_id;type:char(24);not null;uniqueIndex:idx_like_actor_target,priority:3;index:idx_like_target,priority:2" json:"targetId"`
	CreatedAt  time.Time         `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Insert creates the row or fails with Conflict when the pair already has one.
func (r *LikeRepository) Insert(ctx context.Context, like *Like) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		if isDuplicateKey(err) {
			return common.Conflict("like already exists")
		}
		return common.Internal("failed to insert like", err)
	}
	return nil
}

// Delete removes the row for the like's (user, kind, target) key and
// reports whether one existed.
func (r *LikeRepository) Delete(ctx context.Context, like *Like) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", like.UserID, like.TargetKind, like.TargetID).
		Delete(&Like{})
	if res.Error != nil {
		return false, common.Internal("failed to delete like", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ListByUser returns the user's likes of one kind, newest first.
func (r *LikeRepository) ListByUser(ctx context.Context, userID string, kind common.TargetKind) ([]Like, error) {
	var likes []Like
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND target_kind = ?", userID, kind).
		Order("created_at DESC").
		Find(&likes).Error
	if err != nil {
		return nil, common.Internal("failed to list likes", err)
	}
	return likes, nil
}

func (r *LikeRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Like{}).Where("user_id = ?", userID).Count(&n).Error
	if err != nil {
		return 0, common.Internal("failed to count likes", err)
	}
	return n, nil
}

func (r *LikeRepository) CountByTarget(ctx context.Context, kind common.TargetKind, targetID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Like{}).
		Where("target_kind = ? AND target_id = ?", kind, targetID).
		Count(&n).Error
	if err != nil {
		return 0, common.Internal("failed to count likes", err)
	}
	return n, nil
}
