package dbmysql

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gotube/internal/common"
)

// Subscription links a subscriber to a channel (both are user ids).
type Subscription struct {
	ID           string    `gorm:"primaryKey;column:id;type:char(36)" json:"_id"`
	ChannelID    string    `gorm:"column:channel_id;type:char(24);not null;uniqueIndex:idx_subscription_pair,priority:1" json:"channel"`
	SubscriberID string    `gorm:"column:subscriber_id;type:char(24);not null;uniqueIndex:idx_subscription_pair,priority:2;index:idx_subscription_subscriber" json:"subscriber"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Insert(ctx context.Context, sub *Subscription) error {
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		if isDuplicateKey(err) {
			return common.Conflict("subscription already exists")
		}
		return common.Internal("failed to insert subscription", err)
	}
	return nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, sub *Subscription) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("channel_id = ? AND subscriber_id = ?", sub.ChannelID, sub.SubscriberID).
		Delete(&Subscription{})
	if res.Error != nil {
		return false, common.Internal("failed to delete subscription", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ListByChannel returns the channel's subscriptions, newest first.
func (r *SubscriptionRepository) ListByChannel(ctx context.Context, channelID string) ([]Subscription, error) {
	var subs []Subscription
	err := r.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, common.Internal("failed to list subscribers", err)
	}
	return subs, nil
}

// ListBySubscriber returns what the user subscribes to, newest first.
func (r *SubscriptionRepository) ListBySubscriber(ctx context.Context, subscriberID string) ([]Subscription, error) {
	var subs []Subscription
	err := r.db.WithContext(ctx).
		Where("subscriber_id = ?", subscriberID).
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, common.Internal("failed to list subscriptions", err)
	}
	return subs, nil
}

func (r *SubscriptionRepository) CountByChannel(ctx context.Context, channelID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Subscription{}).Where("channel_id = ?", channelID).Count(&n).Error
	if err != nil {
		return 0, common.Internal("failed to count subscribers", err)
	}
	return n, nil
}
