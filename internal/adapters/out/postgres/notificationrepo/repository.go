// Package notificationrepo persists the log of every composed notification.
package notificationrepo

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// NotificationLogDTO is one row of the notification_logs table.
type NotificationLogDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Subject    string         `gorm:"type:varchar(255);not null"`
	Recipients pq.StringArray `gorm:"type:text[];not null"`
	Body       string         `gorm:"type:text;not null"`
	CreatedAt  time.Time      `gorm:"not null;index"`
}

func (NotificationLogDTO) TableName() string {
	return "notification_logs"
}

func fromDomain(l *notification.Log) NotificationLogDTO {
	return NotificationLogDTO{
		ID:         l.ID().Bytes(),
		Subject:    l.Subject(),
		Recipients: pq.StringArray(l.Recipients()),
		Body:       l.Body(),
		CreatedAt:  l.CreatedAt(),
	}
}

func toDomain(dto NotificationLogDTO) (*notification.Log, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	return notification.NewLog(id, dto.Subject, dto.Recipients, dto.Body, dto.CreatedAt)
}

// GormNotificationLogRepository implements ports.NotificationLogRepository using GORM.
type GormNotificationLogRepository struct {
	db *gorm.DB
}

func NewGormNotificationLogRepository(db *gorm.DB) *GormNotificationLogRepository {
	return &GormNotificationLogRepository{db: db}
}

func (r *GormNotificationLogRepository) Add(ctx context.Context, entry *notification.Log) error {
	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormNotificationLogRepository) ListLatest(ctx context.Context, limit int) ([]*notification.Log, error) {
	var dtos []NotificationLogDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&dtos).Error; err != nil {
		return nil, err
	}

	logs := make([]*notification.Log, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, nil
}

func (r *GormNotificationLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&NotificationLogDTO{})
	return result.RowsAffected, result.Error
}
