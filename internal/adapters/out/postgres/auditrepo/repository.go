// Package auditrepo persists the append-only audit trail.
package auditrepo

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditEntryDTO is one row of the audit_log table. Snapshots are stored as JSON objects.
type AuditEntryDTO struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey"`
	EntityName string            `gorm:"type:varchar(64);not null"`
	EntityID   uuid.UUID         `gorm:"type:uuid;not null;index"`
	Action     string            `gorm:"type:varchar(32);not null"`
	OldValue   map[string]string `gorm:"serializer:json;type:jsonb"`
	NewValue   map[string]string `gorm:"serializer:json;type:jsonb"`
	ActorID    uuid.UUID         `gorm:"type:uuid;not null"`
	RecordedAt time.Time         `gorm:"not null;index"`
}

func (AuditEntryDTO) TableName() string {
	return "audit_log"
}

func fromDomain(e *audit.Entry) AuditEntryDTO {
	return AuditEntryDTO{
		ID:         e.ID().Bytes(),
		EntityName: e.EntityName(),
		EntityID:   e.EntityID().Bytes(),
		Action:     string(e.Action()),
		OldValue:   e.OldValue(),
		NewValue:   e.NewValue(),
		ActorID:    e.ActorID().Bytes(),
		RecordedAt: e.RecordedAt(),
	}
}

func toDomain(dto AuditEntryDTO) (*audit.Entry, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	entityID, err := kernel.UUIDFromGoogle(dto.EntityID)
	if err != nil {
		return nil, err
	}

	actorID, err := kernel.UUIDFromGoogle(dto.ActorID)
	if err != nil {
		return nil, err
	}

	return audit.NewEntry(id, dto.EntityName, entityID, audit.Action(dto.Action), dto.OldValue, dto.NewValue, actorID, dto.RecordedAt)
}

// GormAuditLogRepository implements ports.AuditLogRepository using GORM.
type GormAuditLogRepository struct {
	db *gorm.DB
}

func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

func (r *GormAuditLogRepository) Add(ctx context.Context, entry *audit.Entry) error {
	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByEntity returns the entries of one entity, oldest first.
func (r *GormAuditLogRepository) ListByEntity(ctx context.Context, entityID kernel.UUID) ([]*audit.Entry, error) {
	var dtos []AuditEntryDTO
	if err := r.db.WithContext(ctx).Where("entity_id = ?", entityID.Bytes()).Order("recorded_at ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*audit.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
