// Package userrepo persists the users the ordering engine resolves as
// owners, approvers and fulfillment agents.
package userrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/identity"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDTO is one row of the users table. The role is stored by name.
type UserDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username    string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	Role        string    `gorm:"type:varchar(32);not null;index"`
	Email       string    `gorm:"type:varchar(255)"`
	DisplayName string    `gorm:"type:varchar(255)"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *identity.User) UserDTO {
	return UserDTO{
		ID:          u.ID().Bytes(),
		Username:    u.Username(),
		Role:        u.Role().String(),
		Email:       u.Email(),
		DisplayName: u.DisplayName(),
	}
}

func toDomain(dto UserDTO) (*identity.User, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	role, err := identity.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return identity.NewUser(id, dto.Username, role, dto.Email, dto.DisplayName)
}

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Add(ctx context.Context, user *identity.User) error {
	dto := fromDomain(user)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "user", id.String(), "id = ?", id.Bytes())
}

// GetByUsername matches usernames case-insensitively.
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*identity.User, error) {
	return r.first(ctx, "user", username, "LOWER(username) = LOWER(?)", username)
}

// ListByRole returns users ordered by username.
func (r *GormUserRepository) ListByRole(ctx context.Context, role identity.Role) ([]*identity.User, error) {
	var dtos []UserDTO
	if err := r.db.WithContext(ctx).Where("role = ?", role.String()).Order("username").Find(&dtos).Error; err != nil {
		return nil, err
	}

	users := make([]*identity.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *GormUserRepository) first(ctx context.Context, param string, key string, query string, args ...any) (*identity.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, key)
		}
		return nil, err
	}

	return toDomain(dto)
}
