// Package productrepo persists the catalog products the ordering engine
// resolves at creation and hydration time.
package productrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductDTO is one row of the products table. Specifications are free-form
// JSON.
type ProductDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SKU            string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Description    string          `gorm:"type:text"`
	ImageURL       string          `gorm:"type:text"`
	Price          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	StockQuantity  int             `gorm:"type:int;not null;default:0"`
	Active         bool            `gorm:"not null"`
	Specifications map[string]any  `gorm:"serializer:json;type:jsonb"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:             p.ID().Bytes(),
		SKU:            p.SKU(),
		Name:           p.Name(),
		Description:    p.Description(),
		ImageURL:       p.ImageURL(),
		Price:          p.Price().Decimal(),
		StockQuantity:  p.StockQuantity(),
		Active:         p.IsActive(),
		Specifications: p.Specifications(),
	}
}

func toDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.NewProduct(
		id, dto.SKU, dto.Name, dto.Description, dto.ImageURL, price, dto.StockQuantity, dto.Active, dto.Specifications,
	)
}

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Add(ctx context.Context, product *catalog.Product) error {
	dto := fromDomain(product)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	dto := fromDomain(product)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", product.ID().String())
	}
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}
	return nil
}
