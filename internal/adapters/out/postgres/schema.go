package postgres

import (
	"ordering/internal/adapters/out/postgres/approvalrepo"
	"ordering/internal/adapters/out/postgres/auditrepo"
	"ordering/internal/adapters/out/postgres/courierinforepo"
	"ordering/internal/adapters/out/postgres/notificationrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/productrepo"
	"ordering/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every table of the ordering schema.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&approvalrepo.ApprovalDTO{},
		&courierinforepo.CourierInfoDTO{},
		&auditrepo.AuditEntryDTO{},
		&notificationrepo.NotificationLogDTO{},
	}
}

// Migrate creates or updates the ordering schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
