// Package queries contains the read operations of the ordering engine. Queries
// never mutate state and never trigger notifications; every order they return
// is hydrated through readmodel.Hydrator.
package queries

import (
	"ordering/internal/core/ports"
)

type (
	// Repositories gives query handlers read access outside of any transaction.
	Repositories interface {
		OrderRepository() ports.OrderRepository
		ProductRepository() ports.ProductRepository
		UserRepository() ports.UserRepository
		NotificationLogRepository() ports.NotificationLogRepository
	}

	// RepositoriesFactory creates Repositories per query execution.
	RepositoriesFactory interface {
		Create() Repositories
	}
)
