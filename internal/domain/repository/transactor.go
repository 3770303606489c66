package repository

import (
	"context"

	"gorm.io/gorm"
)

// Transactor is the store's scoped transaction primitive. WithTransaction
// runs fn inside a single database transaction: if fn returns nil the writes
// commit, otherwise everything rolls back. Rollback is guaranteed on every
// exit path, panics included.
type Transactor interface {
	// DB returns a handle for non-transactional reads.
	DB(ctx context.Context) *gorm.DB

	// WithTransaction executes fn inside one transaction.
	WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}
