package repository

import (
	"context"

	domainRepo "clinicbook/internal/domain/repository"

	"gorm.io/gorm"
)

type gormTransactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) domainRepo.Transactor {
	return &gormTransactor{db: db}
}

func (t *gormTransactor) DB(ctx context.Context) *gorm.DB {
	return t.db.WithContext(ctx)
}

// WithTransaction delegates to gorm's Transaction, which commits when fn
// returns nil and rolls back on error or panic.
func (t *gormTransactor) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return t.db.WithContext(ctx).Transaction(fn)
}
