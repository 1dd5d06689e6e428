package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"todo_backend/internal/feature/auth/usecase"
)

// RevokedTokenModel is the GORM model for the revoked_tokens table.
// It is the database fallback for the Redis denylist.
type RevokedTokenModel struct {
	// JTI is the revoked refresh token id.
	JTI       string    `gorm:"primaryKey;size:36"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (RevokedTokenModel) TableName() string {
	return "revoked_tokens"
}

// denylistGorm is a database implementation of the TokenDenylist interface.
type denylistGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure denylistGorm implements TokenDenylist.
var _ usecase.TokenDenylist = (*denylistGorm)(nil)

// NewDenylistGorm creates a new instance of denylistGorm.
func NewDenylistGorm(db *gorm.DB) *denylistGorm {
	return &denylistGorm{db: db}
}

// Revoke records a refresh token id until the token's own expiry.
// Expired entries are purged opportunistically; there is no background
// sweeper.
func (r *denylistGorm) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	if !expiresAt.After(time.Now()) {
		return nil
	}

	r.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&RevokedTokenModel{})

	model := &RevokedTokenModel{JTI: jti, ExpiresAt: expiresAt}
	// Revoking the same token twice is a no-op, not an error.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model).Error
}

// IsRevoked reports whether a refresh token id has an unexpired entry.
func (r *denylistGorm) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&RevokedTokenModel{}).
		Where("jti = ? AND expires_at > ?", jti, time.Now()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
