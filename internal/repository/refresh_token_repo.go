package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bitewrap/internal/domain"
)

type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, t *domain.RefreshToken) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *RefreshTokenRepository) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	var t domain.RefreshToken
	tx := r.db.WithContext(ctx).Where("token_hash = ?", hash).First(&t)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &t, nil
}

// Rotate marks the current token used and issues its successor in one
// transaction. Returns ErrRecordNotFound when the hash is unknown.
func (r *RefreshTokenRepository) Rotate(ctx context.Context, hash string, next *domain.RefreshToken) error {
	now := time.Now()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current domain.RefreshToken
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("token_hash = ?", hash).First(&current).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.RefreshToken{}).Where("id = ?", current.ID).Updates(map[string]any{
			"used_at":    now,
			"revoked_at": now,
		}).Error; err != nil {
			return err
		}
		next.UserID = current.UserID
		next.FamilyID = current.FamilyID
		return tx.Create(next).Error
	})
}

// RevokeFamily revokes every live token sharing the family. Used on
// reuse detection and logout.
func (r *RefreshTokenRepository) RevokeFamily(ctx context.Context, familyID string) error {
	return r.db.WithContext(ctx).Model(&domain.RefreshToken{}).
		Where("family_id = ? AND revoked_at IS NULL", familyID).
		Update("revoked_at", time.Now()).Error
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("expires_at < ?", before).
		Delete(&domain.RefreshToken{})
	return tx.RowsAffected, tx.Error
}

// IsRecordNotFound reports whether err is gorm's missing-row error.
func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
