package repository

import (
	"github.com/glowderma/glowderma/internal/models"

	"gorm.io/gorm"
)

// CartRepository persists cart line snapshots keyed by session.
type CartRepository interface {
	ListBySession(sessionID string) ([]models.CartLine, error)
	ReplaceSession(sessionID string, lines []models.CartLine) error
	ClearSession(sessionID string) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates the cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListBySession returns the session's lines in insertion order.
func (r *GormCartRepository) ListBySession(sessionID string) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := r.db.Where("session_id = ?", sessionID).Order("position ASC, id ASC").Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// ReplaceSession atomically rewrites the session's lines with the given set.
func (r *GormCartRepository) ReplaceSession(sessionID string, lines []models.CartLine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("session_id = ?", sessionID).Delete(&models.CartLine{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		for i := range lines {
			lines[i].ID = 0
			lines[i].SessionID = sessionID
			lines[i].Position = i
		}
		return tx.Create(&lines).Error
	})
}

// ClearSession removes every line for the session.
func (r *GormCartRepository) ClearSession(sessionID string) error {
	return r.db.Unscoped().Where("session_id = ?", sessionID).Delete(&models.CartLine{}).Error
}
