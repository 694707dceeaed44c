package repository

import (
	"oficinapro/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

// Movements are an append-only ledger; this repository deliberately has
// no update or delete methods.
type DefaultMovementRepository struct {
	db *gorm.DB
}

func NewMovementRepository(db *gorm.DB) *DefaultMovementRepository {
	return &DefaultMovementRepository{db: db}
}

func (m *DefaultMovementRepository) FindByUserID(userID int) ([]*entity.StockMovement, error) {
	var movements []*entity.StockMovement
	err := m.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&movements).Error
	return movements, err
}

func (m *DefaultMovementRepository) FindByProductID(userID, productID int) ([]*entity.StockMovement, error) {
	var movements []*entity.StockMovement
	err := m.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Order("created_at desc").
		Find(&movements).Error
	return movements, err
}
