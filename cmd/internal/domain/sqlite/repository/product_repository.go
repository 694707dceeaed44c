package repository

import (
	"errors"

	"oficinapro/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{db: db}
}

func (p *DefaultProductRepository) FindByID(id int) (*entity.Product, error) {
	var product entity.Product
	err := p.db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (p *DefaultProductRepository) FindByUserID(userID int) ([]*entity.Product, error) {
	var products []*entity.Product
	err := p.db.Where("user_id = ?", userID).Order("name asc").Find(&products).Error
	return products, err
}

func (p *DefaultProductRepository) Save(product *entity.Product) error {
	return p.db.Save(product).Error
}

func (p *DefaultProductRepository) Delete(product *entity.Product) error {
	return p.db.Delete(product).Error
}

// ApplyAdjustment persists the outcome of a ledger adjustment: the new
// product quantity and the movement row commit or roll back together.
func (p *DefaultProductRepository) ApplyAdjustment(productID, newQuantity int, movement *entity.StockMovement) error {
	return p.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&entity.Product{}).
			Where("id = ?", productID).
			Updates(map[string]any{
				"quantity":   newQuantity,
				"updated_at": movement.CreatedAt,
			}).Error
		if err != nil {
			return err
		}
		return tx.Create(movement).Error
	})
}
