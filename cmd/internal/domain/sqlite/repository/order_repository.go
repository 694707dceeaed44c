package repository

import (
	"errors"

	"oficinapro/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{db: db}
}

func (o *DefaultOrderRepository) FindByID(id int) (*entity.ServiceOrder, error) {
	var order entity.ServiceOrder
	err := o.db.First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (o *DefaultOrderRepository) FindByUserID(userID int) ([]*entity.ServiceOrder, error) {
	var orders []*entity.ServiceOrder
	err := o.db.Where("user_id = ?", userID).Order("created_at desc").Find(&orders).Error
	return orders, err
}

func (o *DefaultOrderRepository) Save(order *entity.ServiceOrder) error {
	return o.db.Save(order).Error
}

func (o *DefaultOrderRepository) Delete(order *entity.ServiceOrder) error {
	return o.db.Delete(order).Error
}
