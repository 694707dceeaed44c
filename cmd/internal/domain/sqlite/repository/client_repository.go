package repository

import (
	"errors"

	"oficinapro/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *DefaultClientRepository {
	return &DefaultClientRepository{db: db}
}

func (c *DefaultClientRepository) FindByID(id int) (*entity.Client, error) {
	var client entity.Client
	err := c.db.First(&client, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &client, err
}

func (c *DefaultClientRepository) FindByUserID(userID int) ([]*entity.Client, error) {
	var clients []*entity.Client
	err := c.db.Where("user_id = ?", userID).Order("name asc").Find(&clients).Error
	return clients, err
}

func (c *DefaultClientRepository) Save(client *entity.Client) error {
	return c.db.Save(client).Error
}

func (c *DefaultClientRepository) Delete(client *entity.Client) error {
	return c.db.Delete(client).Error
}
