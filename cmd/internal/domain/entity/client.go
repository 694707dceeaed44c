package entity

type Client struct {
	ID           int    `gorm:"primaryKey"`
	UserID       int    `gorm:"not null;index"` // References: users(id)
	Name         string `gorm:"not null"`
	Email        *string
	Phone        *string
	Address      *string
	VehicleModel *string
	VehiclePlate *string
	CreatedAt    int64 `gorm:"not null"`
	UpdatedAt    int64 `gorm:"not null"`

	// Relations
	Owner User `gorm:"foreignKey:UserID;references:ID"`
}
