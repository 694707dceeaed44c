package entity

const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

type ServiceOrder struct {
	ID          int    `gorm:"primaryKey"`
	UserID      int    `gorm:"not null;index"` // References: users(id)
	ClientID    int    `gorm:"not null"`       // References: clients(id)
	Title       string `gorm:"not null"`
	Description *string
	Status      string `gorm:"not null"`
	TotalCents  *int64
	CreatedAt   int64 `gorm:"not null"`
	UpdatedAt   int64 `gorm:"not null"`

	// Relations
	Owner  User   `gorm:"foreignKey:UserID;references:ID"`
	Client Client `gorm:"foreignKey:ClientID;references:ID"`
}
