package entity

const (
	MovementTypeIn  = "in"
	MovementTypeOut = "out"
)

// StockMovement is one entry of the append-only stock ledger.
// Rows are never updated or deleted; ProductName is a snapshot taken
// at the moment of the movement so the ledger survives product renames.
type StockMovement struct {
	ID          string `gorm:"primaryKey"`
	UserID      int    `gorm:"not null;index"` // References: users(id)
	ProductID   int    `gorm:"not null;index"` // References: products(id)
	ProductName string `gorm:"not null"`
	Type        string `gorm:"not null"`
	Quantity    int    `gorm:"not null"`
	Reason      string `gorm:"not null"`
	RelatedTo   *int   // service order that consumed the stock, if any
	CreatedAt   int64  `gorm:"not null"`
}
