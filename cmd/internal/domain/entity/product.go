package entity

// Product quantity is kept non-negative at all times; adjustments go
// through the stock ledger, never through a direct quantity write.
type Product struct {
	ID             int    `gorm:"primaryKey"`
	UserID         int    `gorm:"not null;index"` // References: users(id)
	Name           string `gorm:"not null"`
	Description    *string
	Category       string `gorm:"not null"`
	Quantity       int    `gorm:"not null"`
	MinQuantity    int    `gorm:"not null"`
	UnitPriceCents int64  `gorm:"not null"`
	Supplier       *string
	Barcode        *string
	Location       *string
	CreatedAt      int64 `gorm:"not null"`
	UpdatedAt      int64 `gorm:"not null"`

	// Relations
	Owner User `gorm:"foreignKey:UserID;references:ID"`
}

// LowStock reports whether the product sits below its reorder threshold.
// Informational only; nothing blocks on it.
func (p *Product) LowStock() bool {
	return p.Quantity < p.MinQuantity
}
