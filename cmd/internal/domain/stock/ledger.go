package stock

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"oficinapro/cmd/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrInsufficientStock is returned when an out-adjustment would drive the
// product quantity negative. No movement is produced in that case.
var ErrInsufficientStock = errors.New("insufficient stock")

// InvalidAdjustmentError rejects a malformed adjustment request before any
// computation happens.
type InvalidAdjustmentError struct {
	Reason string
}

func (e *InvalidAdjustmentError) Error() string {
	return fmt.Sprintf("invalid stock adjustment: %s", e.Reason)
}

// Adjustment is a request to move stock in or out of a product.
type Adjustment struct {
	Type      string // entity.MovementTypeIn or entity.MovementTypeOut
	Quantity  int
	Reason    string
	UserID    int
	RelatedTo *int // service order that consumed the stock, if any
}

// Result carries the computed quantity and the ledger entry for a
// successful adjustment. Nothing is persisted here; the caller must write
// the new quantity and append the movement as a single unit.
type Result struct {
	NewQuantity int
	Movement    *entity.StockMovement
}

// Adjust applies an adjustment to a snapshot of the product and produces
// the corresponding ledger entry. The product itself is never mutated.
func Adjust(product *entity.Product, adj Adjustment) (*Result, error) {
	if adj.Type != entity.MovementTypeIn && adj.Type != entity.MovementTypeOut {
		return nil, &InvalidAdjustmentError{Reason: fmt.Sprintf("unrecognized type %q", adj.Type)}
	}
	if adj.Quantity <= 0 {
		return nil, &InvalidAdjustmentError{Reason: "quantity must be a positive integer"}
	}

	reason := strings.TrimSpace(adj.Reason)
	if reason == "" {
		return nil, &InvalidAdjustmentError{Reason: "reason must not be empty"}
	}

	newQuantity := product.Quantity + adj.Quantity
	if adj.Type == entity.MovementTypeOut {
		newQuantity = product.Quantity - adj.Quantity
		if newQuantity < 0 {
			return nil, ErrInsufficientStock
		}
	}

	movement := &entity.StockMovement{
		ID:          uuid.NewString(),
		UserID:      adj.UserID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Type:        adj.Type,
		Quantity:    adj.Quantity,
		Reason:      reason,
		RelatedTo:   adj.RelatedTo,
		CreatedAt:   time.Now().UTC().UnixMilli(),
	}

	return &Result{NewQuantity: newQuantity, Movement: movement}, nil
}
