package service

import (
	"errors"

	"oficinapro/cmd/internal/domain/entity"
	"oficinapro/cmd/internal/domain/stock"
	"oficinapro/cmd/internal/utils"
	"oficinapro/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ProductRepository interface {
	FindByID(id int) (*entity.Product, error)
	FindByUserID(userID int) ([]*entity.Product, error)
	Save(product *entity.Product) error
	Delete(product *entity.Product) error
	ApplyAdjustment(productID, newQuantity int, movement *entity.StockMovement) error
}

type MovementRepository interface {
	FindByUserID(userID int) ([]*entity.StockMovement, error)
	FindByProductID(userID, productID int) ([]*entity.StockMovement, error)
}

type ProductRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=120"`
	Description    string `json:"description" validate:"max=1000"`
	Category       string `json:"category" validate:"required,min=2,max=60"`
	Quantity       int    `json:"quantity" validate:"gte=0"`
	MinQuantity    int    `json:"min_quantity" validate:"gte=0"`
	UnitPriceCents int64  `json:"unit_price_cents" validate:"gte=0"`
	Supplier       string `json:"supplier" validate:"max=120"`
	Barcode        string `json:"barcode" validate:"max=64"`
	Location       string `json:"location" validate:"max=120"`
}

type AdjustStockRequest struct {
	Type      string `json:"type" validate:"required,oneof=in out"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Reason    string `json:"reason" validate:"required,min=1,max=200"`
	RelatedTo *int   `json:"related_to" validate:"omitempty,gt=0"`
}

type ProductResponse struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	Category         string `json:"category"`
	Quantity         int    `json:"quantity"`
	MinQuantity      int    `json:"min_quantity"`
	UnitPriceCents   int64  `json:"unit_price_cents"`
	UnitPriceDisplay string `json:"unit_price_display"`
	LowStock         bool   `json:"low_stock"`
	Supplier         string `json:"supplier,omitempty"`
	Barcode          string `json:"barcode,omitempty"`
	Location         string `json:"location,omitempty"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

type MovementResponse struct {
	ID          string `json:"id"`
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name"`
	Type        string `json:"type"`
	Quantity    int    `json:"quantity"`
	Reason      string `json:"reason"`
	RelatedTo   *int   `json:"related_to,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type AdjustStockResponse struct {
	NewQuantity int               `json:"new_quantity"`
	LowStock    bool              `json:"low_stock"`
	Movement    *MovementResponse `json:"movement"`
}

type DefaultStockService struct {
	ProductRepo  ProductRepository
	MovementRepo MovementRepository
	OrderRepo    OrderRepository
	UserRepo     UserRepository
	Validate     *validator.Validate

	locks *ownerLocks
}

func NewStockService(productRepo ProductRepository, movementRepo MovementRepository, orderRepo OrderRepository, userRepo UserRepository, validate *validator.Validate) *DefaultStockService {
	return &DefaultStockService{
		ProductRepo:  productRepo,
		MovementRepo: movementRepo,
		OrderRepo:    orderRepo,
		UserRepo:     userRepo,
		Validate:     validate,
		locks:        newOwnerLocks(),
	}
}

func (s *DefaultStockService) GetProducts(sub string) ([]*ProductResponse, apierror.ErrorResponse) {
	caller, apierr := resolveOwner(s.UserRepo, sub)
	if apierr != nil {
		return nil, apierr
	}

	products, err := s.ProductRepo.FindByUserID(caller.ID)
	if err != nil {
		log.Errorf("failed to fetch products for user %d: %v", caller.ID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*ProductResponse, len(products))
	for i, product := range products {
		resp[i] = toProductResponse(product)
	}
	return resp, nil
}

func (s *DefaultStockService) CreateProduct(req *ProductRequest, sub string) (*ProductResponse, apierror.ErrorResponse) {
	caller, apierr := resolveOwner(s.UserRepo, sub)
	if apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	now := utils.NowUTC()
	product := &entity.Product{
		UserID:         caller.ID,
		Name:           req.Name,
		Description:    optional(req.Description),
		Category:       req.Category,
		Quantity:       req.Quantity,
		MinQuantity:    req.MinQuantity,
		UnitPriceCents: req.UnitPriceCents,
		Supplier:       optional(req.Supplier),
		Barcode:        optional(req.Barcode),
		Location:       optional(req.Location),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.ProductRepo.Save(product); err != nil {
		log.Errorf("failed to save product: %v", err)
		return nil, apierror.InternalServerError
	}
	return toProductResponse(product), nil
}

// UpdateProduct edits product metadata. Quantity is deliberately left
// alone here: the only path that changes it is AdjustStock, which keeps
// the ledger consistent with the stored quantity.
func (s *DefaultStockService) UpdateProduct(id int, req *ProductRequest, sub string) (*ProductResponse, apierror.ErrorResponse) {
	caller, apierr := resolveOwner(s.UserRepo, sub)
	if apierr != nil {
		return nil, apierr
	}

	product, apierr := s.fetchOwned(id, caller.ID)
	if apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	product.Name = req.Name
	product.Description = optional(req.Description)
	product.Category = req.Category
	product.MinQuantity = req.MinQuantity
	product.UnitPriceCents = req.UnitPriceCents
	product.Supplier = optional(req.Supplier)
	product.Barcode = optional(req.Barcode)
	product.Location = optional(req.Location)
	product.UpdatedAt = utils.NowUTC()

	if err := s.ProductRepo.Save(product); err != nil {
		log.Errorf("failed to update product %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toProductResponse(product), nil
}

func (s *DefaultStockService) DeleteProduct(id int, sub string) apierror.ErrorResponse {
	caller, apierr := resolveOwner(s.UserRepo, sub)
	if apierr != nil {
		return apierr
	}

	product, apierr := s.fetchOwned(id, caller.ID)
	if apierr != nil {
		return apierr
	}

	if err := s.ProductRepo.Delete(product); err != nil {
		log.Errorf("failed to delete product %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *DefaultStockService) AdjustStock(productID int, req *AdjustStockRequest, sub string) (*AdjustStockResponse, apierror.ErrorResponse) {
	caller, apierr := resolveOwner(s.UserRepo, sub)
	if apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	if req.RelatedTo != nil {
		order, err := s.OrderRepo.FindByID(*req.RelatedTo)
		if err != nil {
			log.Errorf("failed to fetch related order %d: %v", *req.RelatedTo, err)
			return nil, apierror.InternalServerError
		}
		if order == nil || order.UserID != caller.ID {
			return nil, apierror.OrderNotFoundError
		}
	}

	// The quantity snapshot read below must stay valid until the
	// transactional write lands, so the whole sequence runs under the
	// owner lock.
	unlock := s.locks.lock(caller.ID)
	defer unlock()

	product, apierr := s.fetchOwned(productID, caller.ID)
	if apierr != nil {
		return nil, apierr
	}

	result, err := stock.Adjust(product, stock.Adjustment{
		Type:      req.Type,
		Quantity:  req.Quantity,
		Reason:    req.Reason,
		UserID:    caller.ID,
		RelatedTo: req.RelatedTo,
	})
	if err != nil {
		if errors.Is(err, stock.ErrInsufficientStock) {
			return nil, apierror.InsufficientStockError
		}
		var invalid *stock.InvalidAdjustmentError
		if errors.As(err, &invalid) {
			return nil, apierror.NewSimple(400, invalid.Error())
		}
		log.Errorf("failed to adjust stock for product %d: %v", productID, err)
		return nil, apierror.InternalServerError
	}

	if err := s.ProductRepo.ApplyAdjustment(product.ID, result.NewQuantity, result.Movement); err != nil {
		log.Errorf("failed to persist adjustment for product %d: %v", productID, err)
		return nil, apierror.InternalServerError
	}

	return &AdjustStockResponse{
		NewQuantity: result.NewQuantity,
		LowStock:    result.NewQuantity < product.MinQuantity,
		Movement:    toMovementResponse(result.Movement),
	}, nil
}

func (s *DefaultStockService) GetMovements(sub string) ([]*MovementResponse, apierror.ErrorResponse) {
	caller, apierr := resolveOwner(s.UserRepo, sub)
	if apierr != nil {
		return nil, apierr
	}

	movements, err := s.MovementRepo.FindByUserID(caller.ID)
	if err != nil {
		log.Errorf("failed to fetch movements for user %d: %v", caller.ID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*MovementResponse, len(movements))
	for i, movement := range movements {
		resp[i] = toMovementResponse(movement)
	}
	return resp, nil
}

func (s *DefaultStockService) GetProductMovements(productID int, sub string) ([]*MovementResponse, apierror.ErrorResponse) {
	caller, apierr := resolveOwner(s.UserRepo, sub)
	if apierr != nil {
		return nil, apierr
	}

	if _, apierr := s.fetchOwned(productID, caller.ID); apierr != nil {
		return nil, apierr
	}

	movements, err := s.MovementRepo.FindByProductID(caller.ID, productID)
	if err != nil {
		log.Errorf("failed to fetch movements for product %d: %v", productID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*MovementResponse, len(movements))
	for i, movement := range movements {
		resp[i] = toMovementResponse(movement)
	}
	return resp, nil
}

func (s *DefaultStockService) fetchOwned(id, ownerID int) (*entity.Product, apierror.ErrorResponse) {
	product, err := s.ProductRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch product %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if product == nil || product.UserID != ownerID {
		return nil, apierror.ProductNotFoundError
	}
	return product, nil
}

func toProductResponse(product *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:               product.ID,
		Name:             product.Name,
		Description:      strOrEmpty(product.Description),
		Category:         product.Category,
		Quantity:         product.Quantity,
		MinQuantity:      product.MinQuantity,
		UnitPriceCents:   product.UnitPriceCents,
		UnitPriceDisplay: utils.FormatCurrencyCents(product.UnitPriceCents),
		LowStock:         product.LowStock(),
		Supplier:         strOrEmpty(product.Supplier),
		Barcode:          strOrEmpty(product.Barcode),
		Location:         strOrEmpty(product.Location),
		CreatedAt:        utils.FormatEpoch(product.CreatedAt),
		UpdatedAt:        utils.FormatEpoch(product.UpdatedAt),
	}
}

func toMovementResponse(movement *entity.StockMovement) *MovementResponse {
	return &MovementResponse{
		ID:          movement.ID,
		ProductID:   movement.ProductID,
		ProductName: movement.ProductName,
		Type:        movement.Type,
		Quantity:    movement.Quantity,
		Reason:      movement.Reason,
		RelatedTo:   movement.RelatedTo,
		CreatedAt:   utils.FormatEpoch(movement.CreatedAt),
	}
}
