package service

import (
	"oficinapro/cmd/internal/domain/entity"
	"oficinapro/cmd/internal/utils"
	"oficinapro/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type OrderRepository interface {
	FindByID(id int) (*entity.ServiceOrder, error)
	FindByUserID(userID int) ([]*entity.ServiceOrder, error)
	Save(order *entity.ServiceOrder) error
	Delete(order *entity.ServiceOrder) error
}

type OrderRequest struct {
	ClientID    int    `json:"client_id" validate:"required,gt=0"`
	Title       string `json:"title" validate:"required,min=3,max=128"`
	Description string `json:"description" validate:"max=1000"`
	Status      string `json:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	TotalCents  *int64 `json:"total_cents" validate:"omitempty,gte=0"`
}

type OrderResponse struct {
	ID           int    `json:"id"`
	ClientID     int    `json:"client_id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Status       string `json:"status"`
	TotalCents   *int64 `json:"total_cents,omitempty"`
	TotalDisplay string `json:"total_display,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type DefaultOrderService struct {
	OrderRepo  OrderRepository
	ClientRepo ClientRepository
	UserRepo   UserRepository
	Validate   *validator.Validate
}

func NewOrderService(orderRepo OrderRepository, clientRepo ClientRepository, userRepo UserRepository, validate *validator.Validate) *DefaultOrderService {
	return &DefaultOrderService{OrderRepo: orderRepo, ClientRepo: clientRepo, UserRepo: userRepo, Validate: validate}
}

func (o *DefaultOrderService) GetOrders(sub string) ([]*OrderResponse, apierror.ErrorResponse) {
	caller, apierr := resolveOwner(o.UserRepo, sub)
	if apierr != nil {
		return nil, apierr
	}

	orders, err := o.OrderRepo.FindByUserID(caller.ID)
	if err != nil {
		log.Errorf("failed to fetch orders for user %d: %v", caller.ID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*OrderResponse, len(orders))
	for i, order := range orders {
		resp[i] = toOrderResponse(order)
	}
	return resp, nil
}

func (o *DefaultOrderService) CreateOrder(req *OrderRequest, sub string) (*OrderResponse, apierror.ErrorResponse) {
	caller, apierr := resolveOwner(o.UserRepo, sub)
	if apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if err := o.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	if apierr := o.checkClientOwned(req.ClientID, caller.ID); apierr != nil {
		return nil, apierr
	}

	status := req.Status
	if status == "" {
		status = entity.OrderStatusPending
	}

	now := utils.NowUTC()
	order := &entity.ServiceOrder{
		UserID:      caller.ID,
		ClientID:    req.ClientID,
		Title:       req.Title,
		Description: optional(req.Description),
		Status:      status,
		TotalCents:  req.TotalCents,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := o.OrderRepo.Save(order); err != nil {
		log.Errorf("failed to save order: %v", err)
		return nil, apierror.InternalServerError
	}
	return toOrderResponse(order), nil
}

func (o *DefaultOrderService) UpdateOrder(id int, req *OrderRequest, sub string) (*OrderResponse, apierror.ErrorResponse) {
	caller, apierr := resolveOwner(o.UserRepo, sub)
	if apierr != nil {
		return nil, apierr
	}

	order, apierr := o.fetchOwned(id, caller.ID)
	if apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if err := o.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	if req.ClientID != order.ClientID {
		if apierr := o.checkClientOwned(req.ClientID, caller.ID); apierr != nil {
			return nil, apierr
		}
	}

	order.ClientID = req.ClientID
	order.Title = req.Title
	order.Description = optional(req.Description)
	if req.Status != "" {
		order.Status = req.Status
	}
	order.TotalCents = req.TotalCents
	order.UpdatedAt = utils.NowUTC()

	if err := o.OrderRepo.Save(order); err != nil {
		log.Errorf("failed to update order %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toOrderResponse(order), nil
}

func (o *DefaultOrderService) DeleteOrder(id int, sub string) apierror.ErrorResponse {
	caller, apierr := resolveOwner(o.UserRepo, sub)
	if apierr != nil {
		return apierr
	}

	order, apierr := o.fetchOwned(id, caller.ID)
	if apierr != nil {
		return apierr
	}

	if err := o.OrderRepo.Delete(order); err != nil {
		log.Errorf("failed to delete order %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func (o *DefaultOrderService) fetchOwned(id, ownerID int) (*entity.ServiceOrder, apierror.ErrorResponse) {
	order, err := o.OrderRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch order %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if order == nil || order.UserID != ownerID {
		return nil, apierror.OrderNotFoundError
	}
	return order, nil
}

func (o *DefaultOrderService) checkClientOwned(clientID, ownerID int) apierror.ErrorResponse {
	client, err := o.ClientRepo.FindByID(clientID)
	if err != nil {
		log.Errorf("failed to fetch client %d: %v", clientID, err)
		return apierror.InternalServerError
	}
	if client == nil || client.UserID != ownerID {
		return apierror.ClientNotFoundError
	}
	return nil
}

func toOrderResponse(order *entity.ServiceOrder) *OrderResponse {
	resp := &OrderResponse{
		ID:          order.ID,
		ClientID:    order.ClientID,
		Title:       order.Title,
		Description: strOrEmpty(order.Description),
		Status:      order.Status,
		TotalCents:  order.TotalCents,
		CreatedAt:   utils.FormatEpoch(order.CreatedAt),
		UpdatedAt:   utils.FormatEpoch(order.UpdatedAt),
	}
	if order.TotalCents != nil {
		resp.TotalDisplay = utils.FormatCurrencyCents(*order.TotalCents)
	}
	return resp
}
