package service

import (
	"oficinapro/cmd/internal/domain/entity"
	"oficinapro/cmd/internal/utils"
	"oficinapro/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ClientRepository interface {
	FindByID(id int) (*entity.Client, error)
	FindByUserID(userID int) ([]*entity.Client, error)
	Save(client *entity.Client) error
	Delete(client *entity.Client) error
}

type ClientRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=80"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"max=20"`
	Address      string `json:"address" validate:"max=200"`
	VehicleModel string `json:"vehicle_model" validate:"max=80"`
	VehiclePlate string `json:"vehicle_plate" validate:"max=10"`
}

type ClientResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	VehicleModel string `json:"vehicle_model,omitempty"`
	VehiclePlate string `json:"vehicle_plate,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type DefaultClientService struct {
	ClientRepo ClientRepository
	UserRepo   UserRepository
	Validate   *validator.Validate
}

func NewClientService(clientRepo ClientRepository, userRepo UserRepository, validate *validator.Validate) *DefaultClientService {
	return &DefaultClientService{ClientRepo: clientRepo, UserRepo: userRepo, Validate: validate}
}

func (c *DefaultClientService) GetClients(sub string) ([]*ClientResponse, apierror.ErrorResponse) {
	caller, apierr := resolveOwner(c.UserRepo, sub)
	if apierr != nil {
		return nil, apierr
	}

	clients, err := c.ClientRepo.FindByUserID(caller.ID)
	if err != nil {
		log.Errorf("failed to fetch clients for user %d: %v", caller.ID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*ClientResponse, len(clients))
	for i, client := range clients {
		resp[i] = toClientResponse(client)
	}
	return resp, nil
}

func (c *DefaultClientService) CreateClient(req *ClientRequest, sub string) (*ClientResponse, apierror.ErrorResponse) {
	caller, apierr := resolveOwner(c.UserRepo, sub)
	if apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if err := c.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	now := utils.NowUTC()
	client := &entity.Client{
		UserID:       caller.ID,
		Name:         req.Name,
		Email:        optional(req.Email),
		Phone:        optional(req.Phone),
		Address:      optional(req.Address),
		VehicleModel: optional(req.VehicleModel),
		VehiclePlate: optional(req.VehiclePlate),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := c.ClientRepo.Save(client); err != nil {
		log.Errorf("failed to save client: %v", err)
		return nil, apierror.InternalServerError
	}
	return toClientResponse(client), nil
}

func (c *DefaultClientService) UpdateClient(id int, req *ClientRequest, sub string) (*ClientResponse, apierror.ErrorResponse) {
	caller, apierr := resolveOwner(c.UserRepo, sub)
	if apierr != nil {
		return nil, apierr
	}

	client, apierr := c.fetchOwned(id, caller.ID)
	if apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if err := c.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	client.Name = req.Name
	client.Email = optional(req.Email)
	client.Phone = optional(req.Phone)
	client.Address = optional(req.Address)
	client.VehicleModel = optional(req.VehicleModel)
	client.VehiclePlate = optional(req.VehiclePlate)
	client.UpdatedAt = utils.NowUTC()

	if err := c.ClientRepo.Save(client); err != nil {
		log.Errorf("failed to update client %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toClientResponse(client), nil
}

func (c *DefaultClientService) DeleteClient(id int, sub string) apierror.ErrorResponse {
	caller, apierr := resolveOwner(c.UserRepo, sub)
	if apierr != nil {
		return apierr
	}

	client, apierr := c.fetchOwned(id, caller.ID)
	if apierr != nil {
		return apierr
	}

	if err := c.ClientRepo.Delete(client); err != nil {
		log.Errorf("failed to delete client %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func (c *DefaultClientService) fetchOwned(id, ownerID int) (*entity.Client, apierror.ErrorResponse) {
	client, err := c.ClientRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch client %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if client == nil || client.UserID != ownerID {
		return nil, apierror.ClientNotFoundError
	}
	return client, nil
}

func toClientResponse(client *entity.Client) *ClientResponse {
	return &ClientResponse{
		ID:           client.ID,
		Name:         client.Name,
		Email:        strOrEmpty(client.Email),
		Phone:        utils.FormatPhone(strOrEmpty(client.Phone)),
		Address:      strOrEmpty(client.Address),
		VehicleModel: strOrEmpty(client.VehicleModel),
		VehiclePlate: strOrEmpty(client.VehiclePlate),
		CreatedAt:    utils.FormatEpoch(client.CreatedAt),
		UpdatedAt:    utils.FormatEpoch(client.UpdatedAt),
	}
}
