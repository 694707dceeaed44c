package routes

import (
	"net/http"
	"strconv"

	"oficinapro/cmd/internal/service"
	"oficinapro/cmd/internal/utils"
	"oficinapro/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ClientService interface {
	GetClients(sub string) ([]*service.ClientResponse, apierror.ErrorResponse)
	CreateClient(req *service.ClientRequest, sub string) (*service.ClientResponse, apierror.ErrorResponse)
	UpdateClient(id int, req *service.ClientRequest, sub string) (*service.ClientResponse, apierror.ErrorResponse)
	DeleteClient(id int, sub string) apierror.ErrorResponse
}

type DefaultClientRoute struct {
	ClientService ClientService
}

func NewClientDefault(clientService ClientService) *DefaultClientRoute {
	return &DefaultClientRoute{ClientService: clientService}
}

func (r *DefaultClientRoute) GetClients(c echo.Context) error {
	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	clients, apierr := r.ClientService.GetClients(data.Sub)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"clients": clients}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultClientRoute) CreateClient(c echo.Context) error {
	var req service.ClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	client, apierr := r.ClientService.CreateClient(&req, data.Sub)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, client)
}

func (r *DefaultClientRoute) UpdateClient(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errResp := apierror.NewSimple(400, "ID is not a number")
		return c.JSON(errResp.Code(), errResp)
	}

	var req service.ClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	client, apierr := r.ClientService.UpdateClient(id, &req, data.Sub)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, client)
}

func (r *DefaultClientRoute) DeleteClient(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errResp := apierror.NewSimple(400, "ID is not a number")
		return c.JSON(errResp.Code(), errResp)
	}

	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	apierr := r.ClientService.DeleteClient(id, data.Sub)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
