package routes

import (
	"net/http"
	"strconv"

	"oficinapro/cmd/internal/service"
	"oficinapro/cmd/internal/utils"
	"oficinapro/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type OrderService interface {
	GetOrders(sub string) ([]*service.OrderResponse, apierror.ErrorResponse)
	CreateOrder(req *service.OrderRequest, sub string) (*service.OrderResponse, apierror.ErrorResponse)
	UpdateOrder(id int, req *service.OrderRequest, sub string) (*service.OrderResponse, apierror.ErrorResponse)
	DeleteOrder(id int, sub string) apierror.ErrorResponse
}

type DefaultOrderRoute struct {
	OrderService OrderService
}

func NewOrderDefault(orderService OrderService) *DefaultOrderRoute {
	return &DefaultOrderRoute{OrderService: orderService}
}

func (r *DefaultOrderRoute) GetOrders(c echo.Context) error {
	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	orders, apierr := r.OrderService.GetOrders(data.Sub)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"orders": orders}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultOrderRoute) CreateOrder(c echo.Context) error {
	var req service.OrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	order, apierr := r.OrderService.CreateOrder(&req, data.Sub)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, order)
}

func (r *DefaultOrderRoute) UpdateOrder(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errResp := apierror.NewSimple(400, "ID is not a number")
		return c.JSON(errResp.Code(), errResp)
	}

	var req service.OrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	order, apierr := r.OrderService.UpdateOrder(id, &req, data.Sub)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, order)
}

func (r *DefaultOrderRoute) DeleteOrder(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errResp := apierror.NewSimple(400, "ID is not a number")
		return c.JSON(errResp.Code(), errResp)
	}

	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	apierr := r.OrderService.DeleteOrder(id, data.Sub)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
