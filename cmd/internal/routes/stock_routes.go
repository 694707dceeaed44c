package routes

import (
	"net/http"
	"strconv"

	"oficinapro/cmd/internal/service"
	"oficinapro/cmd/internal/utils"
	"oficinapro/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type StockService interface {
	GetProducts(sub string) ([]*service.ProductResponse, apierror.ErrorResponse)
	CreateProduct(req *service.ProductRequest, sub string) (*service.ProductResponse, apierror.ErrorResponse)
	UpdateProduct(id int, req *service.ProductRequest, sub string) (*service.ProductResponse, apierror.ErrorResponse)
	DeleteProduct(id int, sub string) apierror.ErrorResponse
	AdjustStock(productID int, req *service.AdjustStockRequest, sub string) (*service.AdjustStockResponse, apierror.ErrorResponse)
	GetMovements(sub string) ([]*service.MovementResponse, apierror.ErrorResponse)
	GetProductMovements(productID int, sub string) ([]*service.MovementResponse, apierror.ErrorResponse)
}

type DefaultStockRoute struct {
	StockService StockService
}

func NewStockDefault(stockService StockService) *DefaultStockRoute {
	return &DefaultStockRoute{StockService: stockService}
}

func (r *DefaultStockRoute) GetProducts(c echo.Context) error {
	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	products, apierr := r.StockService.GetProducts(data.Sub)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"products": products}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultStockRoute) CreateProduct(c echo.Context) error {
	var req service.ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	product, apierr := r.StockService.CreateProduct(&req, data.Sub)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, product)
}

func (r *DefaultStockRoute) UpdateProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errResp := apierror.NewSimple(400, "ID is not a number")
		return c.JSON(errResp.Code(), errResp)
	}

	var req service.ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	product, apierr := r.StockService.UpdateProduct(id, &req, data.Sub)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, product)
}

func (r *DefaultStockRoute) DeleteProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errResp := apierror.NewSimple(400, "ID is not a number")
		return c.JSON(errResp.Code(), errResp)
	}

	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	apierr := r.StockService.DeleteProduct(id, data.Sub)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (r *DefaultStockRoute) AdjustStock(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errResp := apierror.NewSimple(400, "ID is not a number")
		return c.JSON(errResp.Code(), errResp)
	}

	var req service.AdjustStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	result, apierr := r.StockService.AdjustStock(id, &req, data.Sub)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, result)
}

func (r *DefaultStockRoute) GetMovements(c echo.Context) error {
	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	movements, apierr := r.StockService.GetMovements(data.Sub)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"movements": movements}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultStockRoute) GetProductMovements(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errResp := apierror.NewSimple(400, "ID is not a number")
		return c.JSON(errResp.Code(), errResp)
	}

	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	movements, apierr := r.StockService.GetProductMovements(id, data.Sub)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"movements": movements}
	return c.JSON(http.StatusOK, &resp)
}
