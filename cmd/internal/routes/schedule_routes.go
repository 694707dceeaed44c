package routes

import (
	"net/http"
	"strconv"

	"oficinapro/cmd/internal/service"
	"oficinapro/cmd/internal/utils"
	"oficinapro/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ScheduleService interface {
	GetSchedules(sub, date string) ([]*service.ScheduleResponse, apierror.ErrorResponse)
	CreateSchedule(req *service.ScheduleRequest, sub string) (*service.ScheduleResponse, apierror.ErrorResponse)
	UpdateSchedule(id int, req *service.ScheduleRequest, sub string) (*service.ScheduleResponse, apierror.ErrorResponse)
	DeleteSchedule(id int, sub string) apierror.ErrorResponse
}

type DefaultScheduleRoute struct {
	ScheduleService ScheduleService
}

func NewScheduleDefault(scheduleService ScheduleService) *DefaultScheduleRoute {
	return &DefaultScheduleRoute{ScheduleService: scheduleService}
}

func (r *DefaultScheduleRoute) GetSchedules(c echo.Context) error {
	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	// Optional ?date=YYYY-MM-DD narrows the listing to one day.
	date := c.QueryParam("date")

	scheds, apierr := r.ScheduleService.GetSchedules(data.Sub, date)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"schedules": scheds}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultScheduleRoute) CreateSchedule(c echo.Context) error {
	var req service.ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	sched, apierr := r.ScheduleService.CreateSchedule(&req, data.Sub)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, sched)
}

func (r *DefaultScheduleRoute) UpdateSchedule(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errResp := apierror.NewSimple(400, "ID is not a number")
		return c.JSON(errResp.Code(), errResp)
	}

	var req service.ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	sched, apierr := r.ScheduleService.UpdateSchedule(id, &req, data.Sub)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, sched)
}

func (r *DefaultScheduleRoute) DeleteSchedule(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errResp := apierror.NewSimple(400, "ID is not a number")
		return c.JSON(errResp.Code(), errResp)
	}

	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	apierr := r.ScheduleService.DeleteSchedule(id, data.Sub)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
