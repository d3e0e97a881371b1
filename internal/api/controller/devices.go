package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) ListDevices(ctx echo.Context) error {
	var depotName *string
	if depot := ctx.QueryParams().Get("depot"); depot != "" {
		depotName = &depot
	}

	resp, err := c.fleetService.ListDevices(ctx.Request().Context(), depotName)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) DeviceSummary(ctx echo.Context) error {
	resp, err := c.fleetService.ListDevices(ctx.Request().Context(), nil)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp.Summary)
}
