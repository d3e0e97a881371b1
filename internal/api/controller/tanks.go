package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) ListTanks(ctx echo.Context) error {
	resp, err := c.fleetService.ListTanks(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) TankSummary(ctx echo.Context) error {
	resp, err := c.fleetService.ListTanks(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp.Summary)
}
