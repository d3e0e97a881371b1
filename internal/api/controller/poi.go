package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/malovets/fleetops/internal/domain/dto"
)

func (c *Controller) DiscoverPOI(ctx echo.Context) error {
	req := new(dto.DiscoverPOIRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	resp, err := c.poiService.Discover(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}
