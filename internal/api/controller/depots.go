package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) DepotRanking(ctx echo.Context) error {
	resp, err := c.depotService.Ranking(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}
