package controller

import (
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"github.com/malovets/fleetops/internal/pkg/constants"
	"github.com/malovets/fleetops/internal/pkg/logger"
)

var upgrader = websocket.Upgrader{
	// origin is already checked by the router CORS middleware
	CheckOrigin: func(*http.Request) bool { return true },
}

// StreamSummary pushes a fresh fleet snapshot to the dashboard on a fixed
// interval until the peer goes away or the server shuts down.
func (c *Controller) StreamSummary(ctx echo.Context) error {
	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	reqCtx := ctx.Request().Context()

	interval := viper.GetDuration(constants.ViperStreamInterval)
	if interval <= 0 {
		interval = 15 * time.Second
	}

	// the read loop only serves to notice the peer closing the socket
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		snapshot, snapErr := c.fleetService.Snapshot(reqCtx)
		if snapErr != nil {
			logger.Errorf(reqCtx, "snapshot for stream: %s", snapErr.Error())
		} else {
			payload, marshalErr := sonic.Marshal(snapshot)
			if marshalErr != nil {
				return marshalErr
			}
			if writeErr := conn.WriteMessage(websocket.TextMessage, payload); writeErr != nil {
				return nil
			}
		}

		select {
		case <-reqCtx.Done():
			return nil
		case <-c.done:
			return nil
		case <-done:
			return nil
		case <-ticker.C:
		}
	}
}
