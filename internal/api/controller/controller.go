package controller

import (
	"sync"

	"github.com/malovets/fleetops/internal/service/depot"
	"github.com/malovets/fleetops/internal/service/fleet"
	"github.com/malovets/fleetops/internal/service/poi"
)

type Controller struct {
	fleetService *fleet.Service
	depotService *depot.Service
	poiService   *poi.Service

	done      chan struct{}
	closeOnce sync.Once
}

func NewController(fleetService *fleet.Service, depotService *depot.Service, poiService *poi.Service) *Controller {
	return &Controller{
		fleetService: fleetService,
		depotService: depotService,
		poiService:   poiService,
		done:         make(chan struct{}),
	}
}

// Shutdown ends long-lived handlers such as the summary stream. Echo's
// Shutdown does not cancel the request context of hijacked connections, so
// streams listen on this channel instead.
func (c *Controller) Shutdown() {
	c.closeOnce.Do(func() { close(c.done) })
}
