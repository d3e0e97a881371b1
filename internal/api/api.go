package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/malovets/fleetops/internal/api/controller"
	"github.com/malovets/fleetops/internal/pkg/cache"
	"github.com/malovets/fleetops/internal/pkg/constants"
	"github.com/malovets/fleetops/internal/pkg/logger"
	"github.com/malovets/fleetops/internal/pkg/scoring"
	"github.com/malovets/fleetops/internal/pkg/store"
	"github.com/malovets/fleetops/internal/pkg/urgency"
	"github.com/malovets/fleetops/internal/service/depot"
	"github.com/malovets/fleetops/internal/service/fleet"
	"github.com/malovets/fleetops/internal/service/poi"
)

type APIService struct {
	router       *echo.Echo
	cntrl        *controller.Controller
	fleetService *fleet.Service
	depotService *depot.Service
	poiService   *poi.Service
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	svc.cntrl.Shutdown()
	return svc.router.Shutdown(ctx)
}

func NewAPIService(st store.Store, snapshotCache *cache.Cache) (*APIService, error) {
	svc := &APIService{router: echo.New()}
	svc.router.HideBanner = true

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.Recover())
	svc.router.Use(RequestIDMiddleware)
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: viper.GetStringSlice(constants.ViperCORSOrigins),
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	svc.fleetService = fleet.NewFleetService(st, snapshotCache, thresholdsFromConfig())
	svc.depotService = depot.NewDepotService(st, weightsFromConfig())
	svc.poiService = poi.NewPOIService(st)

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.fleetService, svc.depotService, svc.poiService)
	svc.cntrl = cntrl

	tanks := api.Group("/tanks")
	tanks.GET("/list", cntrl.ListTanks)
	tanks.GET("/summary", cntrl.TankSummary)

	devices := api.Group("/devices")
	devices.GET("/list", cntrl.ListDevices)
	devices.GET("/summary", cntrl.DeviceSummary)

	api.GET("/fleet/snapshot", cntrl.FleetSnapshot)
	api.GET("/depots/ranking", cntrl.DepotRanking)

	poiGroup := api.Group("/poi")
	poiGroup.POST("/discover", cntrl.DiscoverPOI, svc.AdminMiddleware)

	api.GET("/stream/summary", cntrl.StreamSummary)

	return svc, nil
}

// thresholdsFromConfig reads the urgency policy from config, falling back to
// the canonical defaults for any key left unset. The policy lives here and
// nowhere else; pages must not carry their own copies of the cutoffs.
func thresholdsFromConfig() urgency.Thresholds {
	t := urgency.DefaultThresholds()
	if v := viper.GetFloat64(constants.ViperUrgencyCriticalDays); v > 0 {
		t.CriticalDays = v
	}
	if v := viper.GetFloat64(constants.ViperUrgencyWarningDays); v > 0 {
		t.WarningDays = v
	}
	if v := viper.GetFloat64(constants.ViperUrgencyCriticalLevel); v > 0 {
		t.CriticalLevel = v
	}
	if v := viper.GetFloat64(constants.ViperUrgencyWarningLevel); v > 0 {
		t.WarningLevel = v
	}
	return t
}

func weightsFromConfig() scoring.Weights {
	w := scoring.DefaultWeights()
	if v := viper.GetFloat64(constants.ViperWeightSafety); v > 0 {
		w.Safety = v
	}
	if v := viper.GetFloat64(constants.ViperWeightEfficiency); v > 0 {
		w.Efficiency = v
	}
	if v := viper.GetFloat64(constants.ViperWeightUtilization); v > 0 {
		w.Utilization = v
	}
	if v := viper.GetFloat64(constants.ViperWeightEvents); v > 0 {
		w.Events = v
	}
	return w
}
