package fleet

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/malovets/fleetops/internal/domain"
	"github.com/malovets/fleetops/internal/domain/dto"
	"github.com/malovets/fleetops/internal/pkg/logger"
	"github.com/malovets/fleetops/internal/pkg/store"
	"github.com/malovets/fleetops/internal/pkg/urgency"
)

const (
	cacheKeyTanks      = "fleetops:tanks"
	cacheKeyDevices    = "fleetops:devices"
	cacheKeyDevicesFmt = "fleetops:devices:%s"
)

// Cache is the slice of the snapshot cache the service needs. Satisfied by
// *cache.Cache; cache failures must never fail a request, so both methods are
// treated as best-effort by the callers here.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
}

// Service turns raw tank and device records into the classified, ranked and
// summarized views the dashboard renders. Classification is recomputed on
// every fetch; the cache only shortcuts the store round-trip.
type Service struct {
	store      store.Store
	cache      Cache
	thresholds urgency.Thresholds
	now        func() time.Time
}

func NewFleetService(store store.Store, cache Cache, thresholds urgency.Thresholds) *Service {
	return &Service{
		store:      store,
		cache:      cache,
		thresholds: thresholds,
		now:        time.Now,
	}
}

func (s *Service) ListTanks(ctx context.Context) (*dto.TankListResponse, error) {
	var cached dto.TankListResponse
	if hit, err := s.cache.Get(ctx, cacheKeyTanks, &cached); err != nil {
		logger.Warnf(ctx, "tank cache read: %s", err.Error())
	} else if hit {
		return &cached, nil
	}

	tanks, err := s.store.ListTanks(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListTanks: %w", err)
	}

	now := s.now()
	classified := make([]*domain.ClassifiedTank, 0, len(tanks))
	for _, tank := range tanks {
		classified = append(classified, &domain.ClassifiedTank{
			Tank:           *tank,
			Urgency:        s.thresholds.Classify(tank.DaysRemaining, tank.CurrentLevel),
			Confidence:     urgency.ConfidenceFor(tank.DailyConsumption, tank.DeviceOnline),
			PredictedEmpty: urgency.PredictedDate(tank.DaysRemaining, now),
		})
	}

	resp := &dto.TankListResponse{
		Tanks:   urgency.Rank(classified),
		Summary: urgency.Summarize(classified),
	}

	if err = s.cache.Set(ctx, cacheKeyTanks, resp); err != nil {
		logger.Warnf(ctx, "tank cache write: %s", err.Error())
	}

	return resp, nil
}

func (s *Service) ListDevices(ctx context.Context, depotName *string) (*dto.DeviceListResponse, error) {
	cacheKey := cacheKeyDevices
	if depotName != nil {
		cacheKey = fmt.Sprintf(cacheKeyDevicesFmt, *depotName)
	}

	var cached dto.DeviceListResponse
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
		logger.Warnf(ctx, "device cache read: %s", err.Error())
	} else if hit {
		return &cached, nil
	}

	devices, err := s.store.ListDevices(ctx, store.ListDevicesOpts{DepotName: depotName})
	if err != nil {
		return nil, fmt.Errorf("store.ListDevices: %w", err)
	}

	now := s.now()
	classified := make([]*domain.ClassifiedDevice, 0, len(devices))
	for _, device := range devices {
		classified = append(classified, &domain.ClassifiedDevice{
			Device:          *device,
			Urgency:         s.thresholds.Classify(device.DaysToThreshold, device.HealthLevel),
			Confidence:      urgency.ConfidenceFor(device.RollingAverage, device.Reliable()),
			PredictedBreach: urgency.PredictedDate(device.DaysToThreshold, now),
		})
	}

	resp := &dto.DeviceListResponse{
		Devices: urgency.Rank(classified),
		Summary: urgency.Summarize(classified),
	}

	if err = s.cache.Set(ctx, cacheKey, resp); err != nil {
		logger.Warnf(ctx, "device cache write: %s", err.Error())
	}

	return resp, nil
}

// Snapshot fetches both summaries in parallel for the dashboard cards and the
// websocket stream.
func (s *Service) Snapshot(ctx context.Context) (*dto.SnapshotResponse, error) {
	var (
		tankResp   *dto.TankListResponse
		deviceResp *dto.DeviceListResponse
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		tankResp, err = s.ListTanks(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		deviceResp, err = s.ListDevices(egCtx, nil)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("err in goroutine: %w", err)
	}

	return &dto.SnapshotResponse{
		Tanks:       tankResp.Summary,
		Devices:     deviceResp.Summary,
		GeneratedAt: s.now().UTC(),
	}, nil
}
