package store

import (
	"context"

	"github.com/malovets/fleetops/internal/domain"
	"github.com/malovets/fleetops/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	ListTanks(ctx context.Context) ([]*domain.Tank, error)
	ListDevices(ctx context.Context, opts ListDevicesOpts) ([]*domain.Device, error)
	ListVehicleRecords(ctx context.Context, opts ListVehicleRecordsOpts) ([]domain.VehicleRecord, error)
	DiscoverPOIClusters(ctx context.Context, opts DiscoverPOIOpts) ([]*domain.POICluster, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
