package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/malovets/fleetops/internal/domain"
	"github.com/malovets/fleetops/internal/pkg/logger"
)

type ListDevicesOpts struct {
	DepotName *string
}

var deviceColumns = []string{
	"id", "name", "depot_name", "health_level", "rolling_average",
	"days_to_threshold", "offline_frequency", "created_at", "updated_at",
}

func (s *store) ListDevices(ctx context.Context, opts ListDevicesOpts) ([]*domain.Device, error) {
	query := builder().Select(deviceColumns...).
		From(tableDevices).
		OrderBy("depot_name, name")

	if opts.DepotName != nil {
		query = query.Where(sq.Eq{"depot_name": *opts.DepotName})
	}

	var selected []*domain.Device

	err := s.pool.Selectx(ctx, &selected, query)
	if err != nil {
		logger.Error(ctx, err.Error())
		return nil, wrapErr(err)
	}

	return selected, nil
}
