package store

import (
	"context"

	"github.com/malovets/fleetops/internal/domain"
	"github.com/malovets/fleetops/internal/pkg/logger"
)

var tankColumns = []string{
	"id", "name", "location_name", "current_level", "capacity",
	"daily_consumption", "days_remaining", "device_online",
	"created_at", "updated_at",
}

func (s *store) ListTanks(ctx context.Context) ([]*domain.Tank, error) {
	query := builder().Select(tankColumns...).
		From(tableTanks).
		OrderBy("location_name, name")

	var selected []*domain.Tank

	err := s.pool.Selectx(ctx, &selected, query)
	if err != nil {
		logger.Error(ctx, err.Error())
		return nil, wrapErr(err)
	}

	return selected, nil
}
