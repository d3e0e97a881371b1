package domain

import (
	"time"

	"github.com/malovets/fleetops/internal/pkg/urgency"
)

// Tank is a monitored fuel tank as stored by the ingestion side. Nullable
// columns stay nullable here; the classifier owns the fallback chain.
type Tank struct {
	ID               string    `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	LocationName     string    `db:"location_name" json:"location_name"`
	CurrentLevel     *float64  `db:"current_level" json:"current_level"`
	Capacity         *float64  `db:"capacity" json:"capacity"`
	DailyConsumption *float64  `db:"daily_consumption" json:"daily_consumption"`
	DaysRemaining    *float64  `db:"days_remaining" json:"days_remaining"`
	DeviceOnline     bool      `db:"device_online" json:"device_online"`
	CreatedAt        time.Time `db:"created_at" json:"-"`
	UpdatedAt        time.Time `db:"updated_at" json:"-"`
}

// ClassifiedTank is the view-model the dashboard renders: the raw record plus
// urgency, confidence and the projected empty date. Recomputed on every fetch,
// never persisted.
type ClassifiedTank struct {
	Tank
	Urgency        urgency.Level      `json:"urgency"`
	Confidence     urgency.Confidence `json:"confidence"`
	PredictedEmpty *time.Time         `json:"predicted_empty,omitempty"`
}

func (t *ClassifiedTank) UrgencyLevel() urgency.Level { return t.Urgency }

func (t *ClassifiedTank) DaysLeft() *float64 { return t.DaysRemaining }

func (t *ClassifiedTank) DisplayName() string {
	if t.LocationName != "" {
		return t.LocationName
	}
	return t.Name
}

// Device is a telemetry unit attached to a vehicle or a tank. HealthLevel and
// DaysToThreshold play the roles current level and days remaining play for
// tanks; OfflineFrequency is the share of missed heartbeats over the rolling
// window.
type Device struct {
	ID               string    `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	DepotName        string    `db:"depot_name" json:"depot_name"`
	HealthLevel      *float64  `db:"health_level" json:"health_level"`
	RollingAverage   *float64  `db:"rolling_average" json:"rolling_average"`
	DaysToThreshold  *float64  `db:"days_to_threshold" json:"days_to_threshold"`
	OfflineFrequency float64   `db:"offline_frequency" json:"offline_frequency"`
	CreatedAt        time.Time `db:"created_at" json:"-"`
	UpdatedAt        time.Time `db:"updated_at" json:"-"`
}

// reliableOfflineCutoff is the offline-frequency ratio above which a device no
// longer counts as a trustworthy signal source.
const reliableOfflineCutoff = 0.5

// Reliable reports whether the device checks in often enough for its readings
// to back a high-confidence classification.
func (d *Device) Reliable() bool {
	return d.OfflineFrequency < reliableOfflineCutoff
}

type ClassifiedDevice struct {
	Device
	Urgency         urgency.Level      `json:"urgency"`
	Confidence      urgency.Confidence `json:"confidence"`
	PredictedBreach *time.Time         `json:"predicted_breach,omitempty"`
}

func (d *ClassifiedDevice) UrgencyLevel() urgency.Level { return d.Urgency }

func (d *ClassifiedDevice) DaysLeft() *float64 { return d.DaysToThreshold }

func (d *ClassifiedDevice) DisplayName() string { return d.Name }
