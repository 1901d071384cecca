package main

import (
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukydev/citybike/internal/factory"
	"github.com/ukydev/citybike/internal/fleet"
	"github.com/ukydev/citybike/internal/models"
	"github.com/ukydev/citybike/internal/pricing"
)

func newDemoCmd(root *rootOptions) *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run an in-memory demo: import sample data, record a trip and price it",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, l, err := root.setup()
			if err != nil {
				return err
			}
			start := time.Now()
			if at != "" {
				if start, err = time.Parse(time.RFC3339, at); err != nil {
					return fmt.Errorf("--at: %w", err)
				}
			}
			return runDemo(cmd.OutOrStdout(), l, start)
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "trip start time (RFC3339), defaults to now")
	return cmd
}

var demoRiders = []factory.Record{
	{"user_id": "U001", "name": "Laia Puig", "email": "laia@example.com", "user_type": "member", "tier": "premium"},
	{"user_id": "U002", "name": "Marc Soler", "email": "not-an-email", "user_type": "casual"},
	{"user_id": "U003", "name": "Núria Vidal", "user_type": "Member"},
	{"name": "Missing Id", "email": "missing@example.com"},
}

var demoStations = []factory.Record{
	{"station_id": "ST01", "station_name": "Plaça Catalunya", "capacity": 20, "latitude": 41.3870, "longitude": 2.1701},
	{"station_id": "ST02", "station_name": "Sagrada Família", "capacity": "15", "latitude": 41.4036, "longitude": 2.1744},
}

func runDemo(out io.Writer, l *log.Logger, start time.Time) error {
	reg := fleet.NewRegistry(fleet.WithLogger(l))

	fmt.Fprintln(out, "--- Loading data into system ---")
	report := reg.LoadFromExternalRecords(demoRiders, demoStations)
	fmt.Fprintf(out, "Loaded %d users\n", report.Riders)
	fmt.Fprintf(out, "Loaded %d stations\n", report.Stations)
	for _, f := range report.Failures {
		fmt.Fprintf(out, "Skipped %v\n", f)
	}

	bike, err := factory.NewVehicleFactory(reg.IDs()).CreateFromRecord(factory.Record{
		"bike_id":       "DEMO-E001",
		"bike_type":     "electric",
		"battery_level": 85.0,
		"max_range_km":  45.0,
	})
	if err != nil {
		return fmt.Errorf("demo bike: %w", err)
	}
	reg.AddVehicle(bike)
	fmt.Fprintf(out, "Created demo bike: %v\n", bike)

	from, _ := reg.Station("ST01")
	to, _ := reg.Station("ST02")
	if err := from.Dock(bike); err != nil {
		return err
	}

	for _, riderID := range []string{"U001", "U002"} {
		rider, ok := reg.Rider(riderID)
		if !ok {
			return fmt.Errorf("demo rider %s: %w", riderID, models.ErrNotFound)
		}
		trip, err := rideOnce(reg, rider, bike, from, to, start, 25*time.Minute, 3.5)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n--- Trip for %s ---\n", rider)
		fmt.Fprintf(out, "Trip duration: %d minutes\n", trip.DurationMinutes())
		fmt.Fprintf(out, "Trip distance: %.1f km\n", trip.DistanceKm())
		fmt.Fprintf(out, "Trip cost: €%.2f\n", reg.CalculateTripCost(trip))
		for _, s := range []pricing.Strategy{pricing.CasualPricing{}, pricing.MemberPricing{}, pricing.PeakHourPricing{}} {
			fmt.Fprintf(out, "  %-16s €%.2f\n", s.Name(), s.CalculateCost(trip))
		}
		from, to = to, from
	}

	rec, err := models.NewMaintenanceRecord(reg.IDs(), "", bike, start.Add(time.Hour), models.MaintenanceInspection, 15, "post-demo check")
	if err != nil {
		return err
	}
	if err := reg.RecordMaintenance(rec); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%v -> %v\n", rec, bike)

	fmt.Fprintln(out, "\n--- System Summary ---")
	fmt.Fprintln(out, reg)
	fmt.Fprintf(out, "Total trips recorded: %d\n", len(reg.Trips()))
	return nil
}

// rideOnce moves v from one station to another, recording the trip and
// walking the vehicle through in_use back to available.
func rideOnce(reg *fleet.Registry, r models.Rider, v models.Vehicle, from, to *models.Station,
	start time.Time, d time.Duration, km float64) (*models.Trip, error) {
	if err := from.Undock(v); err != nil {
		return nil, err
	}
	if err := v.SetStatus(models.StatusInUse); err != nil {
		return nil, err
	}
	trip, err := models.NewTrip(reg.IDs(), "", r, v, from, to, start, start.Add(d), km)
	if err != nil {
		return nil, err
	}
	if err := reg.RecordTrip(trip); err != nil {
		return nil, err
	}
	if err := to.Dock(v); err != nil {
		return nil, err
	}
	return trip, v.SetStatus(models.StatusAvailable)
}
