package main

import (
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukydev/citybike/internal/config"
	"github.com/ukydev/citybike/internal/db"
	"github.com/ukydev/citybike/internal/fleet"
)

func newImportCmd(root *rootOptions) *cobra.Command {
	var mongoURI, database string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load bikes, riders and stations from MongoDB into a registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, err := root.setup()
			if err != nil {
				return err
			}
			if mongoURI != "" {
				cfg.MongoURI = mongoURI
			}
			if database != "" {
				cfg.MongoDB = database
			}
			return runImport(cmd.Context(), cmd.OutOrStdout(), cfg, l)
		},
	}
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB URI (overrides MONGO_URI)")
	cmd.Flags().StringVar(&database, "db", "", "database name (overrides MONGO_DB)")
	return cmd
}

// sources groups the collections a bulk import reads from.
type sources struct {
	vehicles db.RecordCollection
	riders   db.RecordCollection
	stations db.RecordCollection
}

func runImport(ctx context.Context, out io.Writer, cfg *config.Config, l *log.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	client, err := db.ConnectMongo(ctx, cfg.MongoURI, cfg.Timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer client.Disconnect(context.Background())
	l.WithField("database", cfg.MongoDB).Info("Connected to MongoDB successfully")

	database := client.Database(cfg.MongoDB)
	src := sources{
		vehicles: &db.MongoCollection{Collection: database.Collection(cfg.VehiclesCollection)},
		riders:   &db.MongoCollection{Collection: database.Collection(cfg.RidersCollection)},
		stations: &db.MongoCollection{Collection: database.Collection(cfg.StationsCollection)},
	}

	reg := fleet.NewRegistry(fleet.WithLogger(l))
	report, err := importInto(ctx, reg, src)
	if err != nil {
		return err
	}
	printReport(out, reg, report)
	return nil
}

// importInto reads every source and loads it into reg. Read errors abort;
// bad records are only reported.
func importInto(ctx context.Context, reg *fleet.Registry, src sources) (fleet.ImportReport, error) {
	var report fleet.ImportReport

	vehicles, err := db.LoadRecords(ctx, src.vehicles, nil)
	if err != nil {
		return report, fmt.Errorf("vehicles: %w", err)
	}
	riders, err := db.LoadRecords(ctx, src.riders, nil)
	if err != nil {
		return report, fmt.Errorf("riders: %w", err)
	}
	stations, err := db.LoadRecords(ctx, src.stations, nil)
	if err != nil {
		return report, fmt.Errorf("stations: %w", err)
	}

	vr := reg.LoadVehicles(vehicles)
	report = reg.LoadFromExternalRecords(riders, stations)
	report.Vehicles = vr.Vehicles
	report.Failures = append(vr.Failures, report.Failures...)
	return report, nil
}

func printReport(out io.Writer, reg *fleet.Registry, report fleet.ImportReport) {
	fmt.Fprintf(out, "Loaded %d bikes\n", report.Vehicles)
	fmt.Fprintf(out, "Loaded %d users\n", report.Riders)
	fmt.Fprintf(out, "Loaded %d stations\n", report.Stations)
	if report.HasFailures() {
		fmt.Fprintf(out, "Skipped %d records:\n", len(report.Failures))
		for _, f := range report.Failures {
			fmt.Fprintf(out, "  %v\n", f)
		}
	}
	fmt.Fprintln(out, reg)
}
