package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"property-engine/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the listing dataset",
	Long:  `Checks that the dataset objects exist, that every listing is reachable by slug and id, and that the store directory schema matches.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check that the index, shards and stores file exist in the bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// datasetCmd represents the integrity dataset command
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Check listing records for missing keys and duplicate slugs",
	Long:  `Walks every country shard in index order. Outputs metrics by default or a detailed JSON report with --json flag.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// storesCmd represents the integrity stores command
var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "Check the store directory database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

var jsonFlag bool

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, datasetCmd, storesCmd)

	datasetCmd.Flags().BoolVar(&jsonFlag, "json", false, "Save detailed JSON report")
}

func runIntegrityChecks(ctx context.Context, runStructure, runDataset, runStores bool) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	logg := rt.logger
	defer logg.Sync()

	svc := integrity.NewService(rt.cfg.Dataset, rt.source, rt.client, rt.cfg.Storage.Bucket, rt.db, logg)
	failed := false

	if runStructure {
		logg.Info("Checking dataset structure...", zap.String("bucket", rt.cfg.Storage.Bucket))
		missing, err := svc.CheckStructure(ctx)
		switch {
		case errors.Is(err, integrity.ErrNotApplicable):
			logg.Info("Structure check skipped", zap.Error(err))
		case err != nil:
			return fmt.Errorf("structure check failed: %w", err)
		case len(missing) == 0:
			logg.Info("Structure is intact.")
		default:
			failed = true
			logg.Warn("Missing dataset objects detected", zap.Strings("missing", missing))
		}
	}

	if runDataset {
		startTime := time.Now()
		logg.Info("Checking dataset records...", zap.String("source", rt.source.Describe()))
		report, err := svc.CheckDataset(ctx)
		if err != nil {
			return fmt.Errorf("dataset check failed: %w", err)
		}

		for _, c := range report.Countries {
			fields := []zap.Field{
				zap.String("country", c.Code),
				zap.Int("records", c.Records),
				zap.Int("missing_slug", len(c.MissingSlug)),
				zap.Int("missing_id", len(c.MissingID)),
				zap.Int("invalid_slugs", len(c.InvalidSlugs)),
			}
			switch c.Status {
			case "ok":
				logg.Info("Country shard ok", fields...)
			case "warning":
				logg.Warn("Country shard has issues", fields...)
			default:
				logg.Error("Country shard unreadable", append(fields, zap.String("error", c.Error))...)
			}
		}
		for _, d := range report.Duplicates {
			logg.Warn("Duplicate slug", zap.String("slug", d.Slug), zap.String("winner", d.Winner), zap.Strings("shadowed", d.Shadowed))
		}
		if !report.Matched {
			failed = true
		}

		if jsonFlag {
			filename := fmt.Sprintf("integrity_dataset_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			logg.Info("Detailed JSON report saved", zap.String("file", filename))
		}

		logg.Info("Dataset check completed",
			zap.Int("records", report.Records),
			zap.Int("countries", len(report.Countries)),
			zap.Int("duplicates", len(report.Duplicates)),
			zap.Duration("execution_time", time.Since(startTime)),
		)
	}

	if runStores {
		logg.Info("Checking store directory schema...")
		report, err := svc.CheckStores()
		switch {
		case errors.Is(err, integrity.ErrNotApplicable):
			logg.Info("Stores check skipped", zap.Error(err))
		case err != nil:
			return fmt.Errorf("stores check failed: %w", err)
		case report.Matched:
			logg.Info("Stores schema matches expected definition.")
		default:
			failed = true
			for table, tbl := range report.Tables {
				if tbl.Status == "ok" {
					continue
				}
				if len(tbl.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
				if len(tbl.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if failed {
		return errors.New("integrity checks reported issues")
	}
	return nil
}
