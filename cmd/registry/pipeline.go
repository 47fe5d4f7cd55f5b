package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/investor-registry/internal/audit"
	"github.com/investor-registry/internal/config"
	"github.com/investor-registry/internal/db"
	"github.com/investor-registry/internal/export"
	"github.com/investor-registry/internal/ingest"
	"github.com/investor-registry/internal/match"
	"github.com/investor-registry/internal/merge"
	"github.com/investor-registry/internal/registry"
	"github.com/investor-registry/internal/schema"
	"github.com/investor-registry/internal/standardize"
	"github.com/investor-registry/internal/table"
	"github.com/investor-registry/internal/validation"
)

func runIngest(cfg *config.Config) error {
	raw, err := ingest.ReadRaw(cfg.Paths.ExcelInput, cfg.HeaderRow)
	if err != nil {
		return err
	}
	if err := table.WriteCSV(raw, cfg.Paths.RawCSV); err != nil {
		return err
	}
	fmt.Printf("Ingested %d rows x %d columns\n", raw.Len(), len(raw.Columns))
	fmt.Printf("Wrote %s\n", cfg.Paths.RawCSV)
	return nil
}

func runStandardize(cfg *config.Config) error {
	raw, err := table.ReadCSV(cfg.Paths.RawCSV)
	if err != nil {
		return err
	}

	std, err := standardize.Standardize(raw, cfg)
	if err != nil {
		return err
	}
	if err := table.WriteCSV(std, cfg.Paths.StandardizedCSV); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d rows)\n", cfg.Paths.StandardizedCSV, std.Len())
	return nil
}

func runValidate(cfg *config.Config) error {
	std, err := table.ReadCSV(cfg.Paths.StandardizedCSV)
	if err != nil {
		return err
	}

	issues := validation.NewRowValidator().ValidateTable(std)
	if err := table.WriteCSV(validation.Report(issues), cfg.Paths.QualityCSV); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d issues across %d rows)\n", cfg.Paths.QualityCSV, len(issues), std.Len())
	return nil
}

func runMerge(cfg *config.Config, sch *config.Schema, recordAudit bool) error {
	std, err := table.ReadCSV(cfg.Paths.StandardizedCSV)
	if err != nil {
		return err
	}
	std.EnsureColumns(standardize.MergeColumns)

	policy := match.Policy{MinAgreements: cfg.Match.MinAgreements}
	engine := merge.NewEngine(policy, standardize.MergeColumns)
	engine.Debug = debugFlag

	started := time.Now()
	result, err := engine.Run(std)
	if err != nil {
		return err
	}

	merged := result.Table(standardize.MergeColumns)
	schema.Enforce(merged, sch.RequiredColumns("investors"), schema.PlaceholderInvestor)

	if err := table.WriteCSV(merged, cfg.Paths.MergedCSV); err != nil {
		return err
	}
	if err := table.WriteCSV(result.RowMapTable(), cfg.Paths.RowMapCSV); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d investors)\n", cfg.Paths.MergedCSV, merged.Len())
	fmt.Printf("Wrote %s (%d rows)\n", cfg.Paths.RowMapCSV, std.Len())

	if recordAudit {
		if err := recordMergeRun(started, std.Len(), result); err != nil {
			return err
		}
	}
	return nil
}

func recordMergeRun(started time.Time, rowsIn int, result *merge.Result) error {
	conn, err := db.NewConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	singletons := 0
	for _, c := range result.Clusters {
		if len(c.Members) == 1 {
			singletons++
		}
	}

	tracker := audit.NewTracker(conn.DB)
	return tracker.RecordRun(debugFlag, audit.RunSummary{
		RunID:      uuid.New(),
		StartedAt:  started,
		RowsIn:     rowsIn,
		Clusters:   len(result.Clusters),
		Singletons: singletons,
	}, result)
}

func runBuild(cfg *config.Config, sch *config.Schema) error {
	merged, err := table.ReadCSV(cfg.Paths.MergedCSV)
	if err != nil {
		return err
	}

	rowMap, err := loadRowMap(cfg.Paths.RowMapCSV)
	if err != nil {
		return err
	}

	var transactions *table.Table
	if cfg.Paths.TransactionsCSV != "" {
		if _, err := os.Stat(cfg.Paths.TransactionsCSV); err == nil {
			transactions, err = table.ReadCSV(cfg.Paths.TransactionsCSV)
			if err != nil {
				return err
			}
		}
	}

	reg, err := registry.Build(merged, transactions, registry.NewResolver(rowMap))
	if err != nil {
		return err
	}
	schema.Enforce(reg, sch.RequiredColumns("registry"), schema.PlaceholderRegistry)

	if err := table.WriteCSV(reg, cfg.Paths.RegistryCSV); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d rows)\n", cfg.Paths.RegistryCSV, reg.Len())
	return nil
}

func loadRowMap(path string) (map[int]int, error) {
	t, err := table.ReadCSV(path)
	if err != nil {
		return nil, err
	}

	rowMap := make(map[int]int, t.Len())
	for _, row := range t.Rows {
		rowID, err := strconv.Atoi(row.Get("Row ID"))
		if err != nil {
			return nil, fmt.Errorf("invalid row id %q in %s: %w", row.Get("Row ID"), path, err)
		}
		accountID, err := strconv.Atoi(row.Get("Account ID"))
		if err != nil {
			return nil, fmt.Errorf("invalid account id %q in %s: %w", row.Get("Account ID"), path, err)
		}
		rowMap[rowID] = accountID
	}
	return rowMap, nil
}

func runExportDB(cfg *config.Config) error {
	merged, err := table.ReadCSV(cfg.Paths.MergedCSV)
	if err != nil {
		return err
	}
	rowMap, err := table.ReadCSV(cfg.Paths.RowMapCSV)
	if err != nil {
		return err
	}

	conn, err := db.NewConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	exporter := export.NewExporter(conn.DB)
	return exporter.ExportMerged(debugFlag, uuid.New(), merged, rowMap)
}
