package export

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/investor-registry/internal/debug"
	"github.com/investor-registry/internal/merge"
	"github.com/investor-registry/internal/table"
)

// Exporter loads merged pipeline artifacts into Postgres for the review
// web UI. Each export replaces the previous snapshot; the CSV artifacts
// remain the system of record.
type Exporter struct {
	db *sql.DB
}

// NewExporter creates an exporter.
func NewExporter(db *sql.DB) *Exporter {
	return &Exporter{db: db}
}

// ExportMerged writes the merged investor dataset and the row→investor map.
func (e *Exporter) ExportMerged(localDebug bool, runID uuid.UUID, merged *table.Table, rowMap *table.Table) error {
	defer debug.Span(localDebug, "export merged dataset")()

	tx, err := e.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := createExportTables(tx); err != nil {
		return err
	}

	if _, err := tx.Exec(`TRUNCATE TABLE merged_investor`); err != nil {
		return fmt.Errorf("failed to truncate merged_investor: %w", err)
	}
	if _, err := tx.Exec(`TRUNCATE TABLE row_investor_map`); err != nil {
		return fmt.Errorf("failed to truncate row_investor_map: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO merged_investor (
			run_id, account_id, first_name, last_name, email, country_code,
			phone_number, date_of_birth, address_line, suburb, postcode, city,
			country, pir_pct, wht_pct, tax_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare investor insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range merged.Rows {
		_, err := stmt.Exec(
			runID,
			row.Get(merge.ColInvestorID),
			row.Get("First Name"),
			row.Get("Last Name"),
			row.Get("Email"),
			row.Get("Country Code"),
			row.Get("Phone Number"),
			row.Get("Date of Birth"),
			row.Get("Address Line"),
			row.Get("Suburb"),
			row.Get("Postcode"),
			row.Get("City"),
			row.Get("Country"),
			row.Get("PIR %"),
			row.Get("WHT %"),
			row.Get("Tax Identification Number"),
		)
		if err != nil {
			return fmt.Errorf("failed to insert merged investor %s: %w", row.Get(merge.ColInvestorID), err)
		}
	}

	mapStmt, err := tx.Prepare(`
		INSERT INTO row_investor_map (run_id, row_id, account_id)
		VALUES ($1, $2, $3)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare row map insert: %w", err)
	}
	defer mapStmt.Close()

	for _, row := range rowMap.Rows {
		if _, err := mapStmt.Exec(runID, row.Get("Row ID"), row.Get("Account ID")); err != nil {
			return fmt.Errorf("failed to insert row map entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit export: %w", err)
	}

	debug.Logf(localDebug, "exported %d investors, %d row map entries", merged.Len(), rowMap.Len())
	return nil
}

func createExportTables(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS merged_investor (
			account_id    text PRIMARY KEY,
			run_id        uuid NOT NULL,
			first_name    text,
			last_name     text,
			email         text,
			country_code  text,
			phone_number  text,
			date_of_birth text,
			address_line  text,
			suburb        text,
			postcode      text,
			city          text,
			country       text,
			pir_pct       text,
			wht_pct       text,
			tax_id        text
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create merged_investor table: %w", err)
	}

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS row_investor_map (
			row_id     int PRIMARY KEY,
			run_id     uuid NOT NULL,
			account_id text NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create row_investor_map table: %w", err)
	}
	return nil
}
