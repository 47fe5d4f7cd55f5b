package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// InvestorHandler serves the merged investor dataset for manual review.
type InvestorHandler struct {
	DB *sql.DB
}

// Investor is one merged investor record as exposed to reviewers.
type Investor struct {
	AccountID   string `json:"account_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	CountryCode string `json:"country_code"`
	PhoneNumber string `json:"phone_number"`
	DateOfBirth string `json:"date_of_birth"`
	AddressLine string `json:"address_line"`
	Suburb      string `json:"suburb"`
	Postcode    string `json:"postcode"`
	City        string `json:"city"`
	Country     string `json:"country"`
	PIRPercent  string `json:"pir_pct"`
	WHTPercent  string `json:"wht_pct"`
	TaxID       string `json:"tax_id"`
}

// SourceRow is one standardized row that contributed to a merged investor.
type SourceRow struct {
	RowID     int    `json:"row_id"`
	AccountID string `json:"account_id"`
}

const investorColumns = `
	account_id, first_name, last_name, email, country_code, phone_number,
	date_of_birth, address_line, suburb, postcode, city, country,
	pir_pct, wht_pct, tax_id
`

// List returns all merged investors ordered by account id.
func (h *InvestorHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.DB.Query(`
		SELECT ` + investorColumns + `
		FROM merged_investor
		ORDER BY account_id::int
	`)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	investors := []Investor{}
	for rows.Next() {
		inv, err := scanInvestor(rows)
		if err != nil {
			http.Error(w, "Database error", http.StatusInternalServerError)
			return
		}
		investors = append(investors, inv)
	}

	writeJSON(w, investors)
}

// Get returns one merged investor by account id.
func (h *InvestorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	row := h.DB.QueryRow(`
		SELECT `+investorColumns+`
		FROM merged_investor
		WHERE account_id = $1
	`, id)

	inv, err := scanInvestor(row)
	if err == sql.ErrNoRows {
		http.Error(w, "Investor not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, inv)
}

// Sources returns the standardized rows that merged into an investor, the
// audit trail reviewers use to justify or dispute a merge.
func (h *InvestorHandler) Sources(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	rows, err := h.DB.Query(`
		SELECT row_id, account_id
		FROM row_investor_map
		WHERE account_id = $1
		ORDER BY row_id
	`, id)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	sources := []SourceRow{}
	for rows.Next() {
		var s SourceRow
		if err := rows.Scan(&s.RowID, &s.AccountID); err != nil {
			http.Error(w, "Database error", http.StatusInternalServerError)
			return
		}
		sources = append(sources, s)
	}

	if len(sources) == 0 {
		http.Error(w, "Investor not found", http.StatusNotFound)
		return
	}

	writeJSON(w, sources)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInvestor(s rowScanner) (Investor, error) {
	var inv Investor
	err := s.Scan(
		&inv.AccountID, &inv.FirstName, &inv.LastName, &inv.Email,
		&inv.CountryCode, &inv.PhoneNumber, &inv.DateOfBirth, &inv.AddressLine,
		&inv.Suburb, &inv.Postcode, &inv.City, &inv.Country,
		&inv.PIRPercent, &inv.WHTPercent, &inv.TaxID,
	)
	return inv, err
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
