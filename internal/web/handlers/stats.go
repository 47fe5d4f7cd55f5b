package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/investor-registry/internal/audit"
)

// StatsHandler serves merge-run statistics for the review dashboard.
type StatsHandler struct {
	DB *sql.DB
}

// StatsResponse summarizes the exported merged dataset.
type StatsResponse struct {
	TotalInvestors   int     `json:"total_investors"`
	TotalSourceRows  int     `json:"total_source_rows"`
	MergedClusters   int     `json:"merged_clusters"`
	SingletonRecords int     `json:"singleton_records"`
	DedupRate        float64 `json:"dedup_rate"`
}

// RunResponse is one recorded merge run.
type RunResponse struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	RowsIn     int       `json:"rows_in"`
	Clusters   int       `json:"clusters"`
	Singletons int       `json:"singletons"`
	Notes      string    `json:"notes"`
}

// GetStats returns overall deduplication statistics.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	var stats StatsResponse

	err := h.DB.QueryRow(`
		SELECT
			COUNT(DISTINCT account_id) AS investors,
			COUNT(*) AS source_rows
		FROM row_investor_map
	`).Scan(&stats.TotalInvestors, &stats.TotalSourceRows)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	err = h.DB.QueryRow(`
		SELECT
			COUNT(CASE WHEN member_count > 1 THEN 1 END),
			COUNT(CASE WHEN member_count = 1 THEN 1 END)
		FROM merge_cluster mc
		JOIN (
			SELECT run_id FROM merge_run ORDER BY started_at DESC LIMIT 1
		) latest ON latest.run_id = mc.run_id
	`).Scan(&stats.MergedClusters, &stats.SingletonRecords)
	if err != nil && err != sql.ErrNoRows {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	if stats.TotalSourceRows > 0 {
		removed := stats.TotalSourceRows - stats.TotalInvestors
		stats.DedupRate = float64(removed) / float64(stats.TotalSourceRows) * 100
	}

	writeJSON(w, stats)
}

// GetRuns returns recorded merge runs, newest first.
func (h *StatsHandler) GetRuns(w http.ResponseWriter, r *http.Request) {
	history, err := audit.NewTracker(h.DB).RunHistory(50)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, runResponses(history))
}

// runResponses converts the audit trail's run summaries to the API shape.
func runResponses(history []audit.RunSummary) []RunResponse {
	runs := make([]RunResponse, 0, len(history))
	for _, s := range history {
		runs = append(runs, RunResponse{
			RunID:      s.RunID.String(),
			StartedAt:  s.StartedAt,
			RowsIn:     s.RowsIn,
			Clusters:   s.Clusters,
			Singletons: s.Singletons,
			Notes:      s.ConfigNotes,
		})
	}
	return runs
}
