package web

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/investor-registry/internal/web/handlers"
)

// NewServer builds the review API server over the exported merged dataset.
func NewServer(db *sql.DB, addr string) *http.Server {
	investors := &handlers.InvestorHandler{DB: db}
	stats := &handlers.StatsHandler{DB: db}

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/stats", stats.GetStats).Methods(http.MethodGet)
	api.HandleFunc("/runs", stats.GetRuns).Methods(http.MethodGet)
	api.HandleFunc("/investors", investors.List).Methods(http.MethodGet)
	api.HandleFunc("/investors/{id}", investors.Get).Methods(http.MethodGet)
	api.HandleFunc("/investors/{id}/sources", investors.Sources).Methods(http.MethodGet)

	return &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
