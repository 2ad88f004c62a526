package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/cubetactoe-backend/internal/entity"
)

const defaultResultsLimit = 20

type resultRepo interface {
	Recent(ctx context.Context, limit int) ([]*entity.GameResult, error)
}

type Server struct {
	logger  *slog.Logger
	results resultRepo
}

func New(logger *slog.Logger, results resultRepo) *Server {
	return &Server{
		logger:  logger,
		results: results,
	}
}

func (that *Server) Start(port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", pingHandler)
	mux.HandleFunc("/results", that.resultsHandler)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func pingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// resultsHandler lists recently finished games, newest first.
func (that *Server) resultsHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "resultsHandler")

	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	results, err := that.results.Recent(r.Context(), defaultResultsLimit)
	if err != nil {
		log.Error("failed to load recent results", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(results); err != nil {
		log.Error("failed to encode results", "error", err)
	}
}
