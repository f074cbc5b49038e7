// Package api exposes a read-only HTTP view of scores, nutrition, and
// streak data for companion apps. All writes stay on the CLI.
package api

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/score"
	"github.com/kongou411-oss/your-coach-plus-sub015/internal/service"
)

type Server struct {
	db     *sql.DB
	calc   *score.Calculator
	router *mux.Router
}

func NewServer(db *sql.DB, calc *score.Calculator) *Server {
	s := &Server{db: db, calc: calc, router: mux.NewRouter()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/api/score/{date}", s.handleScore).Methods(http.MethodGet)
	s.router.HandleFunc("/api/nutrition/{date}", s.handleNutrition).Methods(http.MethodGet)
	s.router.HandleFunc("/api/snapshot/{date}", s.handleSnapshot).Methods(http.MethodGet)
	s.router.HandleFunc("/api/streak", s.handleStreak).Methods(http.MethodGet)
	s.router.HandleFunc("/api/retention", s.handleRetention).Methods(http.MethodGet)
}

// Handler wraps the router with CORS and request logging.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"Content-Type"},
	})
	return loggingMiddleware(c.Handler(s.router))
}

// ListenAddr resolves the bind address from the environment; a .env file
// alongside the binary is honored when present.
func ListenAddr() string {
	_ = godotenv.Load()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return ":" + port
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]
	rec, err := service.GetDailyScore(s.db, date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if rec == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "day not scored"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleNutrition(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]
	detail, err := service.DetailedNutritionFor(s.db, s.calc, date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]
	snap, err := service.LoadDaySnapshot(s.db, date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	status, err := service.CurrentStreakStatus(s.db, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleRetention(w http.ResponseWriter, r *http.Request) {
	stats, registeredAt, err := service.RetentionReport(s.db)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"registered_at": registeredAt,
		"retention":     stats,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

type responseWrapper struct {
	http.ResponseWriter
	status int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWrapper{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, wrapped.status, time.Since(start))
	})
}
