package api_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/api"
	"github.com/kongou411-oss/your-coach-plus-sub015/internal/db"
	"github.com/kongou411-oss/your-coach-plus-sub015/internal/score"
	"github.com/kongou411-oss/your-coach-plus-sub015/internal/service"
)

func newTestServer(t *testing.T) (*sql.DB, http.Handler) {
	t.Helper()
	sqldb, err := db.Open(filepath.Join(t.TempDir(), "yourcoach.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	calc := score.NewCalculator(score.DefaultConfig())
	return sqldb, api.NewServer(sqldb, calc).Handler()
}

func TestHealthEndpoint(t *testing.T) {
	_, handler := newTestServer(t)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", rec.Code)
	}
}

func TestScoreEndpoint(t *testing.T) {
	sqldb, handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/score/2026-03-10", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unscored day status = %d, want 404", rec.Code)
	}

	if err := service.SetProfile(sqldb, service.SetProfileInput{
		Style: "general", LeanBodyMassKg: 55, MealsPerDay: 3, EffectiveDate: "2026-01-01",
	}); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	calc := score.NewCalculator(score.DefaultConfig())
	if _, err := service.ComputeDailyScore(sqldb, calc, "2026-03-10"); err != nil {
		t.Fatalf("compute score: %v", err)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/score/2026-03-10", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("scored day status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Day   string `json:"day"`
		Total int    `json:"total_score"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode score body: %v", err)
	}
	if body.Day != "2026-03-10" || body.Total < 0 || body.Total > 100 {
		t.Fatalf("unexpected score body: %+v", body)
	}
}

func TestNutritionEndpointNeedsProfile(t *testing.T) {
	_, handler := newTestServer(t)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nutrition/2026-03-10", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("nutrition without profile = %d, want 400", rec.Code)
	}
}

func TestStreakEndpoint(t *testing.T) {
	sqldb, handler := newTestServer(t)
	today := time.Now().Format("2006-01-02")
	if err := service.MarkActive(sqldb, today); err != nil {
		t.Fatalf("mark active: %v", err)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/streak", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("streak status = %d, want 200", rec.Code)
	}
	var body struct {
		CurrentStreak int  `json:"current_streak"`
		ActiveToday   bool `json:"active_today"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode streak body: %v", err)
	}
	if body.CurrentStreak != 1 || !body.ActiveToday {
		t.Fatalf("unexpected streak body: %+v", body)
	}
}

func TestRetentionEndpointBeforeInit(t *testing.T) {
	_, handler := newTestServer(t)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/retention", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("retention before init = %d, want 404", rec.Code)
	}
}

func TestWritesAreRejected(t *testing.T) {
	_, handler := newTestServer(t)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/score/2026-03-10", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST status = %d, want 405", rec.Code)
	}
}
