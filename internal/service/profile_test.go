package service_test

import (
	"strings"
	"testing"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/model"
	"github.com/kongou411-oss/your-coach-plus-sub015/internal/service"
)

func TestSetProfileAndCurrentProfile(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	err := service.SetProfile(db, service.SetProfileInput{
		Style:          "general",
		LeanBodyMassKg: 55,
		MealsPerDay:    3,
		Goal:           "maintain",
		EffectiveDate:  "2026-01-01",
	})
	if err != nil {
		t.Fatalf("set profile: %v", err)
	}

	p, err := service.CurrentProfile(db, "2026-02-01")
	if err != nil {
		t.Fatalf("current profile: %v", err)
	}
	if p == nil {
		t.Fatalf("expected a profile")
	}
	if p.Style != model.StyleGeneral || p.LeanBodyMassKg != 55 || p.MealsPerDay != 3 {
		t.Fatalf("unexpected profile: %+v", p)
	}

	before, err := service.CurrentProfile(db, "2025-12-31")
	if err != nil {
		t.Fatalf("profile before effective date: %v", err)
	}
	if before != nil {
		t.Fatalf("expected no profile before the effective date, got %+v", before)
	}
}

func TestSetProfileRevisionsAreEffectiveDated(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	base := service.SetProfileInput{Style: "general", LeanBodyMassKg: 55, MealsPerDay: 3, Goal: "maintain", EffectiveDate: "2026-01-01"}
	if err := service.SetProfile(db, base); err != nil {
		t.Fatalf("set base profile: %v", err)
	}
	revised := service.SetProfileInput{Style: "bodymaker", LeanBodyMassKg: 62, MealsPerDay: 5, Goal: "bulk", EffectiveDate: "2026-02-01"}
	if err := service.SetProfile(db, revised); err != nil {
		t.Fatalf("set revised profile: %v", err)
	}

	jan, err := service.CurrentProfile(db, "2026-01-15")
	if err != nil {
		t.Fatalf("january profile: %v", err)
	}
	if jan.Style != model.StyleGeneral {
		t.Fatalf("january should use the base revision, got %s", jan.Style)
	}
	feb, err := service.CurrentProfile(db, "2026-02-15")
	if err != nil {
		t.Fatalf("february profile: %v", err)
	}
	if feb.Style != model.StyleBodymaker || feb.MealsPerDay != 5 {
		t.Fatalf("february should use the revised profile, got %+v", feb)
	}
}

func TestSetProfileValidation(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if err := service.SetProfile(db, service.SetProfileInput{Style: "athlete", LeanBodyMassKg: 55, MealsPerDay: 3}); err == nil {
		t.Fatalf("expected invalid style to be rejected")
	}
	if err := service.SetProfile(db, service.SetProfileInput{Style: "general", LeanBodyMassKg: 0, MealsPerDay: 3}); err == nil {
		t.Fatalf("expected zero lean mass to be rejected")
	}
	err := service.SetProfile(db, service.SetProfileInput{Style: "general", LeanBodyMassKg: 55, MealsPerDay: 3, Goal: "shred"})
	if err == nil || !strings.Contains(err.Error(), "goal") {
		t.Fatalf("expected invalid goal error, got %v", err)
	}
}

func TestSetTargetAndCurrentTarget(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if err := service.SetTarget(db, service.SetTargetInput{Calories: 2200, ProteinG: 150, FatG: 70, CarbsG: 240, EffectiveDate: "2026-01-01"}); err != nil {
		t.Fatalf("set target: %v", err)
	}
	if err := service.SetTarget(db, service.SetTargetInput{Calories: 2000, ProteinG: 160, FatG: 60, CarbsG: 200, EffectiveDate: "2026-03-01"}); err != nil {
		t.Fatalf("set second target: %v", err)
	}

	target, err := service.CurrentTarget(db, "2026-02-10")
	if err != nil {
		t.Fatalf("current target: %v", err)
	}
	if target == nil || target.Calories != 2200 {
		t.Fatalf("expected the january target, got %+v", target)
	}

	history, err := service.TargetHistory(db)
	if err != nil {
		t.Fatalf("target history: %v", err)
	}
	if len(history) != 2 || history[0].EffectiveDate != "2026-03-01" {
		t.Fatalf("expected newest-first history, got %+v", history)
	}
}

func TestSetTargetRejectsNegativeMacros(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if err := service.SetTarget(db, service.SetTargetInput{Calories: 2000, ProteinG: -1}); err == nil {
		t.Fatalf("expected negative protein to be rejected")
	}
	if err := service.SetTarget(db, service.SetTargetInput{Calories: 2000, EffectiveDate: "01-02-2026"}); err == nil {
		t.Fatalf("expected malformed effective date to be rejected")
	}
}
