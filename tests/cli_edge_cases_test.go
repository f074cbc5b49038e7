package tests

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func buildCoachBinary(t *testing.T) string {
	t.Helper()
	repoRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("resolve repo root: %v", err)
	}
	binPath := filepath.Join(t.TempDir(), "yourcoach")
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = repoRoot
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("build yourcoach binary: %v\n%s", err, string(out))
	}
	return binPath
}

func runCoach(t *testing.T, binPath, dbPath string, args ...string) (string, string, int) {
	t.Helper()
	allArgs := append([]string{"--db", dbPath}, args...)
	cmd := exec.Command(binPath, allArgs...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return stdout.String(), stderr.String(), 0
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("run yourcoach command: %v", err)
	}
	return stdout.String(), stderr.String(), exitErr.ExitCode()
}

func initDB(t *testing.T, binPath, dbPath string) {
	t.Helper()
	_, stderr, exit := runCoach(t, binPath, dbPath, "init")
	if exit != 0 {
		t.Fatalf("init db failed: exit=%d stderr=%s", exit, stderr)
	}
}

func TestCLIRejectsNegativeItemCalories(t *testing.T) {
	binPath := buildCoachBinary(t)
	dbPath := filepath.Join(t.TempDir(), "yourcoach.db")
	initDB(t, binPath, dbPath)

	_, stderr, exit := runCoach(t, binPath, dbPath,
		"meal", "add",
		"--name", "lunch",
		"--item", `{"name":"mystery","calories":-10}`,
	)

	if exit == 0 {
		t.Fatalf("expected non-zero exit for negative item calories")
	}
	if !strings.Contains(stderr, "must be >= 0") {
		t.Fatalf("expected validation error in stderr, got: %s", stderr)
	}
}

func TestCLIRejectsUnknownExerciseCategory(t *testing.T) {
	binPath := buildCoachBinary(t)
	dbPath := filepath.Join(t.TempDir(), "yourcoach.db")
	initDB(t, binPath, dbPath)

	_, stderr, exit := runCoach(t, binPath, dbPath,
		"workout", "add",
		"--duration", "30",
		"--exercise", "juggling:3",
	)

	if exit == 0 {
		t.Fatalf("expected non-zero exit for unknown exercise category")
	}
	if !strings.Contains(stderr, "invalid exercise category") {
		t.Fatalf("expected category error in stderr, got: %s", stderr)
	}
}

func TestCLIRejectsTimeWithoutDate(t *testing.T) {
	binPath := buildCoachBinary(t)
	dbPath := filepath.Join(t.TempDir(), "yourcoach.db")
	initDB(t, binPath, dbPath)

	_, stderr, exit := runCoach(t, binPath, dbPath,
		"meal", "add",
		"--name", "lunch",
		"--item", `{"name":"rice","calories":250}`,
		"--time", "12:30",
	)

	if exit == 0 {
		t.Fatalf("expected non-zero exit when --time is passed without --date")
	}
	if !strings.Contains(stderr, "--date is required when --time is set") {
		t.Fatalf("expected date/time validation error in stderr, got: %s", stderr)
	}
}

func TestCLIRejectsMalformedRestDate(t *testing.T) {
	binPath := buildCoachBinary(t)
	dbPath := filepath.Join(t.TempDir(), "yourcoach.db")
	initDB(t, binPath, dbPath)

	_, stderr, exit := runCoach(t, binPath, dbPath, "rest", "--date", "03/10/2026")

	if exit == 0 {
		t.Fatalf("expected non-zero exit for malformed date")
	}
	if !strings.Contains(stderr, "invalid date") {
		t.Fatalf("expected date format error in stderr, got: %s", stderr)
	}
}

func TestCLIRejectsOutOfRangeConditionRating(t *testing.T) {
	binPath := buildCoachBinary(t)
	dbPath := filepath.Join(t.TempDir(), "yourcoach.db")
	initDB(t, binPath, dbPath)

	_, stderr, exit := runCoach(t, binPath, dbPath,
		"condition", "set",
		"--sleep-hours", "6",
		"--sleep-quality", "4",
		"--digestion", "4",
		"--focus", "4",
		"--stress", "4",
	)

	if exit == 0 {
		t.Fatalf("expected non-zero exit for rating outside 1-5")
	}
	if !strings.Contains(stderr, "must be between 1 and 5") {
		t.Fatalf("expected rating error in stderr, got: %s", stderr)
	}
}

func TestCLIScoreRequiresProfile(t *testing.T) {
	binPath := buildCoachBinary(t)
	dbPath := filepath.Join(t.TempDir(), "yourcoach.db")
	initDB(t, binPath, dbPath)

	_, stderr, exit := runCoach(t, binPath, dbPath, "score", "--date", "2026-03-10")

	if exit == 0 {
		t.Fatalf("expected non-zero exit when no profile is set")
	}
	if !strings.Contains(stderr, "no profile set") {
		t.Fatalf("expected profile error in stderr, got: %s", stderr)
	}
}

func TestCLIStreakFreezeWithoutGap(t *testing.T) {
	binPath := buildCoachBinary(t)
	dbPath := filepath.Join(t.TempDir(), "yourcoach.db")
	initDB(t, binPath, dbPath)

	_, stderr, exit := runCoach(t, binPath, dbPath, "streak", "freeze")

	if exit == 0 {
		t.Fatalf("expected non-zero exit when no streak can be rescued")
	}
	if stderr == "" {
		t.Fatalf("expected an explanation in stderr")
	}
}
