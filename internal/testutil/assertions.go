package testutil

import (
	"errors"
	"math"
	"testing"

	apperrors "finalloc/internal/errors"
	"finalloc/internal/models"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertFloat fails the test if got differs from want by more than tolerance.
func AssertFloat(t *testing.T, label string, got, want, tolerance float64) {
	t.Helper()

	if math.Abs(got-want) > tolerance {
		t.Errorf("%s = %v, want %v (±%v)", label, got, want, tolerance)
	}
}

// AssertIDs fails the test unless records carry exactly ids, in order.
func AssertIDs(t *testing.T, records []models.Investment, ids ...string) {
	t.Helper()

	got := make([]string, len(records))
	for i, inv := range records {
		got[i] = inv.ID
	}
	if len(got) != len(ids) {
		t.Fatalf("ids = %v, want %v", got, ids)
	}
	for i := range ids {
		if got[i] != ids[i] {
			t.Fatalf("ids = %v, want %v", got, ids)
		}
	}
}
