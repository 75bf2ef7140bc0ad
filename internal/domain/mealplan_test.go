package domain_test

import (
	"errors"
	"testing"
	"time"

	"mealplans/internal/domain"
)

func TestParseMealSlot(t *testing.T) {
	tests := []struct {
		in   string
		want domain.MealSlot
	}{
		{"breakfast", domain.Breakfast},
		{"Breakfast", domain.Breakfast},
		{"BREAKFAST", domain.Breakfast},
		{"lunch", domain.Lunch},
		{"dInNeR", domain.Dinner},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := domain.ParseMealSlot(tc.in)
			if err != nil {
				t.Fatalf("ParseMealSlot(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseMealSlot(%q) = %v; want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseMealSlot_Invalid(t *testing.T) {
	for _, in := range []string{"brunch", "", "supper", "break fast", " dinner ", "lunch\n"} {
		t.Run(in, func(t *testing.T) {
			_, err := domain.ParseMealSlot(in)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
			if want := "Invalid meal type: " + in; err.Error() != want {
				t.Errorf("got %q; want %q", err.Error(), want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("2026-02-08")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !d.Equal(time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date %v", d)
	}
	if got := domain.FormatDate(d); got != "2026-02-08" {
		t.Errorf("FormatDate = %q", got)
	}

	for _, bad := range []string{"", "2026-2-8", "08/02/2026", "2026-02-30", "2026-02-08T10:00:00Z"} {
		if _, err := domain.ParseDate(bad); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("ParseDate(%q): expected ErrInvalidInput, got %v", bad, err)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	in := time.Date(2026, 2, 8, 23, 30, 0, 0, loc)
	got := domain.NormalizeDate(in)
	if !got.Equal(time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("NormalizeDate = %v", got)
	}
}
