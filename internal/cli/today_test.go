package cli

import (
	"testing"
	"time"

	"github.com/chorewheel/chorewheel/pkg/models"
)

func TestParseEnergyFlag(t *testing.T) {
	tests := []struct {
		input   string
		want    models.EnergyLevel
		wantErr bool
	}{
		{"low", models.EnergyLow, false},
		{"moderate", models.EnergyModerate, false},
		{"good", models.EnergyGood, false},
		{"GOOD", models.EnergyGood, false},
		{" low ", models.EnergyLow, false},
		{"", "", true},
		{"tired", "", true},
	}

	for _, tt := range tests {
		got, err := parseEnergyFlag(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseEnergyFlag(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseEnergyFlag(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseEnergyFlag(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseDateFlag(t *testing.T) {
	day, err := parseDateFlag("2026-08-30")
	if err != nil {
		t.Fatalf("parseDateFlag failed: %v", err)
	}
	want := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if !day.Equal(want) {
		t.Errorf("parseDateFlag = %v, want %v", day, want)
	}

	today, err := parseDateFlag("")
	if err != nil {
		t.Fatalf("parseDateFlag(\"\") failed: %v", err)
	}
	if today.Hour() != 0 || today.Minute() != 0 {
		t.Errorf("default date %v is not normalized to midnight", today)
	}

	if _, err := parseDateFlag("30/08/2026"); err == nil {
		t.Error("expected error for non-ISO date")
	}
	if _, err := parseDateFlag("2026-13-45"); err == nil {
		t.Error("expected error for impossible date")
	}
}

func TestTodayCmd_NilScheduler(t *testing.T) {
	orig := Scheduler
	defer func() { Scheduler = orig }()
	Scheduler = nil

	if err := todayCmd.RunE(todayCmd, []string{}); err == nil {
		t.Fatal("expected error when Scheduler is nil")
	}
}
