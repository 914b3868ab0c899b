package scoring

import "testing"

func TestPercentage(t *testing.T) {
	tests := []struct {
		score, total int
		want         float64
	}{
		{0, 0, 0},
		{5, 0, 0},
		{0, 20, 0},
		{10, 20, 50},
		{20, 20, 100},
		{19, 20, 95},
	}
	for _, tt := range tests {
		if got := Percentage(tt.score, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %.2f, want %.2f", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestEvaluateBreakpoints(t *testing.T) {
	// Boundaries are inclusive on the lower side: exactly 95% is
	// Very Superior, a hair below is Superior, and so on down.
	tests := []struct {
		score, total int
		wantLabel    string
		wantIQ       int
	}{
		{20, 20, "Very Superior", 145}, // 100%
		{19, 20, "Very Superior", 145}, // 95% exactly
		{94, 100, "Superior", 135},     // just under 95
		{90, 100, "Superior", 135},
		{89, 100, "High Average", 125},
		{80, 100, "High Average", 125},
		{79, 100, "Above Average", 115},
		{70, 100, "Above Average", 115},
		{69, 100, "Average", 100},
		{10, 20, "Average", 100}, // 50% exactly
		{49, 100, "Below Average", 90},
		{40, 100, "Below Average", 90},
		{39, 100, "Low Average", 85},
		{30, 100, "Low Average", 85},
		{29, 100, "Borderline", 75},
		{0, 20, "Borderline", 75},
	}
	for _, tt := range tests {
		r := Evaluate(tt.score, tt.total)
		if r.Band.Label != tt.wantLabel {
			t.Errorf("Evaluate(%d/%d) = %q, want %q", tt.score, tt.total, r.Band.Label, tt.wantLabel)
		}
		if r.Band.IQ != tt.wantIQ {
			t.Errorf("Evaluate(%d/%d) IQ = %d, want %d", tt.score, tt.total, r.Band.IQ, tt.wantIQ)
		}
	}
}

func TestDefaultBandsOrderedDescending(t *testing.T) {
	bands := DefaultBands()
	if len(bands) != 8 {
		t.Fatalf("band count = %d, want 8", len(bands))
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].MinPercent >= bands[i-1].MinPercent {
			t.Errorf("bands[%d].MinPercent = %.0f, not below bands[%d].MinPercent = %.0f",
				i, bands[i].MinPercent, i-1, bands[i-1].MinPercent)
		}
	}
	if bands[len(bands)-1].MinPercent != 0 {
		t.Error("last band must catch everything down to zero")
	}
}

func TestEvaluateZeroTotal(t *testing.T) {
	r := Evaluate(0, 0)
	if r.Percentage != 0 {
		t.Errorf("percentage = %.2f, want 0", r.Percentage)
	}
	if r.Band.Label != "Borderline" {
		t.Errorf("band = %q, want Borderline", r.Band.Label)
	}
}

func TestEvaluateMonotonic(t *testing.T) {
	// A higher score out of the same total never rates lower.
	prevIQ := 0
	for score := 0; score <= 100; score++ {
		r := Evaluate(score, 100)
		if r.Band.IQ < prevIQ {
			t.Fatalf("score %d: IQ %d below previous %d", score, r.Band.IQ, prevIQ)
		}
		prevIQ = r.Band.IQ
	}
}
