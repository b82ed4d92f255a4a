//go:build !integration

package valueobjects

import "testing"

func TestParseFeePercent(t *testing.T) {
	cases := []struct {
		raw     string
		bps     int64
		display string
	}{
		{"", 0, "0%"},
		{"0", 0, "0%"},
		{"1", 100, "1%"},
		{"0.5", 50, "0.5%"},
		{"2.25", 225, "2.25%"},
		{"0.05", 5, "0.05%"},
		{"100", 10_000, "100%"},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			rate, appErr := ParseFeePercent(tc.raw)
			if appErr != nil {
				t.Fatalf("expected %q to parse, got %v", tc.raw, appErr)
			}
			if rate.BasisPoints() != tc.bps {
				t.Fatalf("expected %d bps, got %d", tc.bps, rate.BasisPoints())
			}
			if rate.String() != tc.display {
				t.Fatalf("expected %q, got %q", tc.display, rate.String())
			}
		})
	}
}

func TestParseFeePercentRejects(t *testing.T) {
	for _, raw := range []string{"-1", "0.125", "abc", ".5", "100.01", "1e2"} {
		t.Run(raw, func(t *testing.T) {
			if _, appErr := ParseFeePercent(raw); appErr == nil {
				t.Fatalf("expected %q to be rejected", raw)
			}
		})
	}
}
