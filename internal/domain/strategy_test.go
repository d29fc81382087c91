package domain

import "testing"

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"distance", StrategyDistance, false},
		{"urgency", StrategyUrgency, false},
		{"balanced", StrategyBalanced, false},
		{"", StrategyBalanced, false},
		{"BALANCED", "", true},
		{"cheapest", "", true},
		{" distance", "", true},
	}

	for _, tc := range cases {
		got, err := ParseStrategy(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseStrategy(%q): expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStrategy(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseStrategy(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
