package scoring

import (
	"math"
	"testing"
)

func TestMessage(t *testing.T) {
	testCases := []struct {
		score    int
		expected string
	}{
		{8, Tiers[0].Message},
		{7, Tiers[0].Message}, // 87.5%
		{5, Tiers[1].Message}, // 62.5%
		{4, Tiers[2].Message}, // 50%
		{3, Tiers[3].Message}, // 37.5%
		{0, Tiers[3].Message},
	}

	for _, tc := range testCases {
		if got := Message(tc.score, 8); got != tc.expected {
			t.Errorf("Message(%d, 8) = %q, expected %q", tc.score, got, tc.expected)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(4, 8); math.Abs(got-50) > 1e-9 {
		t.Errorf("Expected 50, got %.2f", got)
	}
	if got := Percent(1, 0); got != 0 {
		t.Errorf("Expected 0 for empty quiz, got %.2f", got)
	}
}

func TestStars(t *testing.T) {
	for score, expected := range []int{0, 1, 2, 3, 3, 3} {
		if got := Stars(score); got != expected {
			t.Errorf("Stars(%d) = %d, expected %d", score, got, expected)
		}
	}
}

func TestProgress(t *testing.T) {
	if got := Progress(0, 8); got != 12.5 {
		t.Errorf("Expected 12.5, got %.2f", got)
	}
	if got := Progress(7, 8); got != 100 {
		t.Errorf("Expected 100, got %.2f", got)
	}
	if got := Round(Progress(2, 8)); got != 38 {
		t.Errorf("Expected 38, got %d", got)
	}
}

func TestFormatClock(t *testing.T) {
	testCases := map[int]string{
		300: "5:00",
		299: "4:59",
		61:  "1:01",
		9:   "0:09",
		0:   "0:00",
		-3:  "0:00",
	}
	for seconds, expected := range testCases {
		if got := FormatClock(seconds); got != expected {
			t.Errorf("FormatClock(%d) = %q, expected %q", seconds, got, expected)
		}
	}
}
