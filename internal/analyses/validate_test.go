package analyses

import (
	"encoding/json"
	"errors"
	"testing"
)

func parse(t *testing.T, raw string) map[string]any {
	t.Helper()
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return obj
}

func TestValidateShapeAccepts(t *testing.T) {
	for _, points := range []string{"0", "100", "85"} {
		obj := parse(t, `{"points": `+points+`, "positive": ["clear layout"], "negative": []}`)
		result, err := ValidateShape(obj)
		if err != nil {
			t.Errorf("points %s: unexpected error %v", points, err)
			continue
		}
		if result.Positive[0] != "Clear layout." {
			t.Errorf("points %s: positive[0] = %q", points, result.Positive[0])
		}
	}
}

func TestValidateShapeRejects(t *testing.T) {
	cases := map[string]string{
		"negative points":    `{"points": -1, "positive": [], "negative": []}`,
		"points above range": `{"points": 101, "positive": [], "negative": []}`,
		"string points":      `{"points": "85", "positive": [], "negative": []}`,
		"fractional points":  `{"points": 85.5, "positive": [], "negative": []}`,
		"missing points":     `{"positive": [], "negative": []}`,
		"positive not array": `{"points": 85, "positive": "good", "negative": []}`,
		"non-string element": `{"points": 85, "positive": ["ok", 7], "negative": []}`,
		"missing negative":   `{"points": 85, "positive": []}`,
	}
	for name, raw := range cases {
		if _, err := ValidateShape(parse(t, raw)); !errors.Is(err, ErrInvalidShape) {
			t.Errorf("%s: err = %v, want ErrInvalidShape", name, err)
		}
	}
}

func TestCleanBullets(t *testing.T) {
	in := []string{
		"  good use of metrics",
		"",
		"   ",
		"strong summary!",
		"needs more detail?",
		"already terminated.",
		"über clean formatting",
	}
	want := []string{
		"Good use of metrics.",
		"Strong summary!",
		"Needs more detail?",
		"Already terminated.",
		"Über clean formatting.",
	}
	got := CleanBullets(in)
	if len(got) != len(want) {
		t.Fatalf("got %d bullets, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bullet %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCleanBulletsPreservesOrderAndDuplicates(t *testing.T) {
	got := CleanBullets([]string{"b point", "a point", "b point"})
	want := []string{"B point.", "A point.", "B point."}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bullet %d = %q, want %q", i, got[i], want[i])
		}
	}
}
