package config

import "testing"

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"prod":       "production",
		"PRODUCTION": "production",
		"staging":    "staging",
		"local":      "local",
		"dev":        "dev",
		"":           "dev",
		"nonsense":   "dev",
	}
	for in, want := range cases {
		if got := normalizeEnv(in); got != want {
			t.Fatalf("normalizeEnv(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim(" a, b ,, c ")
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestNormalizeStoreType(t *testing.T) {
	if got := normalizeStoreType("S3"); got != "s3" {
		t.Fatalf("expected s3, got %q", got)
	}
	if got := normalizeStoreType("anything"); got != "local" {
		t.Fatalf("expected local, got %q", got)
	}
}
