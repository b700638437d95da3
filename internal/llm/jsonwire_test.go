package llm

import (
	"errors"
	"testing"
)

func TestDecodeObjectPlain(t *testing.T) {
	obj, err := DecodeObject(`{"points": 87}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if obj["points"] != float64(87) {
		t.Fatalf("unexpected points: %v", obj["points"])
	}
}

func TestDecodeObjectFenced(t *testing.T) {
	cases := []string{
		"```json\n{\"a\": 1}\n```",
		"```\n{\"a\": 1}\n```",
		"  ```json\n{\"a\": 1}\n```  ",
	}
	for _, raw := range cases {
		obj, err := DecodeObject(raw)
		if err != nil {
			t.Fatalf("decode %q: %v", raw, err)
		}
		if obj["a"] != float64(1) {
			t.Fatalf("decode %q: unexpected value %v", raw, obj["a"])
		}
	}
}

func TestDecodeObjectSingleTrailingComma(t *testing.T) {
	obj, err := DecodeObject(`{"tags": ["a", "b",]}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	tags, ok := obj["tags"].([]any)
	if !ok || len(tags) != 2 {
		t.Fatalf("unexpected tags: %v", obj["tags"])
	}
}

func TestDecodeObjectMultipleTrailingCommas(t *testing.T) {
	// Two independent defects resolved across repair passes.
	raw := `{"a": ["x",], "b": {"c": 1,},}`
	obj, err := DecodeObject(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := obj["a"]; !ok {
		t.Fatal("missing key a")
	}
	if _, ok := obj["b"]; !ok {
		t.Fatal("missing key b")
	}
}

func TestDecodeObjectUnrepairable(t *testing.T) {
	_, err := DecodeObject(`here is your resume data: firstName John`)
	if !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestDecodeObjectEmpty(t *testing.T) {
	if _, err := DecodeObject("   "); !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestRepairIdempotentOnValidJSON(t *testing.T) {
	valid := `{"a": [1, 2], "b": {"c": "d"}}`
	if got := repairTrailingCommas(valid); got != valid {
		t.Fatalf("repair changed valid JSON: %q", got)
	}
}

func TestStripCodeFencePassthrough(t *testing.T) {
	in := `{"a": 1}`
	if got := StripCodeFence(in); got != in {
		t.Fatalf("expected passthrough, got %q", got)
	}
}
