package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
)

// Models occasionally wrap JSON in markdown fences or leave a trailing comma.
// A bounded repair resolves the overwhelmingly common case without risking
// silent corruption from an open-ended heuristic.
const maxRepairPasses = 5

var (
	trailingCommaArray  = regexp.MustCompile(`,\s*]`)
	trailingCommaObject = regexp.MustCompile(`,\s*}`)
)

// DecodeObject converts raw model output into a parsed JSON object. It strips
// code fences, attempts a strict parse, and on failure applies the
// trailing-comma repair iteratively (at most maxRepairPasses, stopping at a
// fixpoint) before giving up with ErrInvalidResponse.
func DecodeObject(raw string) (map[string]any, error) {
	cleaned := StripCodeFence(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty completion", ErrInvalidResponse)
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(cleaned), &obj); err == nil {
		return obj, nil
	}

	repaired := cleaned
	for i := 0; i < maxRepairPasses; i++ {
		next := repairTrailingCommas(repaired)
		if next == repaired {
			break
		}
		repaired = next
		if err := json.Unmarshal([]byte(repaired), &obj); err == nil {
			metrics.IncJSONRepairApplied()
			return obj, nil
		}
	}

	// The raw completion stays server-side; clients get the sentinel only.
	telemetry.Error("llm.decode_failed", map[string]any{"raw": truncate(cleaned, 2048)})
	return nil, fmt.Errorf("%w: not valid JSON after repair", ErrInvalidResponse)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// StripCodeFence removes markdown code block wrappers, with or without a
// language tag. Models often add them even when instructed not to.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}

// repairTrailingCommas removes the first trailing comma before ']' and the
// first before '}'. One defect of each kind per pass; callers iterate.
func repairTrailingCommas(s string) string {
	s = replaceFirst(s, trailingCommaArray, "]")
	s = replaceFirst(s, trailingCommaObject, "}")
	return s
}

func replaceFirst(s string, re *regexp.Regexp, with string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + with + s[loc[1]:]
}
