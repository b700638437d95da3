package analyses

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidShape means the model reply does not satisfy the analysis
// contract. The whole request fails; no partial result is returned.
var ErrInvalidShape = errors.New("invalid analysis shape")

// ValidateShape checks a parsed model reply against the analysis contract:
// an integral points value in [0,100] and positive/negative arrays whose
// every element is a string. Bullet strings are cleaned on the way out.
func ValidateShape(obj map[string]any) (AnalysisResult, error) {
	points, err := validatePoints(obj["points"])
	if err != nil {
		return AnalysisResult{}, err
	}
	positive, err := validateStringArray(obj["positive"], "positive")
	if err != nil {
		return AnalysisResult{}, err
	}
	negative, err := validateStringArray(obj["negative"], "negative")
	if err != nil {
		return AnalysisResult{}, err
	}

	return AnalysisResult{
		Points:   points,
		Positive: CleanBullets(positive),
		Negative: CleanBullets(negative),
	}, nil
}

func validatePoints(v any) (int, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: points must be a number", ErrInvalidShape)
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("%w: points must be an integer", ErrInvalidShape)
	}
	points := int(f)
	if points < 0 || points > 100 {
		return 0, fmt.Errorf("%w: points %d out of range [0,100]", ErrInvalidShape, points)
	}
	return points, nil
}

func validateStringArray(v any, field string) ([]string, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an array", ErrInvalidShape, field)
	}
	out := make([]string, 0, len(arr))
	for i, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] is not a string", ErrInvalidShape, field, i)
		}
		out = append(out, s)
	}
	return out, nil
}

// CleanBullets normalizes strength/improvement strings into presentable
// bullet points: trim, drop empties, capitalize the first rune, and ensure
// terminal punctuation. Order is preserved and nothing is deduplicated.
func CleanBullets(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		s := strings.TrimSpace(item)
		if s == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(s)
		s = string(unicode.ToUpper(r)) + s[size:]
		if !strings.HasSuffix(s, ".") && !strings.HasSuffix(s, "!") && !strings.HasSuffix(s, "?") {
			s += "."
		}
		out = append(out, s)
	}
	return out
}
