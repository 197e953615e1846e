package packsize

import (
	"regexp"
	"strconv"
	"strings"
)

// Fast synchronous pack-size parsing. This covers the notations manufacturers
// actually send ("4/10 lb", "6 x 5lb", "40#", "40 lb case"); anything it
// cannot read falls through to the AI-assisted parser upstream.

// MaxCaseWeightLbs bounds what any parser (including the AI one) may return.
const MaxCaseWeightLbs = 200.0

var (
	// count/unit or count x unit: "4/10 lb", "6 x 5lb", "12x2.5 lbs"
	multiPattern = regexp.MustCompile(`(?i)^\s*(\d+(?:\.\d+)?)\s*[/xX]\s*(\d+(?:\.\d+)?)\s*(?:lb|lbs|#|pound|pounds)\b`)
	// plain weight: "40 lb", "40lbs", "40#"
	plainPattern = regexp.MustCompile(`(?i)^\s*(\d+(?:\.\d+)?)\s*(?:lb|lbs|#|pound|pounds)\b`)
)

// ParseCaseWeight reads a case weight in pounds out of a pack-size string.
// The second return is false when the notation is unrecognized or the result
// falls outside (0, MaxCaseWeightLbs].
func ParseCaseWeight(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if m := multiPattern.FindStringSubmatch(s); m != nil {
		count, err1 := strconv.ParseFloat(m[1], 64)
		unit, err2 := strconv.ParseFloat(m[2], 64)
		if err1 == nil && err2 == nil {
			return validate(count * unit)
		}
	}

	if m := plainPattern.FindStringSubmatch(s); m != nil {
		w, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return validate(w)
		}
	}

	return 0, false
}

// Validate bounds-checks a case weight from any source. AI parser output goes
// through this too; it is never trusted raw.
func Validate(w float64) bool {
	_, ok := validate(w)
	return ok
}

func validate(w float64) (float64, bool) {
	if w <= 0 || w > MaxCaseWeightLbs {
		return 0, false
	}
	return w, true
}
