package formcheck

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	emailRegex   = regexp.MustCompile(`^[\w.=-]+@[\w.-]+\.[a-zA-Z]{2,4}$`)
	decimalRegex = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
)

// IsEmail reports whether s looks like local@domain.tld with a 2-4 letter TLD.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// InRange reports whether s is a finite decimal number strictly between min
// and max. Infinities, hex floats and digit separators are not numbers here.
// A NaN bound is not enforced.
func InRange(s string, min, max float64) bool {
	s = strings.TrimSpace(s)
	if !decimalRegex.MatchString(s) {
		return false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return false
	}
	if !math.IsNaN(min) && v <= min {
		return false
	}
	if !math.IsNaN(max) && v >= max {
		return false
	}
	return true
}

// parseBounds splits "min_max" into its bounds; unparsable bounds become NaN.
func parseBounds(param string) (float64, float64) {
	lo, hi, _ := strings.Cut(param, "_")
	return parseBound(lo), parseBound(hi)
}

func parseBound(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// ValidDate reports whether s matches pattern and the captured groups form
// an existing calendar date. dayGroup <= 0, an out-of-range group or an
// empty capture means day 1.
func ValidDate(s, pattern string, dayGroup, monthGroup, yearGroup int) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	m := re.FindStringSubmatch(s)
	if m == nil {
		return false
	}

	day := 1
	if dayGroup > 0 && dayGroup < len(m) && m[dayGroup] != "" {
		d, err := strconv.Atoi(m[dayGroup])
		if err != nil {
			return false
		}
		day = d
	}

	month, ok := groupInt(m, monthGroup)
	if !ok {
		return false
	}
	year, ok := groupInt(m, yearGroup)
	if !ok {
		return false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

func groupInt(m []string, group int) (int, bool) {
	if group <= 0 || group >= len(m) {
		return 0, false
	}
	v, err := strconv.Atoi(m[group])
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseDateParam splits "regex#dayGroup#monthGroup#yearGroup".
func parseDateParam(param string) (pattern string, day, month, year int) {
	parts := strings.Split(param, "#")
	pattern = parts[0]
	group := func(i int) int {
		if i >= len(parts) {
			return 0
		}
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return 0
		}
		return n
	}
	return pattern, group(1), group(2), group(3)
}

// MatchTime reports whether s matches pattern. Only the text before the
// first "#" is used as the pattern.
func MatchTime(s, pattern string) bool {
	pattern, _, _ = strings.Cut(pattern, "#")
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(s)
}
