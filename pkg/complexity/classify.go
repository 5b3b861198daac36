package complexity

import (
	"strings"
	"unicode"
)

// canonical maps known notations to their rating. Keys are normalized
// once at init, so they may be written the way the dataset spells them.
var canonical = map[string]Rating{
	"O(1)":        Excellent,
	"O(log n)":    Excellent,
	"Ω(n)":        Good,
	"O(n)":        Good,
	"O(n log n)":  Fair,
	"O(n·log(n))": Fair,
	"O(n²)":       Bad,
	"O(n^2)":      Bad,
	"O(2^n)":      Horrible,
	"O(n!)":       Horrible,
	"O(n·k)":      Good,
	"O(n+k)":      Good,
	"O(k)":        Excellent,
	"O(n+b)":      Good,
	"N/A":         Fair,
}

var table = func() map[string]Rating {
	m := make(map[string]Rating, len(canonical))
	for k, r := range canonical {
		m[normalize(k)] = r
	}
	return m
}()

// quadraticMarkers are checked only after "log".
var quadraticMarkers = []string{"n²", "n^2", "n2"}

// Classify rates a complexity notation. It never fails: notations that are
// neither in the table nor caught by a heuristic rate Fair.
func Classify(notation string) Rating {
	key := normalize(notation)
	if r, ok := table[key]; ok {
		return r
	}
	if strings.Contains(key, "log") {
		return Fair
	}
	for _, m := range quadraticMarkers {
		if strings.Contains(key, m) {
			return Bad
		}
	}
	return Fair
}

// Rate classifies each notation in order.
func Rate(notations ...string) []Rating {
	out := make([]Rating, len(notations))
	for i, n := range notations {
		out[i] = Classify(n)
	}
	return out
}

// Worst returns the worst rating among notations, or Excellent if none are given.
func Worst(notations ...string) Rating {
	worst := Excellent
	for _, n := range notations {
		if r := Classify(n); r.Worse(worst) {
			worst = r
		}
	}
	return worst
}

// normalize lower-cases s and strips all whitespace.
func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToLower(s))
}
