// Package complexity classifies Big-O notations into qualitative ratings
// and produces the reference growth chart.
package complexity

import "fmt"

// Rating is an ordinal judgement of a complexity notation, best first.
type Rating int

const (
	Excellent Rating = iota
	Good
	Fair
	Bad
	Horrible
)

var ratingNames = [...]string{"excellent", "good", "fair", "bad", "horrible"}

var ratingLabels = [...]string{"Excellent", "Good", "Fair", "Bad", "Horrible"}

// Ratings returns all ratings from best to worst.
func Ratings() []Rating {
	return []Rating{Excellent, Good, Fair, Bad, Horrible}
}

// String returns the lower-case name used for badge styles.
func (r Rating) String() string {
	if r < Excellent || r > Horrible {
		return fmt.Sprintf("rating(%d)", int(r))
	}
	return ratingNames[r]
}

// Label returns the capitalised display name.
func (r Rating) Label() string {
	if r < Excellent || r > Horrible {
		return r.String()
	}
	return ratingLabels[r]
}

// Worse reports whether r ranks below other.
func (r Rating) Worse(other Rating) bool {
	return r > other
}

// ParseRating returns the Rating named s (case-sensitive, lower-case).
func ParseRating(s string) (Rating, error) {
	for i, name := range ratingNames {
		if s == name {
			return Rating(i), nil
		}
	}
	return 0, fmt.Errorf("unknown rating %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (r Rating) MarshalText() ([]byte, error) {
	if r < Excellent || r > Horrible {
		return nil, fmt.Errorf("invalid rating %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rating) UnmarshalText(text []byte) error {
	parsed, err := ParseRating(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// LegendEntry pairs a rating with its display label.
type LegendEntry struct {
	Rating Rating `json:"rating"`
	Label  string `json:"label"`
}

// Legend returns the rating legend from best to worst.
func Legend() []LegendEntry {
	out := make([]LegendEntry, 0, len(ratingNames))
	for _, r := range Ratings() {
		out = append(out, LegendEntry{Rating: r, Label: r.Label()})
	}
	return out
}
