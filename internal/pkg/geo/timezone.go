package geo

import (
	"fmt"

	"github.com/ringsaturn/tzf"
)

// TimezoneLookup resolves coordinates to an IANA zone identifier. An empty
// string means no zone could be resolved; callers treat that as non-fatal.
type TimezoneLookup interface {
	TimezoneFor(latitude, longitude float64) string
}

type tzfLookup struct {
	finder tzf.F
}

// NewTimezoneLookup builds an offline coordinate-to-timezone resolver from
// the embedded tzf dataset.
func NewTimezoneLookup() (TimezoneLookup, error) {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("init timezone finder: %w", err)
	}
	return &tzfLookup{finder: finder}, nil
}

func (l *tzfLookup) TimezoneFor(latitude, longitude float64) string {
	// tzf takes longitude first
	return l.finder.GetTimezoneName(longitude, latitude)
}
