// Package miles finds lane and lap combinations on a running track
// that come out to a whole number of miles.
//
// A track is described by the lap length of lane 1 in meters, the lane
// width, and the lane count. Each lane out from the first adds a full
// circle of its extra radius, so one lap in lane k covers
// lap + width*2*pi*(k-1) meters. The search walks every lane and lap
// count up to MaxLaps and keeps the combinations whose total distance
// is within a tolerance, given in feet, of an integer number of miles.
package miles

import (
	"errors"
	"math"
)

const (
	// MetersPerMile is the international mile.
	MetersPerMile = 1609.344

	// FeetPerMile converts the tolerance argument.
	FeetPerMile = 5280

	// MaxLaps bounds the search per lane.
	MaxLaps = 1000
)

var (
	// ErrTrack is returned for tracks with a non-positive lap length,
	// lane width, or lane count.
	ErrTrack = errors.New("miles: track dimensions must be positive")

	// ErrLane is returned for a lane outside 1..Lanes.
	ErrLane = errors.New("miles: no such lane")

	// ErrTolerance is returned for a negative tolerance.
	ErrTolerance = errors.New("miles: tolerance must not be negative")
)

// Track describes a running track.
type Track struct {
	// LapMeters is the length of one lap in lane 1.
	LapMeters float64

	// LaneWidthMeters is the width of each lane.
	LaneWidthMeters float64

	// Lanes is the number of lanes.
	Lanes int
}

// DefaultTrack is a standard metric indoor track: 200 meter laps,
// 36 inch lanes, 6 lanes.
func DefaultTrack() Track {
	return Track{
		LapMeters:       200,
		LaneWidthMeters: LaneWidthFromInches(36),
		Lanes:           6,
	}
}

// LaneWidthFromInches converts a lane width in inches to meters.
func LaneWidthFromInches(inches float64) float64 {
	return inches / 12 * 0.3048
}

// Combo is one qualifying lane and lap combination.
type Combo struct {
	Lane int
	Laps int

	// Miles is the exact distance covered.
	Miles float64

	// Nearest is the whole number of miles Miles is close to.
	Nearest int

	// OffFeet is how far Miles is from Nearest, in feet.
	OffFeet float64
}

func (t Track) validate() error {
	if t.LapMeters <= 0 || t.LaneWidthMeters <= 0 || t.Lanes < 1 {
		return ErrTrack
	}
	return nil
}

// LapDistance returns the length in meters of one lap in the given
// lane.
func (t Track) LapDistance(lane int) (float64, error) {
	if err := t.validate(); err != nil {
		return 0, err
	}
	if lane < 1 || lane > t.Lanes {
		return 0, ErrLane
	}
	return t.LapMeters + t.LaneWidthMeters*2*math.Pi*float64(lane-1), nil
}

// Combinations returns every lane and lap count, in lane then lap
// order, whose distance is within toleranceFeet of a whole number of
// miles.
func (t Track) Combinations(toleranceFeet float64) ([]Combo, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	if toleranceFeet < 0 {
		return nil, ErrTolerance
	}
	tolMiles := toleranceFeet / FeetPerMile

	var combos []Combo
	for lane := 1; lane <= t.Lanes; lane++ {
		lapLen, err := t.LapDistance(lane)
		if err != nil {
			return nil, err
		}
		for laps := 1; laps <= MaxLaps; laps++ {
			d := lapLen * float64(laps) / MetersPerMile
			nearest := math.Round(d)
			delta := math.Abs(d - nearest)
			if delta < tolMiles {
				combos = append(combos, Combo{
					Lane:    lane,
					Laps:    laps,
					Miles:   d,
					Nearest: int(nearest),
					OffFeet: delta * FeetPerMile,
				})
			}
		}
	}
	return combos, nil
}
