package activity

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	ErrInvalidDate     = errors.New("activity date must be set")
	ErrInvalidDuration = errors.New("activity duration must be positive")
	ErrInvalidMeasure  = errors.New("activity measurement must be positive")
)

// Kind is the display name of an activity variant.
type Kind string

const (
	KindRunning  Kind = "Running"
	KindCycling  Kind = "Cycling"
	KindSwimming Kind = "Swimming"
)

func (k Kind) String() string {
	return string(k)
}

// ParseKind matches a display name case-insensitively.
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{KindRunning, KindCycling, KindSwimming} {
		if strings.EqualFold(strings.TrimSpace(s), string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown activity type %q", s)
}

// Record holds the attributes every activity shares. It has no setters.
type Record struct {
	date            time.Time
	durationMinutes int
}

func newRecord(date time.Time, minutes int) (Record, error) {
	if date.IsZero() {
		return Record{}, ErrInvalidDate
	}
	if minutes <= 0 {
		return Record{}, fmt.Errorf("%w: got %d min", ErrInvalidDuration, minutes)
	}

	y, m, d := date.Date()
	return Record{
		date:            time.Date(y, m, d, 0, 0, 0, 0, date.Location()),
		durationMinutes: minutes,
	}, nil
}

func (r Record) Date() time.Time {
	return r.date
}

func (r Record) DurationMinutes() int {
	return r.durationMinutes
}

// Measure is the one type-specific field recorded for an activity.
// The set of implementations is closed: Run, Ride and Swim.
type Measure interface {
	kind() Kind
}

// Run records the distance covered in miles.
type Run struct {
	DistanceMiles float64
}

// Ride records the average speed in miles per hour.
type Ride struct {
	SpeedMph float64
}

// Swim records the number of 50 m pool laps.
type Swim struct {
	Laps int
}

func (Run) kind() Kind  { return KindRunning }
func (Ride) kind() Kind { return KindCycling }
func (Swim) kind() Kind { return KindSwimming }

// Activity is a single recorded exercise session.
type Activity struct {
	Record
	measure Measure
}

func NewRunning(date time.Time, minutes int, distanceMiles float64) (Activity, error) {
	if !positive(distanceMiles) {
		return Activity{}, fmt.Errorf("%w: distance %v miles", ErrInvalidMeasure, distanceMiles)
	}
	return newActivity(date, minutes, Run{DistanceMiles: distanceMiles})
}

func NewCycling(date time.Time, minutes int, speedMph float64) (Activity, error) {
	if !positive(speedMph) {
		return Activity{}, fmt.Errorf("%w: speed %v mph", ErrInvalidMeasure, speedMph)
	}
	return newActivity(date, minutes, Ride{SpeedMph: speedMph})
}

func NewSwimming(date time.Time, minutes int, laps int) (Activity, error) {
	if laps <= 0 {
		return Activity{}, fmt.Errorf("%w: %d laps", ErrInvalidMeasure, laps)
	}
	return newActivity(date, minutes, Swim{Laps: laps})
}

func newActivity(date time.Time, minutes int, m Measure) (Activity, error) {
	rec, err := newRecord(date, minutes)
	if err != nil {
		return Activity{}, err
	}

	derived := Compute(rec, m)
	for _, v := range []float64{derived.DistanceMiles, derived.SpeedMph, derived.PaceMinPerMile} {
		if !positive(v) {
			return Activity{}, fmt.Errorf("%w: derived metrics out of range %+v", ErrInvalidMeasure, derived)
		}
	}

	return Activity{Record: rec, measure: m}, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func (a Activity) Kind() Kind {
	return a.measure.kind()
}

func (a Activity) Metrics() Metrics {
	return Compute(a.Record, a.measure)
}

// Distance is in miles.
func (a Activity) Distance() float64 {
	return a.Metrics().DistanceMiles
}

// Speed is in miles per hour.
func (a Activity) Speed() float64 {
	return a.Metrics().SpeedMph
}

// Pace is in minutes per mile.
func (a Activity) Pace() float64 {
	return a.Metrics().PaceMinPerMile
}

func (a Activity) Summary() string {
	return FormatSummary(a.Record, a.Kind(), a.Metrics())
}
