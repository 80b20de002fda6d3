package activity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	lapMeters   = 50
	milesPerKm  = 0.62
	summaryDate = "02 Jan 2006"
)

// Metrics are the values derived from a record and its measure.
type Metrics struct {
	DistanceMiles  float64
	SpeedMph       float64
	PaceMinPerMile float64
}

// Compute derives distance, speed and pace. Only the recorded measure is
// taken as-is; the other two values are computed from it and the duration.
func Compute(r Record, m Measure) Metrics {
	minutes := float64(r.durationMinutes)

	switch m := m.(type) {
	case Run:
		return Metrics{
			DistanceMiles:  m.DistanceMiles,
			SpeedMph:       m.DistanceMiles / minutes * 60,
			PaceMinPerMile: minutes / m.DistanceMiles,
		}
	case Ride:
		return Metrics{
			DistanceMiles:  m.SpeedMph * minutes / 60,
			SpeedMph:       m.SpeedMph,
			PaceMinPerMile: 60 / m.SpeedMph,
		}
	case Swim:
		distance := float64(m.Laps) * lapMeters / 1000.0 * milesPerKm
		return Metrics{
			DistanceMiles:  distance,
			SpeedMph:       distance / minutes * 60,
			PaceMinPerMile: minutes / distance,
		}
	default:
		panic(fmt.Sprintf("activity: unknown measure %T", m))
	}
}

// Rounded returns a copy with every value rounded to one decimal place.
func (m Metrics) Rounded() Metrics {
	return Metrics{
		DistanceMiles:  roundTenth(m.DistanceMiles),
		SpeedMph:       roundTenth(m.SpeedMph),
		PaceMinPerMile: roundTenth(m.PaceMinPerMile),
	}
}

// FormatSummary renders the single summary line shared by every variant.
func FormatSummary(r Record, k Kind, m Metrics) string {
	return fmt.Sprintf("%s %s (%d min) - Distance %s miles, Speed %s mph, Pace: %s min per mile",
		r.date.Format(summaryDate),
		k,
		r.durationMinutes,
		oneDecimal(m.DistanceMiles),
		oneDecimal(m.SpeedMph),
		oneDecimal(m.PaceMinPerMile),
	)
}

// oneDecimal rounds half away from zero on the shortest decimal form of v,
// so 0.15 prints as 0.2 and 11.25 as 11.3.
func oneDecimal(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}

	digits := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	whole, frac, _ := strings.Cut(digits, ".")
	frac += "00"

	tenths := []byte(whole + frac[:1])
	if frac[1] >= '5' {
		tenths = carry(tenths)
	}

	out := string(tenths[:len(tenths)-1]) + "." + string(tenths[len(tenths)-1:])
	if v < 0 && out != "0.0" {
		out = "-" + out
	}
	return out
}

// carry adds one to a string of decimal digits.
func carry(d []byte) []byte {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i] < '9' {
			d[i]++
			return d
		}
		d[i] = '0'
	}
	return append([]byte{'1'}, d...)
}

func roundTenth(v float64) float64 {
	r, err := strconv.ParseFloat(oneDecimal(v), 64)
	if err != nil {
		return v
	}
	return r
}
