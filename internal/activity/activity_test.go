package activity

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2022, time.November, 3, 15, 4, 5, 0, time.UTC)

func TestRunningMetrics(t *testing.T) {
	tests := []struct {
		name     string
		minutes  int
		distance float64
	}{
		{name: "sample run", minutes: 30, distance: 3.0},
		{name: "long run", minutes: 95, distance: 13.1},
		{name: "short run", minutes: 7, distance: 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewRunning(testDate, tt.minutes, tt.distance)
			require.NoError(t, err)

			m := float64(tt.minutes)
			assert.Equal(t, tt.distance, a.Distance())
			assert.Equal(t, tt.distance/m*60, a.Speed())
			assert.Equal(t, m/tt.distance, a.Pace())
			assert.Equal(t, KindRunning, a.Kind())
		})
	}
}

func TestCyclingMetrics(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		speed   float64
	}{
		{name: "sample ride", minutes: 45, speed: 15.0},
		{name: "commute", minutes: 22, speed: 11.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewCycling(testDate, tt.minutes, tt.speed)
			require.NoError(t, err)

			m := float64(tt.minutes)
			assert.Equal(t, tt.speed*m/60, a.Distance())
			assert.Equal(t, tt.speed, a.Speed())
			assert.Equal(t, 60/tt.speed, a.Pace())
			assert.Equal(t, KindCycling, a.Kind())
		})
	}
}

func TestSwimmingMetrics(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		laps    int
	}{
		{name: "sample swim", minutes: 20, laps: 10},
		{name: "single lap", minutes: 1, laps: 1},
		{name: "mile swim", minutes: 40, laps: 52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewSwimming(testDate, tt.minutes, tt.laps)
			require.NoError(t, err)

			m := float64(tt.minutes)
			distance := float64(tt.laps) * 50 / 1000.0 * 0.62
			assert.Equal(t, distance, a.Distance())
			assert.Equal(t, a.Distance()/m*60, a.Speed())
			assert.Equal(t, m/a.Distance(), a.Pace())
			assert.Equal(t, KindSwimming, a.Kind())
		})
	}
}

func TestSpeedAndPaceAreReciprocal(t *testing.T) {
	build := []func() (Activity, error){
		func() (Activity, error) { return NewRunning(testDate, 30, 3.0) },
		func() (Activity, error) { return NewRunning(testDate, 41, 4.37) },
		func() (Activity, error) { return NewCycling(testDate, 45, 15.0) },
		func() (Activity, error) { return NewCycling(testDate, 63, 17.3) },
		func() (Activity, error) { return NewSwimming(testDate, 20, 10) },
		func() (Activity, error) { return NewSwimming(testDate, 33, 27) },
	}

	for _, b := range build {
		a, err := b()
		require.NoError(t, err)
		assert.InDelta(t, 60.0, a.Speed()*a.Pace(), 1e-9, "%s", a.Kind())
	}
}

func TestSampleScenario(t *testing.T) {
	run, err := NewRunning(testDate, 30, 3.0)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, run.Speed(), 1e-12)
	assert.InDelta(t, 10.0, run.Pace(), 1e-12)

	ride, err := NewCycling(testDate, 45, 15.0)
	require.NoError(t, err)
	assert.InDelta(t, 11.25, ride.Distance(), 1e-12)
	assert.InDelta(t, 4.0, ride.Pace(), 1e-12)

	swim, err := NewSwimming(testDate, 20, 10)
	require.NoError(t, err)
	assert.InDelta(t, 0.31, swim.Distance(), 1e-12)
	assert.InDelta(t, 0.93, swim.Speed(), 1e-12)
	assert.InDelta(t, 64.516, swim.Pace(), 1e-3)
}

func TestRecordIsDayPrecision(t *testing.T) {
	a, err := NewRunning(testDate, 30, 3.0)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2022, time.November, 3, 0, 0, 0, 0, time.UTC), a.Date())
	assert.Equal(t, 30, a.DurationMinutes())
}

func TestConstructorsRejectInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		build func() (Activity, error)
		want  error
	}{
		{
			name:  "zero date",
			build: func() (Activity, error) { return NewRunning(time.Time{}, 30, 3.0) },
			want:  ErrInvalidDate,
		},
		{
			name:  "zero duration",
			build: func() (Activity, error) { return NewCycling(testDate, 0, 15.0) },
			want:  ErrInvalidDuration,
		},
		{
			name:  "negative duration",
			build: func() (Activity, error) { return NewSwimming(testDate, -5, 10) },
			want:  ErrInvalidDuration,
		},
		{
			name:  "zero distance",
			build: func() (Activity, error) { return NewRunning(testDate, 30, 0) },
			want:  ErrInvalidMeasure,
		},
		{
			name:  "NaN distance",
			build: func() (Activity, error) { return NewRunning(testDate, 30, math.NaN()) },
			want:  ErrInvalidMeasure,
		},
		{
			name:  "infinite speed",
			build: func() (Activity, error) { return NewCycling(testDate, 30, math.Inf(1)) },
			want:  ErrInvalidMeasure,
		},
		{
			name:  "negative speed",
			build: func() (Activity, error) { return NewCycling(testDate, 30, -12) },
			want:  ErrInvalidMeasure,
		},
		{
			name:  "subnormal distance",
			build: func() (Activity, error) { return NewRunning(testDate, 30, 1e-320) },
			want:  ErrInvalidMeasure,
		},
		{
			name:  "speed overflowing distance",
			build: func() (Activity, error) { return NewCycling(testDate, 120, math.MaxFloat64) },
			want:  ErrInvalidMeasure,
		},
		{
			name:  "zero laps",
			build: func() (Activity, error) { return NewSwimming(testDate, 20, 0) },
			want:  ErrInvalidMeasure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" swimming ")
	require.NoError(t, err)
	assert.Equal(t, KindSwimming, k)

	_, err = ParseKind("rowing")
	assert.Error(t, err)
}

func TestLargeMeasuresStayFinite(t *testing.T) {
	a, err := NewCycling(testDate, 1, 1e300)
	require.NoError(t, err)

	for _, v := range []float64{a.Distance(), a.Speed(), a.Pace()} {
		assert.False(t, math.IsInf(v, 0) || math.IsNaN(v), "%v", v)
	}
	assert.NotContains(t, a.Summary(), "Inf")
	assert.Equal(t, 1e300, a.Metrics().Rounded().SpeedMph)
}
