package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMetric(t *testing.T) {
	m, err := ParseMetric("KILOMETERS")
	require.NoError(t, err)
	require.Equal(t, Kilometers, m)

	_, err = ParseMetric("kilometers")
	require.ErrorIs(t, err, ErrUnknownMetric)

	require.Len(t, Metrics(), 3)
}

func TestDistanceIn(t *testing.T) {
	d := NewDistanceIn(100, Kilometers)
	require.InDelta(t, 100/6378.137, d.Normalized(), 1e-15)

	miles := d.In(Miles)
	require.Equal(t, Miles, miles.Metric)
	require.InDelta(t, 62.137, miles.Value, 1e-2)

	require.Equal(t, d, d.In(Kilometers))

	neutral := NewDistance(0.5)
	require.Equal(t, neutral, neutral.In(Neutral))
	require.InDelta(t, 0.5*6378.137, neutral.In(Kilometers).Value, 1e-9)
}

func TestZeroMetricIsNeutral(t *testing.T) {
	d := Distance{Value: 2}
	require.Equal(t, Neutral, d.Unit())
	require.Equal(t, 2.0, d.Normalized())
	require.Equal(t, "NEUTRAL", d.Metric.String())
}

func TestDistanceDegrees(t *testing.T) {
	require.Equal(t, 3.0, NewDistance(3).Degrees())

	d := NewDistanceIn(math.Pi*earthRadiusKilometers, Kilometers)
	require.InDelta(t, 180, d.Degrees(), 1e-9)
}
