package geo

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Earth radii used as metric multipliers. A normalized distance is an angle in radians.
const (
	earthRadiusKilometers = 6378.137
	earthRadiusMiles      = 3963.191
)

// Metric is a named distance unit. Multiplier converts a normalized value into the unit.
type Metric struct {
	Name         string  `json:"name" yaml:"name"`
	Abbreviation string  `json:"abbreviation,omitempty" yaml:"abbreviation,omitempty"`
	Multiplier   float64 `json:"multiplier" yaml:"multiplier"`
}

var (
	// Kilometers measures distances on the earth surface in kilometers.
	Kilometers = Metric{Name: "KILOMETERS", Abbreviation: "km", Multiplier: earthRadiusKilometers}
	// Miles measures distances on the earth surface in statute miles.
	Miles = Metric{Name: "MILES", Abbreviation: "mi", Multiplier: earthRadiusMiles}
	// Neutral applies no conversion.
	Neutral = Metric{Name: "NEUTRAL", Multiplier: 1.0}
)

var metrics = map[string]Metric{
	Kilometers.Name: Kilometers,
	Miles.Name:      Miles,
	Neutral.Name:    Neutral,
}

// Metrics returns the known metrics keyed by name.
func Metrics() map[string]Metric {
	out := make(map[string]Metric, len(metrics))
	for k, v := range metrics {
		out[k] = v
	}
	return out
}

// ParseMetric resolves a metric by its exact name.
func ParseMetric(name string) (Metric, error) {
	m, ok := metrics[name]
	if !ok {
		return Metric{}, errors.Wrapf(ErrUnknownMetric, "metric %q (known: %s)", name, knownMetricNames())
	}
	return m, nil
}

func knownMetricNames() string {
	return strings.Join([]string{Kilometers.Name, Miles.Name, Neutral.Name}, ", ")
}

// String returns the metric name.
func (m Metric) String() string {
	return m.orNeutral().Name
}

// zero value Metric behaves as Neutral
func (m Metric) orNeutral() Metric {
	if m.Multiplier == 0 {
		return Neutral
	}
	return m
}

// Distance is a magnitude expressed in a Metric.
type Distance struct {
	Metric Metric  `json:"metric" yaml:"metric"`
	Value  float64 `json:"value" yaml:"value" validate:"gte=0"`
}

// NewDistance returns a distance without unit conversion.
func NewDistance(value float64) Distance {
	return Distance{Value: value, Metric: Neutral}
}

// NewDistanceIn returns a distance expressed in metric.
func NewDistanceIn(value float64, metric Metric) Distance {
	return Distance{Value: value, Metric: metric}
}

// Unit returns the metric of the distance, Neutral when unset.
func (d Distance) Unit() Metric {
	return d.Metric.orNeutral()
}

// Normalized returns the value divided by the metric multiplier.
func (d Distance) Normalized() float64 {
	return d.Value / d.Unit().Multiplier
}

// In re-expresses the distance in metric.
func (d Distance) In(metric Metric) Distance {
	metric = metric.orNeutral()
	if d.Unit() == metric {
		return d
	}
	return Distance{Value: d.Normalized() * metric.Multiplier, Metric: metric}
}

// Degrees returns the normalized distance as an angle in degrees.
// Neutral distances are already in coordinate units and are returned as is.
func (d Distance) Degrees() float64 {
	if d.Unit() == Neutral {
		return d.Value
	}
	return d.Normalized() * (180.0 / math.Pi)
}
