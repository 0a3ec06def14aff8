package geo

import "github.com/pkg/errors"

var (
	// ErrInvalidShape reports a malformed or incomplete shape document.
	ErrInvalidShape = errors.New("invalid shape")
	// ErrUnknownMetric reports a metric name outside the known set.
	ErrUnknownMetric = errors.New("unknown metric")
	// ErrInvalidArgument reports malformed GeoJSON or an unsupported geometry.
	ErrInvalidArgument = errors.New("invalid argument")
)
