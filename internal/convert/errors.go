package convert

import "github.com/woozymasta/geodoc/internal/geo"

// Error kinds returned by the converters. Test with errors.Is.
var (
	ErrInvalidShape    = geo.ErrInvalidShape
	ErrUnknownMetric   = geo.ErrUnknownMetric
	ErrInvalidArgument = geo.ErrInvalidArgument
)
