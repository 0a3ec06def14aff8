package geo

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared struct validator.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the invariants of a shape that decoding does not enforce:
// non-negative radii, non-empty polygons and two-value coordinate arrays.
func Validate(s Shape) error {
	switch v := s.(type) {
	case nil:
		return errors.Wrap(ErrInvalidShape, "shape must not be nil")
	case Coordinates:
		if len(v) != 2 {
			return errors.Wrapf(ErrInvalidShape, "point coordinates need x and y, got %d values", len(v))
		}
		return nil
	case Custom:
		if v.Geometry == nil {
			return errors.Wrap(ErrInvalidShape, "custom geometry must not be nil")
		}
		return nil
	}

	if err := Validator().Struct(s); err != nil {
		return errors.Wrapf(ErrInvalidShape, "%T: %v", s, err)
	}
	return nil
}
