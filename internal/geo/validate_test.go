package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(NewPoint(1, 2)))
	require.NoError(t, Validate(NewCircle(NewPoint(0, 0), NewDistance(0))))
	require.NoError(t, Validate(NewPolygon(NewPoint(0, 0))))
	require.NoError(t, Validate(Coordinates{1, 2}))

	require.ErrorIs(t, Validate(NewCircle(NewPoint(0, 0), NewDistance(-1))), ErrInvalidShape)
	require.ErrorIs(t, Validate(NewSphere(NewPoint(0, 0), NewDistance(-0.5))), ErrInvalidShape)
	require.ErrorIs(t, Validate(Polygon{}), ErrInvalidShape)
	require.ErrorIs(t, Validate(Coordinates{1, 2, 3}), ErrInvalidShape)
	require.ErrorIs(t, Validate(Custom{}), ErrInvalidShape)
	require.ErrorIs(t, Validate(nil), ErrInvalidShape)
}
