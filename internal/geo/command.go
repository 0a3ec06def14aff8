package geo

// Legacy geospatial query operators.
const (
	CommandBox          = "$box"
	CommandCenter       = "$center"
	CommandCenterSphere = "$centerSphere"
	CommandPolygon      = "$polygon"
)

// GeoCommand pairs a query operator name with its shape argument.
type GeoCommand struct {
	Shape   Shape  `json:"shape" yaml:"shape"`
	Command string `json:"command" yaml:"command" validate:"required"`
}

// NewGeoCommand returns a command with an explicit operator name.
func NewGeoCommand(command string, shape Shape) GeoCommand {
	return GeoCommand{Command: command, Shape: shape}
}

// CommandFor returns the command named after the shape's default legacy operator.
// The name is empty for shapes without one.
func CommandFor(shape Shape) GeoCommand {
	return GeoCommand{Command: DefaultCommand(shape), Shape: shape}
}

// DefaultCommand returns the legacy operator used with shape.
func DefaultCommand(shape Shape) string {
	switch shape.(type) {
	case Box:
		return CommandBox
	case Circle:
		return CommandCenter
	case Sphere:
		return CommandCenterSphere
	case Polygon:
		return CommandPolygon
	default:
		return ""
	}
}
