package fire

import "errors"

var (
	// ErrInvalidDimension indicates a grid with zero or negative width or height.
	ErrInvalidDimension = errors.New("fire: invalid grid dimension")

	// ErrNoRandomSource indicates a grid constructed without a random source.
	ErrNoRandomSource = errors.New("fire: random source required")

	// ErrInvalidConfig indicates a configuration value outside its valid range.
	ErrInvalidConfig = errors.New("fire: invalid config")
)
