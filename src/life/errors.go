package life

import "errors"

var (
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	ErrInvalidSeed       = errors.New("invalid seed policy")
	ErrUnknownEngine     = errors.New("unknown engine")
	ErrUnknownTemplate   = errors.New("unknown template")
)
