package profile

import "errors"

var (
	ErrUnknownMode   = errors.New("unknown mode")
	ErrUnknownRunner = errors.New("unknown runner")
	ErrNotNarrowing  = errors.New("overlay widens bot behaviour")
	ErrCatalog       = errors.New("invalid profile catalog")
)
