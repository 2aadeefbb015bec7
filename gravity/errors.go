package gravity

import "errors"

var (
	ErrUnknownMode  = errors.New("gravity: unknown mode")
	ErrInvalidValue = errors.New("gravity: invalid config value")
	// ErrNoFieldBody is reported once at startup when a carrier has no
	// field body to spawn; the carrier keeps working without the weapon.
	ErrNoFieldBody = errors.New("gravity: carrier has no field body")
)
