package gocubie

import "errors"

// Sentinel errors for the gocubie package.
var (
	// Notation errors
	ErrInvalidNotation = errors.New("gocubie: invalid move notation")
	ErrInvalidFace     = errors.New("gocubie: invalid face letter")

	// Connection errors
	ErrNotConnected     = errors.New("gocubie: not connected to device")
	ErrAlreadyConnected = errors.New("gocubie: already connected")
	ErrDeviceNotFound   = errors.New("gocubie: device not found")
	ErrTimeout          = errors.New("gocubie: operation timed out")
)
