package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrPlaylistExists    = errors.New("playlist already exists")
	ErrPlaylistNotFound  = errors.New("playlist not found")
	ErrNoCurrentPlaylist = errors.New("no current playlist selected")
	ErrIndexOutOfRange   = errors.New("song index out of range")
	ErrInvalidFormat     = errors.New("unsupported audio format")
	ErrInvalidVolume     = errors.New("volume must be between 0.0 and 1.0")
)

// PlayerError wraps audio failures with the operation and file that failed
type PlayerError struct {
	Op   string // Operation that failed (open, decode, speaker)
	Path string // File path if applicable
	Err  error  // Underlying error
}

func (e *PlayerError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s failed for %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *PlayerError) Unwrap() error {
	return e.Err
}

// NewPlayerError creates a new PlayerError
func NewPlayerError(op, path string, err error) *PlayerError {
	return &PlayerError{Op: op, Path: path, Err: err}
}

// ScanError represents an error during directory scanning
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan error at %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}
