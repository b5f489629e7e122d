package pangu

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
// The spacing transformation itself never fails; these come from loading input.
var (
	// ErrFileNotFound indicates the input file does not exist.
	ErrFileNotFound = errors.New("pangu: file not found")

	// ErrNotRegularFile indicates the input path names a directory or device.
	ErrNotRegularFile = errors.New("pangu: not a regular file")

	// ErrInvalidUTF8 indicates the input is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("pangu: invalid UTF-8 input")
)
