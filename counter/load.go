package counter

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrInvalidEncoding is matched by every DecodeError.
var ErrInvalidEncoding = errors.New("invalid UTF-8")

// DecodeError reports content that is not valid UTF-8 text.
type DecodeError struct {
	Path   string
	Offset int // first invalid byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: invalid UTF-8 at byte offset %d", e.Path, e.Offset)
}

// Is reports whether target is ErrInvalidEncoding.
func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidEncoding
}

// Load reads the whole file at path as text.
// The file is opened, read and closed before Load returns, on every path.
// Read errors are wrapped and keep their fs.ErrNotExist / fs.ErrPermission identity.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read log file: %w", err)
	}

	if off := invalidOffset(data); off >= 0 {
		return "", &DecodeError{Path: path, Offset: off}
	}

	return string(data), nil
}

// invalidOffset returns the offset of the first invalid UTF-8 sequence, or -1.
func invalidOffset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
