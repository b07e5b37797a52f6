package terminal

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

// Size represents terminal dimensions in character cells.
type Size struct {
	Cols int
	Rows int
}

// DefaultSize is used when neither the terminal nor the environment
// reports dimensions.
var DefaultSize = Size{Cols: 80, Rows: 24}

// GetSize returns the current terminal dimensions. It tries stdout, then
// stderr (in case stdout is redirected), then COLUMNS/LINES, then
// DefaultSize.
func GetSize() Size {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if s, ok := sizeFromFd(f.Fd()); ok {
			return s
		}
	}
	return sizeFromEnv()
}

// GetSizeFromFd returns the size of the terminal behind fd, falling back
// to the environment and then DefaultSize.
func GetSizeFromFd(fd uintptr) Size {
	if s, ok := sizeFromFd(fd); ok {
		return s
	}
	return sizeFromEnv()
}

func sizeFromFd(fd uintptr) (Size, bool) {
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return Size{}, false
	}
	return Size{Cols: w, Rows: h}, true
}

func sizeFromEnv() Size {
	return Size{
		Cols: envInt("COLUMNS", DefaultSize.Cols),
		Rows: envInt("LINES", DefaultSize.Rows),
	}
}

// envInt reads a positive integer from the named environment variable,
// returning fallback when it is unset or malformed.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
