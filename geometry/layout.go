package geometry

import (
	"fmt"
	"strings"

	"github.com/wiless/phasedarray/arrayerr"
)

// LayoutType selects how element positions are laid out.
type LayoutType int

var LayoutTypes = [...]string{
	"linear",
	"diagonal",
	"random",
	"y",
	"circular",
	"arbitrary",
}

const (
	Linear LayoutType = iota
	Diagonal
	Random
	Y
	Circular
	Arbitrary
)

func (l LayoutType) String() string {
	if int(l) < 0 || int(l) >= len(LayoutTypes) {
		return "Unknown-LayoutType"
	}
	return LayoutTypes[l]
}

// ParseLayout maps a case-insensitive layout name to its LayoutType.
// Recognised but unimplemented names still parse; Build rejects them.
func ParseLayout(name string) (LayoutType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, v := range LayoutTypes {
		if v == name {
			return LayoutType(i), nil
		}
	}
	return 0, fmt.Errorf("geometry: unknown layout %q: %w", name, arrayerr.ErrInvalidConfiguration)
}
