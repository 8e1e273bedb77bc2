package antenna

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/wiless/phasedarray/arrayerr"
	"github.com/wiless/vlib"
)

// Strategy selects how beam weights are synthesised.
type Strategy int

var Strategies = [...]string{
	"uniform",
	"classical",
}

const (
	Uniform Strategy = iota
	Classical
)

func (s Strategy) String() string {
	if int(s) < 0 || int(s) >= len(Strategies) {
		return "Unknown-Strategy"
	}
	return Strategies[s]
}

// ParseStrategy maps a case-insensitive name to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, v := range Strategies {
		if v == name {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("antenna: unknown beamforming strategy %q: %w", name, arrayerr.ErrInvalidConfiguration)
}

// Synthesize computes one complex weight per element.
//
// Uniform returns all ones and ignores steer. Classical steers the main response toward
// *steer: it takes the response vector r of that direction and returns r/sqrt(r^H r),
// so the weights always have unit Hermitian norm. Classical without steer fails with
// arrayerr.ErrInvalidConfiguration, and so does a spacing that is not positive.
func Synthesize(strategy Strategy, positions []vlib.Location3D, e Element, spacing float64, steer *Direction) (vlib.VectorC, error) {
	if len(positions) == 0 {
		return nil, fmt.Errorf("antenna: no elements to weight: %w", arrayerr.ErrInvalidConfiguration)
	}
	if !(spacing > 0) {
		return nil, fmt.Errorf("antenna: spacing %v: %w", spacing, arrayerr.ErrInvalidConfiguration)
	}
	switch strategy {
	case Uniform:
		return vlib.NewOnesC(len(positions)), nil
	case Classical:
		if steer == nil {
			return nil, fmt.Errorf("antenna: classical beamforming needs a steering direction: %w", arrayerr.ErrInvalidConfiguration)
		}
		if e == nil {
			return nil, fmt.Errorf("antenna: classical beamforming needs an element model: %w", arrayerr.ErrInvalidConfiguration)
		}
		r := ResponseVector(positions, e, spacing, *steer)
		norm := Norm(r)
		if norm == 0 {
			return nil, fmt.Errorf("antenna: element has no response toward %v: %w", *steer, arrayerr.ErrInvalidConfiguration)
		}
		w := vlib.NewVectorC(len(r))
		scale := complex(1.0/norm, 0)
		for k := range r {
			w[k] = r[k] * scale
		}
		log.WithFields(log.Fields{"elements": len(w), "steer": steer.String()}).Debug("classical weights synthesised")
		return w, nil
	default:
		return nil, fmt.Errorf("antenna: strategy %d: %w", int(strategy), arrayerr.ErrInvalidConfiguration)
	}
}
