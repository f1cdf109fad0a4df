package types

import (
	"strconv"

	"github.com/m-mizutani/goerr/v2"
)

// Level is a maturity rank on the 1-5 scale. It is used both for
// individual question ratings and for the discretized overall level.
type Level int

const (
	LevelMin Level = 1
	LevelMax Level = 5
)

// AllLevels returns the valid ranks in ascending order
func AllLevels() []Level {
	levels := make([]Level, 0, LevelMax-LevelMin+1)
	for l := LevelMin; l <= LevelMax; l++ {
		levels = append(levels, l)
	}
	return levels
}

func (l Level) String() string {
	return strconv.Itoa(int(l))
}

func (l Level) IsValid() bool {
	return l >= LevelMin && l <= LevelMax
}

// Next returns the rank above this one, or the same rank when already
// at the top of the scale
func (l Level) Next() Level {
	if l >= LevelMax {
		return LevelMax
	}
	return l + 1
}

// ParseLevel converts a raw integer into a Level, rejecting values
// outside the 1-5 domain
func ParseLevel(v int) (Level, error) {
	l := Level(v)
	if !l.IsValid() {
		return 0, goerr.New("level out of domain", goerr.V("value", v))
	}
	return l, nil
}
