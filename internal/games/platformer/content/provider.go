package content

import (
	"errors"
	"fmt"
)

// ErrLevelNotFound is returned by providers that have no level for a number.
var ErrLevelNotFound = errors.New("level not found")

// Provider returns level data by 1-based level number.
type Provider interface {
	Level(n int) (LevelSpec, error)
}

// Chain asks each provider in turn. A provider reporting ErrLevelNotFound
// passes the request on; any other error stops the chain.
func Chain(providers ...Provider) Provider {
	return chain(providers)
}

type chain []Provider

func (c chain) Level(n int) (LevelSpec, error) {
	for _, p := range c {
		if p == nil {
			continue
		}
		spec, err := p.Level(n)
		if err == nil {
			return spec, nil
		}
		if !errors.Is(err, ErrLevelNotFound) {
			return LevelSpec{}, err
		}
	}
	return LevelSpec{}, fmt.Errorf("level %d: %w", n, ErrLevelNotFound)
}
