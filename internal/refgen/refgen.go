// Package refgen mints short human-readable reference codes and retries
// until one is free of collision against the persistent store.
package refgen

import (
	"context"
	"errors"
	"math/rand"
	"strings"
)

// Alphabet is the 36-symbol space used for booking references and flight
// numbers.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const DefaultMaxAttempts = 1000

// ErrExhausted is returned when every sampled code collided within the
// attempt bound. Callers treat it as resource exhaustion, not a bug.
var ErrExhausted = errors.New("reference space exhausted")

// ExistsFunc reports whether a candidate code is already taken. It must
// be a pure existence check against persistent state.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

type Generator struct {
	alphabet    string
	length      int
	maxAttempts int
}

func New(alphabet string, length int) *Generator {
	if alphabet == "" {
		alphabet = Alphabet
	}
	return &Generator{alphabet: alphabet, length: length, maxAttempts: DefaultMaxAttempts}
}

// WithMaxAttempts overrides the retry bound. Zero or negative values keep
// the default.
func (g *Generator) WithMaxAttempts(n int) *Generator {
	if n > 0 {
		g.maxAttempts = n
	}
	return g
}

// Generate samples codes uniformly from the alphabet until exists reports
// false, returning ErrExhausted after the attempt bound. Errors from
// exists propagate unchanged.
func (g *Generator) Generate(ctx context.Context, exists ExistsFunc) (string, error) {
	for i := 0; i < g.maxAttempts; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		code := g.sample()
		taken, err := exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrExhausted
}

func (g *Generator) sample() string {
	var b strings.Builder
	b.Grow(g.length)
	for i := 0; i < g.length; i++ {
		b.WriteByte(g.alphabet[rand.Intn(len(g.alphabet))])
	}
	return b.String()
}
