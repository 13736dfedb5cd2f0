// Package refcode generates short human friendly referral codes.
package refcode

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// Alphabet omits characters that are easy to confuse when read aloud or
// typed from a screenshot (0/O, 1/I/L).
const Alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// DefaultLength is the code length used when none is configured.
const DefaultLength = 8

// Generator produces random referral codes. Uniqueness within a campaign is
// checked by the caller.
type Generator struct {
	length int
	rand   io.Reader
}

// Option configures a Generator.
type Option func(*Generator)

// WithRandom replaces the entropy source.
func WithRandom(r io.Reader) Option {
	return func(g *Generator) {
		if r != nil {
			g.rand = r
		}
	}
}

// New returns a generator producing codes of the given length.
func New(length int, opts ...Option) *Generator {
	if length <= 0 {
		length = DefaultLength
	}
	g := &Generator{length: length, rand: rand.Reader}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a fresh code. Bytes that would bias the distribution are
// rejected and redrawn.
func (g *Generator) Generate() (string, error) {
	const limit = 256 - 256%len(Alphabet)
	out := make([]byte, 0, g.length)
	buf := make([]byte, g.length)
	for len(out) < g.length {
		if _, err := io.ReadFull(g.rand, buf); err != nil {
			return "", fmt.Errorf("refcode: read entropy: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, Alphabet[int(b)%len(Alphabet)])
			if len(out) == g.length {
				break
			}
		}
	}
	return string(out), nil
}

// Valid reports whether code could have been produced by a generator.
func Valid(code string) error {
	if code == "" {
		return errors.New("refcode: empty code")
	}
	for i := 0; i < len(code); i++ {
		if !isAlphabet(code[i]) {
			return fmt.Errorf("refcode: invalid character %q", code[i])
		}
	}
	return nil
}

func isAlphabet(c byte) bool {
	for i := 0; i < len(Alphabet); i++ {
		if Alphabet[i] == c {
			return true
		}
	}
	return false
}
