package random

import "fmt"

// Character class ranges. The effective alphabet is always assembled in
// the fixed order digits, lowercase, uppercase, special.
const (
	Digits    = "0123456789"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Special   = "!@#$%^&*-_=+~><?/"
)

// Bounds on the length of a generated string.
const (
	MinLength = 1
	MaxLength = 256
)

// CharsetConfig selects the character classes and target length for
// string generation.
type CharsetConfig struct {
	Digits    bool // Include 0-9
	Lowercase bool // Include a-z
	Uppercase bool // Include A-Z
	Special   bool // Include !@#$%^&*-_=+~><?/
	Length    int  // Number of characters to generate
}

// alphabet concatenates the character ranges for each enabled class.
func (c CharsetConfig) alphabet() []byte {
	var chars []byte
	if c.Digits {
		chars = append(chars, Digits...)
	}
	if c.Lowercase {
		chars = append(chars, Lowercase...)
	}
	if c.Uppercase {
		chars = append(chars, Uppercase...)
	}
	if c.Special {
		chars = append(chars, Special...)
	}
	return chars
}

// StringGenerator draws random strings from a fixed alphabet.
type StringGenerator struct {
	alphabet []byte
	length   int
	source   *Source
}

// NewStringGenerator builds the alphabet for cfg and validates it.
//
// Length bounds are policy owned by the boundary layer; they are
// re-checked here so the core never generates outside them. Nothing is
// defaulted or clamped: an empty alphabet or an out-of-bound length
// fails with ErrConfiguration.
//
// Parameters:
//   - cfg: enabled character classes and target length
//   - source: the random source to draw from
//
// Returns a generator, or ErrConfiguration if cfg is invalid.
func NewStringGenerator(cfg CharsetConfig, source *Source) (*StringGenerator, error) {
	if cfg.Length < MinLength || cfg.Length > MaxLength {
		return nil, fmt.Errorf("%w: length %d (must be %d-%d)", ErrConfiguration, cfg.Length, MinLength, MaxLength)
	}

	alphabet := cfg.alphabet()
	if len(alphabet) == 0 {
		return nil, fmt.Errorf("%w: at least one character class must be enabled", ErrConfiguration)
	}

	return &StringGenerator{
		alphabet: alphabet,
		length:   cfg.Length,
		source:   source,
	}, nil
}

// Generate returns a fresh random string of the configured length.
//
// Each position is an independent uniform draw from the alphabet, so the
// same character may repeat across positions. The only state advanced is
// the source's stream position; repeated calls with the same generator
// produce unrelated strings.
func (g *StringGenerator) Generate() string {
	b := make([]byte, g.length)
	for i := range b {
		b[i] = g.alphabet[g.source.Intn(len(g.alphabet))]
	}
	return string(b)
}
