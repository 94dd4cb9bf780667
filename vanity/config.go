package vanity

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// alphabet is the bitcoin base58 alphabet.
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ErrInvalidPrefix is returned for prefixes that no base58 string can match.
var ErrInvalidPrefix = errors.New("prefix is not base58")

// Config holds the search parameters.
type Config struct {
	// Prefix is matched case-insensitively against the start of the
	// base58 public key. An empty prefix matches every key.
	Prefix string
	// Workers is the number of search goroutines. Zero or less means one
	// per CPU.
	Workers int
}

// Validate checks the prefix and fills in defaults.
func (c *Config) Validate() error {
	for _, r := range c.Prefix {
		if !strings.ContainsRune(alphabet, r) &&
			!strings.ContainsRune(alphabet, toggleCase(r)) {
			return errors.Wrapf(ErrInvalidPrefix, "character %q in %q", r, c.Prefix)
		}
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	return nil
}

func toggleCase(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return r - 'a' + 'A'
	case r >= 'A' && r <= 'Z':
		return r - 'A' + 'a'
	}
	return r
}
