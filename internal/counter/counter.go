// Package counter provides the counting strategies behind textstat's totals.
//
// Three strategies are available through the Counter interface: characters
// (Unicode code points), words (tokens under the tokenize package's rule) and
// LLM tokens (tiktoken, cl100k_base by default).
//
// Usage Example:
//
//	c, err := counter.NewCounter(counter.Words)
//	if err != nil {
//		return err
//	}
//	n := c.Count("Hello, world!") // 2
package counter

import (
	"fmt"
	"strings"
)

// Counter defines the interface for different text counting strategies.
type Counter interface {
	// Count returns the number of units (characters, words or tokens) in given text.
	Count(text string) int

	// Name returns a human-readable name for this counting method (for logging)
	Name() string
}

// CountingMethod represents the different available counting strategies.
type CountingMethod int

const (
	// Characters counts Unicode code points including whitespace (default)
	Characters CountingMethod = iota
	// Words counts normalized word tokens
	Words
	// Tokens uses tiktoken with the cl100k_base encoding
	Tokens
)

// String returns the string representation of the counting method.
func (cm CountingMethod) String() string {
	switch cm {
	case Characters:
		return "characters"
	case Words:
		return "words"
	case Tokens:
		return "tokens"
	default:
		return "unknown"
	}
}

// ParseCountingMethod maps a user-supplied name onto a CountingMethod.
// Short forms "chars" and "char" are accepted for characters.
func ParseCountingMethod(name string) (CountingMethod, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "characters", "chars", "char":
		return Characters, nil
	case "words", "word":
		return Words, nil
	case "tokens", "token":
		return Tokens, nil
	default:
		return Characters, fmt.Errorf("unknown counting method %q (want characters, words or tokens)", name)
	}
}

// NewCounter creates a new Counter instance based on the specified method.
// Returns an error if the counter cannot be initialized (e.g., tiktoken encoding fails).
func NewCounter(method CountingMethod) (Counter, error) {
	switch method {
	case Characters:
		return NewCharCounter(), nil
	case Words:
		return NewWordCounter(), nil
	case Tokens:
		tc, err := NewTokenCounter(DefaultEncoding)
		if err != nil {
			return nil, err
		}
		return tc, nil
	default:
		return nil, fmt.Errorf("unsupported counting method %d", int(method))
	}
}
