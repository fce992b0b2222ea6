// Package constraint filters dictionary words by pattern, required letters
// and length. A constraint is attached to a word graph as its validator.
package constraint

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Wildcard in a required-letter string matches nothing in particular.
const Wildcard = '?'

// Options is the configuration surface of a constraint. Zero values are
// unset.
type Options struct {
	Pattern  string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Required string `json:"required,omitempty" yaml:"required,omitempty"`
	Exact    int    `json:"exact,omitempty" yaml:"exact,omitempty"`
	Min      int    `json:"min,omitempty" yaml:"min,omitempty"`
	Max      int    `json:"max,omitempty" yaml:"max,omitempty"`
}

// WordConstraint is a conjunction of optional filters. The zero value
// accepts every word. Set it up before attaching it to a graph; it is not
// safe to change one that searches are using.
type WordConstraint struct {
	pattern  *regexp.Regexp
	source   string
	required string
	exact    int
	min      int
	max      int
}

// Parse builds a constraint from options. It fails if the pattern does not
// compile. The lengths are taken as given: a minimum above the maximum
// accepts no word.
func Parse(o Options) (*WordConstraint, error) {
	c := &WordConstraint{}
	if err := c.SetPattern(o.Pattern); err != nil {
		return nil, err
	}
	c.SetRequired(o.Required)
	c.exact = max(o.Exact, 0)
	c.min = max(o.Min, 0)
	c.max = max(o.Max, 0)
	return c, nil
}

// SetPattern sets a regular expression that must match the whole word. An
// empty pattern clears it.
func (c *WordConstraint) SetPattern(p string) error {
	if p == "" {
		c.pattern, c.source = nil, ""
		return nil
	}
	re, err := regexp.Compile("^(?:" + p + ")$")
	if err != nil {
		return fmt.Errorf("bad pattern %q: %w", p, err)
	}
	c.pattern, c.source = re, p
	return nil
}

// SetRequired sets letters that must each appear in the word. A word must
// also be at least as long as the letters that are not wildcards.
func (c *WordConstraint) SetRequired(letters string) {
	c.required = strings.ToUpper(letters)
}

func (c *WordConstraint) SetExactLength(n int) {
	c.exact = max(n, 0)
}

// SetMinLength sets the shortest allowed word, raising the maximum if it
// would otherwise be smaller.
func (c *WordConstraint) SetMinLength(n int) {
	c.min = max(n, 0)
	if c.max > 0 && c.max < c.min {
		c.max = c.min
	}
}

// SetMaxLength sets the longest allowed word, lowering the minimum if it
// would otherwise be larger.
func (c *WordConstraint) SetMaxLength(n int) {
	c.max = max(n, 0)
	if c.max > 0 && c.min > c.max {
		c.min = c.max
	}
}

// Reset clears every filter.
func (c *WordConstraint) Reset() {
	*c = WordConstraint{}
}

// Options returns the current settings.
func (c *WordConstraint) Options() Options {
	return Options{
		Pattern:  c.source,
		Required: c.required,
		Exact:    c.exact,
		Min:      c.min,
		Max:      c.max,
	}
}

// IsZero is true when no filter is set.
func (c *WordConstraint) IsZero() bool {
	return c.Options() == Options{}
}

func (c *WordConstraint) Validate(word string) bool {
	if c.pattern != nil && !c.pattern.MatchString(word) {
		return false
	}
	if !c.hasRequired(word) {
		return false
	}
	n := utf8.RuneCountInString(word)
	if c.exact > 0 {
		return n == c.exact
	}
	if c.max > 0 && n > c.max {
		return false
	}
	if c.min > 0 && n < c.min {
		return false
	}
	return true
}

func (c *WordConstraint) hasRequired(word string) bool {
	if c.required == "" {
		return true
	}
	needed := 0
	for _, r := range c.required {
		if r == Wildcard {
			continue
		}
		needed++
		if !strings.ContainsRune(word, r) {
			return false
		}
	}
	return utf8.RuneCountInString(word) >= needed
}

func (c *WordConstraint) String() string {
	var parts []string
	if c.source != "" {
		parts = append(parts, "pattern="+c.source)
	}
	if c.required != "" {
		parts = append(parts, "required="+c.required)
	}
	if c.exact > 0 {
		parts = append(parts, fmt.Sprintf("exact=%d", c.exact))
	}
	if c.min > 0 {
		parts = append(parts, fmt.Sprintf("min=%d", c.min))
	}
	if c.max > 0 {
		parts = append(parts, fmt.Sprintf("max=%d", c.max))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
