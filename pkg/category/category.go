// Package category defines the closed set of celestial-object categories.
// Categories used to be free-text strings, which split analytics groups on
// casing ("Planet" vs "planet"); every write path now parses through this
// package instead.
package category

import (
	"fmt"
	"strings"
)

type Category string

const (
	Planet   Category = "planet"
	Star     Category = "star"
	Galaxy   Category = "galaxy"
	Nebula   Category = "nebula"
	Comet    Category = "comet"
	Moon     Category = "moon"
	Asteroid Category = "asteroid"

	// Unknown buckets records whose stored category predates the closed set.
	Unknown Category = "unknown"
)

// All lists every assignable category, in display order.
func All() []Category {
	return []Category{Planet, Star, Galaxy, Nebula, Comet, Moon, Asteroid}
}

// Parse normalizes a raw category string into the closed set. It accepts any
// casing and surrounding whitespace, and rejects strings outside the set.
func Parse(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range All() {
		if c == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", raw)
}

// Normalize is Parse with a fallback: values outside the set map to Unknown
// instead of failing. Read paths (analytics over legacy documents) use this.
func Normalize(raw string) Category {
	if c, err := Parse(raw); err == nil {
		return c
	}
	return Unknown
}

// Display returns the capitalized plural used in reports ("Planets").
func (c Category) Display() string {
	if c == "" {
		c = Unknown
	}
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:] + "s"
}

func (c Category) String() string {
	return string(c)
}
