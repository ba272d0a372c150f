package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphanumLess(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"cs 9", "cs 10", true},
		{"cs 10", "cs 9", false},
		{"cs 10", "cs 10", false},
		{"cs", "cs 1", true},
		{"cs 1", "cs", false},
		{"art 100", "biology 2", true},
		{"project 2 — v10", "project 2 — v9", false},
		{"", "a", true},
		{"", "", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, AlphanumLess(c.a, c.b), "%q < %q", c.a, c.b)
	}
}
