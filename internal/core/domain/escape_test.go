package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/westkit/westnix/internal/core/domain"
)

func TestShellQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", `'plain'`},
		{"", `''`},
		{"with space", `'with space'`},
		{"it's", `'it'\''s'`},
		{"$HOME `cmd` \"x\"", "'$HOME `cmd` \"x\"'"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.ShellQuote(tt.in))
	}
}

func TestNixString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", `"plain"`},
		{`with "quotes"`, `"with \"quotes\""`},
		{`back\slash`, `"back\\slash"`},
		{"${injected}", `"\${injected}"`},
		{"a$b", `"a$b"`},
		{"line\nbreak", `"line\nbreak"`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.NixString(tt.in))
	}
}
