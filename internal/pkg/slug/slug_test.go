package slug

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Flat", "my-flat"},
		{"  Villa   sul   Mare  ", "villa-sul-mare"},
		{"Città di Castello", "citta-di-castello"},
		{"Crème Brûlée Loft!", "creme-brulee-loft"},
		{"A -- B", "a-b"},
		{"---leading and trailing---", "leading-and-trailing"},
		{"Appartamento #12 (centro)", "appartamento-12-centro"},
		{"tab\tand\nnewline", "tab-and-newline"},
		{"100% cozy", "100-cozy"},
		{"Ελληνικά", ""},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestMake_IdempotentAndWellFormed(t *testing.T) {
	inputs := []string{
		"My Flat", "Città di Castello", "  --x--  ", "Ünïcödé Ünïcödé", "a_b.c/d",
		"Loft 2 — vista mare", "日本の家", "Ça va?", "o'clock", "-", "Æsir Øst",
	}
	for _, in := range inputs {
		once := Make(in)
		assert.Equal(t, once, Make(once), "not idempotent for %q", in)
		if once != "" {
			assert.Regexp(t, slugPattern, once, "malformed slug for %q", in)
		}
	}
}
