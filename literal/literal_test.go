/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "bare identifier", raw: "foo", want: []string{"foo"}},
		{name: "single quoted", raw: "'foo'", want: []string{"foo"}},
		{name: "double quoted", raw: `"foo"`, want: []string{"foo"}},
		{name: "surrounding space", raw: "  currency_code ", want: []string{"currency_code"}},
		{name: "high bit identifier", raw: "währung", want: []string{"währung"}},
		{name: "list in source order", raw: `["a", "b"]`, want: []string{"a", "b"}},
		{name: "list with padding", raw: `[ "currency_code", "currency" ]`, want: []string{"currency_code", "currency"}},
		{name: "single quoted list", raw: `['x', 'y', 'z']`, want: []string{"x", "y", "z"}},
		{name: "plain list", raw: `[currency_code, currency]`, want: []string{"currency_code", "currency"}},
		{name: "numbers and booleans", raw: `[1, 2.5, -3, true]`, want: []string{"1", "2.5", "-3", "true"}},
		{name: "quoted non identifiers", raw: `['a b', ".inf", "0x1F"]`, want: []string{"a b", ".inf", "0x1F"}},
		{name: "keys with punctuation", raw: `["currency-code", "Currency Code"]`, want: []string{"currency-code", "Currency Code"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: "   "},
		{name: "leading digit", raw: "1abc"},
		{name: "mismatched quotes", raw: `"foo'`},
		{name: "expression", raw: `strtoupper("a")`},
		{name: "unterminated list", raw: `["a", "b"`},
		{name: "empty list", raw: `[]`},
		{name: "nested list", raw: `[["a"], "b"]`},
		{name: "mapping element", raw: `[a: b]`},
		{name: "null element", raw: `["a", null]`},
		{name: "empty element", raw: `["a", ""]`},
		{name: "anchor", raw: `[&x "a", *x]`},
		{name: "explicit tag", raw: `[!!str a]`},
		{name: "trailing document", raw: "[\"a\"]\n---\n[\"b\"]"},
		{name: "trailing comment", raw: `["a"] # and more`},
		{name: "map literal", raw: `{a: b}`},
		{name: "missing comma", raw: `[a b]`},
		{name: "missing comma after quoted", raw: `["a", b c]`},
		{name: "infinity", raw: `[.inf]`},
		{name: "not a number", raw: `[.nan]`},
		{name: "hex number", raw: `[0x1F]`},
		{name: "octal number", raw: `[0o17]`},
		{name: "exponent", raw: `[1e3]`},
		{name: "plain punctuation", raw: `[currency-code]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSyntax)
			assert.Nil(t, got)
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	assert.True(t, IsIdentifier("_private"))
	assert.True(t, IsIdentifier("currencyCode2"))
	assert.False(t, IsIdentifier(""))
	assert.False(t, IsIdentifier("9lives"))
	assert.False(t, IsIdentifier("has space"))
	assert.False(t, IsIdentifier("dash-ed"))
}

func TestFormatRoundTrip(t *testing.T) {
	keys := []string{"currency_code", "currency"}
	assert.Equal(t, `["currency_code", "currency"]`, Format(keys))

	got, err := Parse(Format(keys))
	require.NoError(t, err)
	assert.Equal(t, keys, got)
}
