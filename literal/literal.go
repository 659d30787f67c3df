/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package literal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrSyntax is wrapped by every error Parse returns.
var ErrSyntax = errors.New("invalid literal")

// unquoted numbers accepted as list elements
var decimalPattern = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?$`)

// scalar tags accepted as list elements
var elementTags = map[string]bool{
	"!!str":   true,
	"!!int":   true,
	"!!float": true,
	"!!bool":  true,
}

// Parse turns the raw value of an alias declaration into its ordered list of
// accepted keys. The value is either a bare identifier, an identifier wrapped in
// matching single or double quotes, or a bracketed list such as
// ["currency_code", "currency"]. List elements are quoted strings, bare
// identifiers (true and false included) or decimal numbers.
func Parse(raw string) ([]string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, fmt.Errorf("%w: empty value", ErrSyntax)
	}

	if IsIdentifier(value) {
		return []string{value}, nil
	}

	if inner, ok := unquoteIdentifier(value); ok {
		return []string{inner}, nil
	}

	if value[0] != '[' || value[len(value)-1] != ']' {
		return nil, fmt.Errorf("%w: %q is neither an identifier nor a list literal", ErrSyntax, value)
	}

	return parseList(value)
}

// IsIdentifier reports whether s is a bare identifier. Bytes at or above 0x7f
// are accepted anywhere, so multi-byte UTF-8 names pass unchanged.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= 0x7f:
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func unquoteIdentifier(s string) (string, bool) {
	if len(s) < 3 {
		return "", false
	}
	q := s[0]
	if (q != '"' && q != '\'') || s[len(s)-1] != q {
		return "", false
	}
	inner := s[1 : len(s)-1]
	if !IsIdentifier(inner) {
		return "", false
	}
	return inner, true
}

// parseList reads a single flow sequence as a node tree. Nothing is resolved
// beyond scalar tags, so the grammar stays literal-only.
func parseList(value string) ([]string, error) {
	dec := yaml.NewDecoder(strings.NewReader(value))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing content after list", ErrSyntax)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("%w: expected a single list", ErrSyntax)
	}
	seq := doc.Content[0]
	if seq.Kind != yaml.SequenceNode || seq.Style&yaml.FlowStyle == 0 {
		return nil, fmt.Errorf("%w: expected a [ ... ] list", ErrSyntax)
	}
	if seq.Anchor != "" || seq.Style&yaml.TaggedStyle != 0 {
		return nil, fmt.Errorf("%w: anchors and tags are not allowed", ErrSyntax)
	}
	if len(seq.Content) == 0 {
		return nil, fmt.Errorf("%w: empty list", ErrSyntax)
	}

	out := make([]string, 0, len(seq.Content))
	for i, n := range seq.Content {
		if err := checkElement(n); err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrSyntax, i, err)
		}
		out = append(out, n.Value)
	}
	return out, nil
}

func checkElement(n *yaml.Node) error {
	switch {
	case n.Kind == yaml.AliasNode:
		return errors.New("aliases are not allowed")
	case n.Kind != yaml.ScalarNode:
		return errors.New("only string, number and boolean literals are allowed")
	case n.Anchor != "" || n.Style&yaml.TaggedStyle != 0:
		return errors.New("anchors and tags are not allowed")
	case !elementTags[n.ShortTag()]:
		return fmt.Errorf("unsupported literal %q", n.Value)
	case n.Value == "":
		return errors.New("empty string")
	case n.Style&(yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle) == 0 &&
		!IsIdentifier(n.Value) && !decimalPattern.MatchString(n.Value):
		return fmt.Errorf("unquoted %q must be an identifier or a decimal number", n.Value)
	}
	return nil
}

// Format renders keys back into the list form Parse accepts.
func Format(keys []string) string {
	var b bytes.Buffer
	b.WriteByte('[')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", k)
	}
	b.WriteByte(']')
	return b.String()
}
