/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package annotation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// DefaultKeywords are the field tag keys read as annotations by TagScanner.
var DefaultKeywords = []string{"accepts", "required", "format"}

// MethodsKey is the tag key on the Object marker that lists declared accessors.
const MethodsKey = "methods"

// Tag is one key:"value" pair of a struct tag.
type Tag struct {
	Key   string
	Value string
}

// ParseTag splits a struct tag into its pairs in source order. Unlike
// reflect.StructTag.Lookup it keeps repeated keys, so duplicates can be
// reported instead of silently shadowed.
func ParseTag(tag reflect.StructTag) ([]Tag, error) {
	var out []Tag
	s := string(tag)
	for {
		s = strings.TrimLeft(s, " ")
		if s == "" {
			return out, nil
		}

		i := 0
		for i < len(s) && s[i] > ' ' && s[i] != ':' && s[i] != '"' && s[i] != 0x7f {
			i++
		}
		if i == 0 || i+1 >= len(s) || s[i] != ':' || s[i+1] != '"' {
			return nil, fmt.Errorf("malformed struct tag %q", string(tag))
		}
		key := s[:i]
		s = s[i+1:]

		i = 1
		for i < len(s) && s[i] != '"' {
			if s[i] == '\\' {
				i++
			}
			i++
		}
		if i >= len(s) {
			return nil, fmt.Errorf("unterminated value for key %q in struct tag", key)
		}
		value, err := strconv.Unquote(s[:i+1])
		if err != nil {
			return nil, fmt.Errorf("bad value for key %q in struct tag: %w", key, err)
		}
		out = append(out, Tag{Key: key, Value: value})
		s = s[i+1:]
	}
}

// TagScanner reads declarations from struct tags. Field tags whose key is one
// of Keywords become field declarations; every pair on the embedded Object
// marker becomes a class declaration, except "methods" which is expanded into
// one method declaration per signature.
type TagScanner struct {
	// Keywords overrides DefaultKeywords when set.
	Keywords []string
}

// Scan implements Scanner.
func (s TagScanner) Scan(t reflect.Type) ([]Declaration, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("tag scanner: %s is not a struct", t)
	}

	keywords := s.Keywords
	if keywords == nil {
		keywords = DefaultKeywords
	}
	class := ClassName(t)

	var out []Declaration
	for _, sf := range VisibleFields(t) {
		if IsObjectMarker(sf) {
			decls, err := scanMarker(class, sf.Tag)
			if err != nil {
				return nil, err
			}
			out = append(out, decls...)
			continue
		}

		name, ok := FieldName(sf)
		if !ok {
			continue
		}
		tags, err := ParseTag(sf.Tag)
		if err != nil {
			return nil, fmt.Errorf("tag scanner: %s.%s: %w", class, sf.Name, err)
		}
		for _, tag := range tags {
			if !containsFold(keywords, tag.Key) {
				continue
			}
			out = append(out, Declaration{
				Keyword: tag.Key,
				Value:   tag.Value,
				Target:  TargetField,
				Class:   class,
				Member:  name,
			})
		}
	}
	return out, nil
}

func scanMarker(class string, tag reflect.StructTag) ([]Declaration, error) {
	tags, err := ParseTag(tag)
	if err != nil {
		return nil, fmt.Errorf("tag scanner: %s: %w", class, err)
	}

	var out []Declaration
	for _, t := range tags {
		if t.Key != MethodsKey {
			out = append(out, Declaration{Keyword: t.Key, Value: t.Value, Target: TargetClass, Class: class})
			continue
		}
		for _, sig := range SplitSignatures(t.Value) {
			name, err := MethodName(sig)
			if err != nil {
				return nil, fmt.Errorf("tag scanner: %s: %w", class, err)
			}
			out = append(out, Declaration{Keyword: "method", Value: sig, Target: TargetMethod, Class: class, Member: name})
		}
	}
	return out, nil
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
