/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package annotation

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

// Manifest declares annotations for types outside their source, in the same
// "@Keyword value" form used by documentation blocks:
//
//	types:
//	  testmodels.Country:
//	    annotations:
//	      - "@method string getName()"
//	      - "@method Country setTest(string $test)"
//	    fields:
//	      currencyCode:
//	        - '@Accepts [ "currency_code", "currency" ]'
//
// A "@method" line at type level declares an accessor; every other type-level
// line is a class declaration. Types are matched by import path and name, by
// t.String(), or by bare name, in that order.
type Manifest struct {
	Types map[string]TypeManifest `yaml:"types"`
}

// TypeManifest holds the annotation lines of one type.
type TypeManifest struct {
	Annotations []string            `yaml:"annotations"`
	Fields      map[string][]string `yaml:"fields"`
}

var linePattern = regexp.MustCompile(`^@([A-Za-z_][\w-]*)(?:\s+(.*?))?\s*$`)

// ParseLine splits an annotation line into its keyword and raw value.
func ParseLine(line string) (keyword, value string, err error) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", fmt.Errorf("malformed annotation line %q", line)
	}
	return m[1], m[2], nil
}

// ParseManifest decodes a manifest document. Unknown keys are rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return &m, nil
}

// LoadManifest reads and decodes a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return ParseManifest(data)
}

// Names returns the declared type names in sorted order.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.Types))
	for name := range m.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Scan implements Scanner. Types the manifest does not mention yield no declarations.
func (m *Manifest) Scan(t reflect.Type) ([]Declaration, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	class := ClassName(t)
	for _, key := range []string{t.PkgPath() + "." + t.Name(), t.String(), t.Name()} {
		if _, ok := m.Types[key]; ok {
			return m.declarations(key, class)
		}
	}
	return nil, nil
}

// Declarations returns the declarations of the named type.
func (m *Manifest) Declarations(name string) ([]Declaration, error) {
	if _, ok := m.Types[name]; !ok {
		return nil, fmt.Errorf("type %q is not declared in the manifest", name)
	}
	return m.declarations(name, name)
}

func (m *Manifest) declarations(key, class string) ([]Declaration, error) {
	tm := m.Types[key]

	var out []Declaration
	for _, line := range tm.Annotations {
		keyword, value, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("manifest: %s: %w", class, err)
		}
		if keyword != "method" {
			out = append(out, Declaration{Keyword: keyword, Value: value, Target: TargetClass, Class: class})
			continue
		}
		name, err := MethodName(value)
		if err != nil {
			return nil, fmt.Errorf("manifest: %s: %w", class, err)
		}
		out = append(out, Declaration{Keyword: keyword, Value: value, Target: TargetMethod, Class: class, Member: name})
	}

	fields := make([]string, 0, len(tm.Fields))
	for name := range tm.Fields {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	for _, field := range fields {
		for _, line := range tm.Fields[field] {
			keyword, value, err := ParseLine(line)
			if err != nil {
				return nil, fmt.Errorf("manifest: %s.%s: %w", class, field, err)
			}
			out = append(out, Declaration{Keyword: keyword, Value: value, Target: TargetField, Class: class, Member: field})
		}
	}
	return out, nil
}
