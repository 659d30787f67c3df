/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package testmodels holds the annotated types shared by package tests.
package testmodels

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/suparena/dynamics/annotation"
)

type Country struct {
	annotation.Object `methods:"string getName(); string getCode(); string getTest(); Country setTest(string test)"`

	ID int `json:"id"`

	// Name of the country.
	// Required: true
	Name string `json:"name" required:"true"`

	Code string `json:"code"`

	// ISO 4217 code, also accepted as currency_code or currency.
	CurrencyCode string `json:"currencyCode" accepts:"['currency_code', 'currency']"`

	Test string `json:"test"`
}

// Describe is a concrete method; dispatch delegates to it untouched.
func (c *Country) Describe() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Code)
}

// Rename is a concrete method returning an error.
func (c *Country) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("name must not be empty")
	}
	c.Name = name
	return nil
}

// Contact exercises formats, date-times and durations during hydration.
type Contact struct {
	Email     string           `json:"email" format:"email" accepts:"[mail, e_mail]"`
	CreatedAt *strfmt.DateTime `json:"createdAt" accepts:"created_at"`
	SeenAt    time.Time        `json:"seenAt" accepts:"seen_at"`
	Timeout   time.Duration    `json:"timeout"`
	Tags      []string         `json:"tags"`
	Internal  string           `json:"-"`
	secret    string
}

// Secret is the unexported value, for assertions.
func (c *Contact) Secret() string {
	return c.secret
}

// HookCounts records type-level hook invocations on Settings.
type HookCounts struct {
	BeforeFirst int
	Before      int
	AfterFirst  int
	After       int
}

// Settings is used through type-level calls. Its hooks count invocations and
// AfterFirstStaticCall upper-cases string values.
type Settings struct {
	annotation.Object `methods:"getLocale; setLocale(locale string); getTimeout; setTimeout(d time.Duration); getRegion"`

	Locale  string        `json:"locale"`
	Timeout time.Duration `json:"timeout"`

	Hooks HookCounts `json:"-"`
}

func (s *Settings) BeforeFirstStaticCall() {
	s.Hooks.BeforeFirst++
}

func (s *Settings) BeforeStaticCall() {
	s.Hooks.Before++
}

func (s *Settings) AfterFirstStaticCall(value any) any {
	s.Hooks.AfterFirst++
	if str, ok := value.(string); ok {
		return strings.ToUpper(str)
	}
	return value
}

func (s *Settings) AfterStaticCall(value any) any {
	s.Hooks.After++
	return value
}

// Plain has no annotations at all.
type Plain struct {
	Value string
}

// Record is embedded by value in Account; its fields are promoted.
type Record struct {
	ID      int    `json:"id" accepts:"[ident, record_id]" required:"true"`
	Created string `json:"created"`
	Label   string `json:"label" accepts:"tag"`
}

// Audit is embedded through a pointer in Account.
type Audit struct {
	Owner string `json:"owner" accepts:"owned_by"`
}

// Account exercises promoted fields. Its own Label shadows Record.Label.
type Account struct {
	annotation.Object `methods:"getId; setId(id int); getOwner; setOwner(owner string); getLabel"`

	Record
	*Audit

	Name  string `json:"name"`
	Label string `json:"label"`
}
