/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/dynamics/internal/testmodels"
)

func TestParseAccessor(t *testing.T) {
	tests := []struct {
		name string
		want Accessor
	}{
		{name: "getName", want: Accessor{Method: "getName", Verb: VerbGet, Field: "name"}},
		{name: "setTest", want: Accessor{Method: "setTest", Verb: VerbSet, Field: "test"}},
		{name: "getCurrencyCode", want: Accessor{Method: "getCurrencyCode", Verb: VerbGet, Field: "currencyCode"}},
		{name: "get", want: Accessor{Method: "get", Verb: VerbGet, Field: ""}},
		{name: "fooBar", want: Accessor{Method: "fooBar"}},
		{name: "GetName", want: Accessor{Method: "GetName"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAccessor(tt.name))
		})
	}
	assert.Equal(t, "unknown", VerbUnknown.String())
}

func TestFieldAssign(t *testing.T) {
	reg := New()
	entry, err := For[testmodels.Contact](reg)
	require.NoError(t, err)

	contact := &testmodels.Contact{}
	target := reflect.ValueOf(contact).Elem()

	field := func(name string) *Field {
		f, ok := entry.Field(name)
		require.True(t, ok, name)
		return f
	}

	t.Run("DateTimeFromString", func(t *testing.T) {
		require.NoError(t, field("createdAt").Assign(target, "2024-03-01T10:00:00Z"))
		require.NotNil(t, contact.CreatedAt)
		assert.Equal(t, "2024-03-01T10:00:00.000Z", contact.CreatedAt.String())
	})

	t.Run("TimeFromString", func(t *testing.T) {
		require.NoError(t, field("seenAt").Assign(target, "2024-03-02T08:30:00Z"))
		assert.Equal(t, time.Date(2024, 3, 2, 8, 30, 0, 0, time.UTC), contact.SeenAt.UTC())
	})

	t.Run("DurationFromString", func(t *testing.T) {
		require.NoError(t, field("timeout").Assign(target, "1m30s"))
		assert.Equal(t, 90*time.Second, contact.Timeout)
	})

	t.Run("SliceFromInterfaces", func(t *testing.T) {
		require.NoError(t, field("tags").Assign(target, []any{"a", "b"}))
		assert.Equal(t, []string{"a", "b"}, contact.Tags)
	})

	t.Run("NilResets", func(t *testing.T) {
		require.NoError(t, field("tags").Assign(target, nil))
		assert.Nil(t, contact.Tags)
	})

	t.Run("Unconvertible", func(t *testing.T) {
		err := field("timeout").Assign(target, "soon")
		assert.Error(t, err)
	})
}

func TestFieldAssignNumbers(t *testing.T) {
	reg := New()
	entry, err := For[testmodels.Country](reg)
	require.NoError(t, err)

	country := &testmodels.Country{}
	target := reflect.ValueOf(country).Elem()
	id, _ := entry.Field("id")

	require.NoError(t, id.Assign(target, float64(249)))
	assert.Equal(t, 249, country.ID)

	require.NoError(t, id.Assign(target, 7))
	assert.Equal(t, 7, country.ID)

	assert.Error(t, id.Assign(target, "249"))
}

func TestFieldWithoutStorage(t *testing.T) {
	f := &Field{Name: "ghost"}
	_, err := f.Get(reflect.ValueOf(&testmodels.Plain{}).Elem())
	assert.Error(t, err)
}
