// SPDX-License-Identifier: MIT

package validate

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Empty(t *testing.T) {
	v := New()
	assert.True(t, v.IsValid())
	assert.Empty(t, v.Errors())
	assert.NoError(t, v.Err())
}

func TestValidator_AddError(t *testing.T) {
	v := New()
	v.AddError("Field", "bad value", 42)

	assert.False(t, v.IsValid())
	require.Len(t, v.Errors(), 1)
	assert.Equal(t, "Field", v.Errors()[0].Field)
	assert.Equal(t, 42, v.Errors()[0].Value)
}

func TestValidator_NotEmpty(t *testing.T) {
	cases := []struct {
		name  string
		value string
		valid bool
	}{
		{"value set", "something", true},
		{"empty", "", false},
		{"whitespace only", "   \t", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := New()
			v.NotEmpty("Setting", tc.value)
			assert.Equal(t, tc.valid, v.IsValid())
		})
	}
}

func TestValidator_Required(t *testing.T) {
	v := New()
	v.Required("Config", nil)
	assert.False(t, v.IsValid())

	v = New()
	v.Required("Config", map[string]string{})
	assert.True(t, v.IsValid())
}

func TestValidator_URL(t *testing.T) {
	v := New()
	v.URL("Endpoint", "http://example.com:8088", []string{"http", "https"})
	assert.True(t, v.IsValid())

	v = New()
	v.URL("Endpoint", "ftp://example.com", []string{"http", "https"})
	assert.False(t, v.IsValid())

	v = New()
	v.URL("Endpoint", "", nil)
	assert.False(t, v.IsValid())
}

func TestValidator_PortAndRange(t *testing.T) {
	v := New()
	v.Port("Port", 8088)
	v.Range("Count", 3, 1, 10)
	assert.True(t, v.IsValid())

	v = New()
	v.Port("Port", 0)
	v.Port("Port", 70000)
	v.Range("Count", 11, 1, 10)
	assert.Len(t, v.Errors(), 3)
}

func TestValidator_Directory(t *testing.T) {
	dir := t.TempDir()

	v := New()
	v.Directory("DataDir", dir, false)
	assert.True(t, v.IsValid())

	v = New()
	v.Directory("DataDir", filepath.Join(dir, "missing"), false)
	assert.False(t, v.IsValid())

	v = New()
	v.Directory("DataDir", "", true)
	assert.True(t, v.IsValid())
}

func TestValidationError_Message(t *testing.T) {
	v := New()
	v.AddError("A", "first", nil)
	err := v.Err()
	require.Error(t, err)
	assert.Equal(t, "validation failed for A: first", err.Error())

	v.AddError("B", "second", nil)
	err = v.Err()
	assert.Contains(t, err.Error(), "; ")

	var ve ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Errors(), 2)
}

func TestParseLogLevel(t *testing.T) {
	for _, valid := range []string{"debug", "info", "warn", "error"} {
		level, err := ParseLogLevel(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, level.String())
	}

	_, err := ParseLogLevel("verbose")
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}
