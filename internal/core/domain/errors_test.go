package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrCatalogLoad", ErrCatalogLoad},
		{"ErrNotAList", ErrNotAList},
		{"ErrStyleNotFound", ErrStyleNotFound},
		{"ErrMalformedEntry", ErrMalformedEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrStyleNotFound, ErrMalformedEntry))
	assert.False(t, errors.Is(ErrNotAList, ErrCatalogLoad))
	assert.False(t, errors.Is(ErrStyleNotFound, ErrNotFound))
}

func TestIsCatalogLoadError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"load failure", ErrCatalogLoad, true},
		{"wrapped load failure", fmt.Errorf("open styles.json: %w", ErrCatalogLoad), true},
		{"not a list", fmt.Errorf("parse: %w", ErrNotAList), true},
		{"style not found", ErrStyleNotFound, false},
		{"malformed entry", ErrMalformedEntry, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCatalogLoadError(tt.err))
		})
	}
}
