package domain

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadError_Error(t *testing.T) {
	err := NewLoadError("/data/genome.txt", "no parseable data rows", nil)
	assert.Contains(t, err.Error(), "/data/genome.txt")
	assert.Contains(t, err.Error(), "no parseable data rows")
}

func TestLoadError_Unwrap(t *testing.T) {
	cause := fs.ErrNotExist
	err := NewLoadError("/missing.txt", "cannot open file", cause)

	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "cannot open file")
}

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError("genotype", "must be two alleles", "AGT")
	assert.Contains(t, err.Error(), "genotype")
	assert.Contains(t, err.Error(), "must be two alleles")
}
