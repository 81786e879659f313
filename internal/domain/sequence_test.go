package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence_Next(t *testing.T) {
	s := NewSequence()
	assert.Equal(t, 1, s.Next())
	assert.Equal(t, 2, s.Next())
	assert.Equal(t, 3, s.Next())
	assert.Equal(t, 3, s.Last())
}

func TestSequence_Advance(t *testing.T) {
	s := NewSequence()
	s.Advance(10)
	assert.Equal(t, 11, s.Next())

	// Advancing below the watermark is a no-op.
	s.Advance(5)
	assert.Equal(t, 12, s.Next())
}
