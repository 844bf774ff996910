package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampHoles(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int
	}{
		{"far below", -10, MinHoles},
		{"just below", 15, MinHoles},
		{"minimum", 16, 16},
		{"middle", 48, 48},
		{"maximum", 64, 64},
		{"above", 81, MaxHoles},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClampHoles(tc.in))
		})
	}
}

func TestDefaultConfigs(t *testing.T) {
	sud := DefaultSudokuConfig()
	assert.Equal(t, 48, sud.Holes)
	assert.Greater(t, sud.MaxSteps, 0)
	assert.Greater(t, sud.StartTemp, 0.0)
	assert.Greater(t, sud.CoolingRate, 0.0)
	assert.Less(t, sud.CoolingRate, 1.0)

	q := DefaultQueensConfig()
	assert.Equal(t, 8, q.BoardSize)
	assert.Equal(t, 5, q.Solutions)
	assert.Greater(t, q.MaxSteps, 0)
	assert.Less(t, q.CoolingRate, 1.0)
}
