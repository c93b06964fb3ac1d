package personnummer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum_ReferenceVectors(t *testing.T) {
	tests := []struct {
		name   string
		digits [9]int
		want   int
	}{
		{"990913980", [9]int{9, 9, 0, 9, 1, 3, 9, 8, 0}, 1},
		{"990807239", [9]int{9, 9, 0, 8, 0, 7, 2, 3, 9}, 1},
		{"000102239", [9]int{0, 0, 0, 1, 0, 2, 2, 3, 9}, 1},
		{"180101239", [9]int{1, 8, 0, 1, 0, 1, 2, 3, 9}, 2},
		{"120211998", [9]int{1, 2, 0, 2, 1, 1, 9, 9, 8}, 6},
		{"coordination 180161239", [9]int{1, 8, 0, 1, 6, 1, 2, 3, 9}, 9},
		{"all zeros", [9]int{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Checksum(tt.digits))
		})
	}
}

func TestChecksumFor_UsesLastTwoYearDigits(t *testing.T) {
	assert.Equal(t, 1, checksumFor(1899, 9, 13, 980))
	assert.Equal(t, checksumFor(1899, 9, 13, 980), checksumFor(1999, 9, 13, 980))
	assert.Equal(t, 2, checksumFor(2018, 1, 1, 239))
}

func TestChecksum_Deterministic(t *testing.T) {
	digits := [9]int{8, 5, 0, 7, 0, 9, 9, 8, 0}
	first := Checksum(digits)
	for range 10 {
		assert.Equal(t, first, Checksum(digits))
	}
}

func TestChecksum_DetectsSingleDigitMutations(t *testing.T) {
	bases := [][9]int{
		{9, 9, 0, 9, 1, 3, 9, 8, 0},
		{1, 8, 0, 1, 0, 1, 2, 3, 9},
		{0, 0, 0, 1, 0, 2, 2, 3, 9},
	}

	for _, base := range bases {
		want := Checksum(base)
		total, detected := 0, 0
		for pos := range base {
			for d := 0; d <= 9; d++ {
				if d == base[pos] {
					continue
				}
				mutated := base
				mutated[pos] = d
				total++
				if Checksum(mutated) != want {
					detected++
				}
			}
		}
		// Doubling is a bijection on 0-9 after digit reduction, so no single
		// substitution goes unnoticed.
		assert.Equal(t, total, detected, "base %v", base)
		assert.GreaterOrEqual(t, float64(detected)/float64(total), 0.9)
	}
}
