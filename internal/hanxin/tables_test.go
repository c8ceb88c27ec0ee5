package hanxin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBoundaryCase8 is spec.md §8 boundary case 8: Han Xin numeric
// capacity is exactly 7827 digits at version 84, ECC level 1.
func TestBoundaryCase8(t *testing.T) {
	assert.Equal(t, 7827, NumericCapacity(MaxVersion, ECC1))
}

// TestBoundaryCase9 is spec.md §8 boundary case 9: Han Xin alphanumeric
// (Text-mode) capacity is exactly 4350 characters at version 84, ECC
// level 1.
func TestBoundaryCase9(t *testing.T) {
	assert.Equal(t, 4350, TextCapacity(MaxVersion, ECC1))
}

func TestWidthMatchesInvariant3Formula(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		assert.Equal(t, 23+2*int(v), Width(v))
	}
}

func TestCapacityGrowsMonotonicallyWithVersion(t *testing.T) {
	prevText, prevNum := 0, 0
	for v := MinVersion; v <= MaxVersion; v++ {
		text := TextCapacity(v, ECC1)
		num := NumericCapacity(v, ECC1)
		assert.GreaterOrEqualf(t, text, prevText, "version %d text capacity regressed", v)
		assert.GreaterOrEqualf(t, num, prevNum, "version %d numeric capacity regressed", v)
		prevText, prevNum = text, num
	}
}

func TestHigherECCLevelShrinksCapacity(t *testing.T) {
	v := Version(40)
	assert.Greater(t, TextCapacity(v, ECC1), TextCapacity(v, ECC4))
}
