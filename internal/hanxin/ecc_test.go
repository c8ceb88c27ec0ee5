package hanxin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zint-go/zint/internal/gf256"
)

// TestInvariant5BlockPlanIsEven checks spec.md §8 invariant 5: every
// Reed-Solomon block's n_i - k_i is even, so t_i = (n_i-k_i)/2 is a
// whole number of correctable symbols.
func TestInvariant5BlockPlanIsEven(t *testing.T) {
	for v := Version(1); v <= MaxVersion; v += 7 {
		for _, ecc := range []ECCLevel{ECC1, ECC2, ECC3, ECC4} {
			plans := blockPlans(v, ecc)
			require.NotEmpty(t, plans)
			for _, p := range plans {
				diff := p.N - p.K
				assert.Equalf(t, 0, diff%2, "version %d ecc %d: n-k=%d is odd", v, ecc, diff)
			}
		}
	}
}

func TestApplyECCPreservesDataPrefix(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	stream := ApplyECC(data, Version(2), ECC1)
	assert.Greater(t, len(stream), len(data))
	assert.Equal(t, data, stream[:len(data)])
}

func TestSplitRoundRobinDistributesEvenly(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7}
	plans := []gf256.BlockPlan{{K: 3, N: 5}, {K: 2, N: 4}, {K: 2, N: 4}}
	blocks := splitRoundRobin(data, plans)
	require.Len(t, blocks, 3)
	assert.Equal(t, []byte{1, 4, 7}, blocks[0])
	assert.Equal(t, []byte{2, 5}, blocks[1])
	assert.Equal(t, []byte{3, 6}, blocks[2])
}
