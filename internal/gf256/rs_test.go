package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// evalAt evaluates the codeword (data followed by parity, highest-order
// term first) at field element x using Horner's rule.
func evalAt(f *Field, codeword []byte, x byte) byte {
	var result byte
	for _, c := range codeword {
		result = f.Mul(result, x) ^ c
	}
	return result
}

func TestEncodeProducesZeroSyndrome(t *testing.T) {
	f := HanXin256
	rapid.Check(t, func(t *rapid.T) {
		nroots := rapid.IntRange(2, 16).Draw(t, "nroots")
		dataLen := rapid.IntRange(1, 200).Draw(t, "dataLen")
		data := rapid.SliceOfN(rapid.Byte(), dataLen, dataLen).Draw(t, "data")

		rs := NewRS(f, nroots)
		parity := rs.Encode(data)
		require.Len(t, parity, nroots)

		codeword := append(append([]byte{}, data...), parity...)
		for i := 0; i < nroots; i++ {
			root := f.Exp(i)
			assert.Zerof(t, evalAt(f, codeword, root), "syndrome at alpha^%d must vanish for a systematic codeword", i)
		}
	})
}

func TestPlanBlocksBalancesParityShare(t *testing.T) {
	// Every block gets totalParity/numBlocks parity symbols, or one more,
	// and no data or parity is lost. PlanBlocks itself does not keep
	// n_i - k_i even (40 over 6 blocks gives 7,7,7,7,6,6); the hanxin
	// package's blockPlans enforces evenness (see its ecc_test.go).
	plans := PlanBlocks(1000, 40, 6)
	require.Len(t, plans, 6)

	totalData, totalParity := 0, 0
	for _, p := range plans {
		parity := p.N - p.K
		assert.GreaterOrEqual(t, parity, 40/6)
		assert.LessOrEqual(t, parity, 40/6+1)
		totalData += p.K
		totalParity += parity
	}
	assert.Equal(t, 1000, totalData)
	assert.Equal(t, 40, totalParity)
}

func TestPlanBlocksSingleBlock(t *testing.T) {
	plans := PlanBlocks(50, 10, 1)
	require.Len(t, plans, 1)
	assert.Equal(t, 50, plans[0].K)
	assert.Equal(t, 60, plans[0].N)
}
