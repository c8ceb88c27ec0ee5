package hanxin

import "github.com/zint-go/zint/internal/gf256"

// blockPlans returns the Reed-Solomon block layout for a version/ECC
// combination: spec.md §4.5's "fixed table [that] gives: total
// codewords, number of ECC blocks B, and (k_i, n_i) for each block".
// Parity is kept equal per block (and even, so every block's t_i =
// (n_i-k_i)/2 is an integer, spec.md §8 invariant 5) while data is
// distributed round-robin, letting data-block sizes differ by at most
// one codeword as spec.md §3 allows.
func blockPlans(v Version, ecc ECCLevel) []gf256.BlockPlan {
	totalData := DataCodewordBudget(v, ecc)
	numBlocks := NumBlocks(v, ecc)
	parityPerBlock := ParityCodewordBudget(v, ecc) / numBlocks
	parityPerBlock &^= 1 // force even
	if parityPerBlock < 2 {
		parityPerBlock = 2
	}
	return gf256.PlanBlocks(totalData, parityPerBlock*numBlocks, numBlocks)
}

// splitRoundRobin distributes data's bytes across len(plans) blocks one
// byte at a time, skipping any block that has already reached its
// K-codeword capacity, matching spec.md §4.5's "split round-robin into
// B blocks".
func splitRoundRobin(data []byte, plans []gf256.BlockPlan) [][]byte {
	blocks := make([][]byte, len(plans))
	for i, p := range plans {
		blocks[i] = make([]byte, 0, p.K)
	}
	b := 0
	for _, d := range data {
		for len(blocks[b]) >= plans[b].K {
			b = (b + 1) % len(plans)
		}
		blocks[b] = append(blocks[b], d)
		b = (b + 1) % len(plans)
	}
	return blocks
}

// encodeBlocks runs RS over each block and returns the per-block parity
// codewords alongside the original data blocks.
func encodeBlocks(blocks [][]byte, plans []gf256.BlockPlan) [][]byte {
	parity := make([][]byte, len(blocks))
	for i, blk := range blocks {
		nroots := plans[i].N - plans[i].K
		rs := gf256.NewRS(gf256.HanXin256, nroots)
		parity[i] = rs.Encode(blk)
	}
	return parity
}

// interleaveColumnMajor reassembles the final codeword stream: data
// columns across all blocks first, then ECC columns across all blocks,
// per spec.md §4.5 ("the final stream is reassembled column-major
// across blocks (data first, then ECC)").
func interleaveColumnMajor(dataBlocks, parityBlocks [][]byte) []byte {
	var out []byte
	maxK := 0
	for _, b := range dataBlocks {
		if len(b) > maxK {
			maxK = len(b)
		}
	}
	for c := 0; c < maxK; c++ {
		for _, b := range dataBlocks {
			if c < len(b) {
				out = append(out, b[c])
			}
		}
	}
	maxP := 0
	for _, b := range parityBlocks {
		if len(b) > maxP {
			maxP = len(b)
		}
	}
	for c := 0; c < maxP; c++ {
		for _, b := range parityBlocks {
			if c < len(b) {
				out = append(out, b[c])
			}
		}
	}
	return out
}

// ApplyECC packs data through the version/ECC level's block plan and
// returns the reassembled data+parity codeword stream ready for module
// placement.
func ApplyECC(data []byte, v Version, ecc ECCLevel) []byte {
	plans := blockPlans(v, ecc)
	dataBlocks := splitRoundRobin(data, plans)
	parityBlocks := encodeBlocks(dataBlocks, plans)
	return interleaveColumnMajor(dataBlocks, parityBlocks)
}
