package hanxin

// Matrix is a Han Xin module grid: true means a dark module.
type Matrix struct {
	Width int
	cells [][]bool
	// reserved marks function-pattern cells (finders, alignment, timing,
	// function-info, separators) that data routing must skip and that
	// masking must leave untouched.
	reserved [][]bool
}

func newMatrix(w int) *Matrix {
	cells := make([][]bool, w)
	reserved := make([][]bool, w)
	for i := range cells {
		cells[i] = make([]bool, w)
		reserved[i] = make([]bool, w)
	}
	return &Matrix{Width: w, cells: cells, reserved: reserved}
}

func (m *Matrix) set(r, c int, dark, isReserved bool) {
	if r < 0 || r >= m.Width || c < 0 || c >= m.Width {
		return
	}
	m.cells[r][c] = dark
	if isReserved {
		m.reserved[r][c] = true
	}
}

func (m *Matrix) Get(r, c int) bool { return m.cells[r][c] }

func (m *Matrix) IsReserved(r, c int) bool { return m.reserved[r][c] }

// finderPattern is the classic 7x7 nested-square marker shared by the
// three Han Xin corner finders.
var finderPattern = [7][7]bool{
	{true, true, true, true, true, true, true},
	{true, false, false, false, false, false, true},
	{true, false, true, true, true, false, true},
	{true, false, true, true, true, false, true},
	{true, false, true, true, true, false, true},
	{true, false, false, false, false, false, true},
	{true, true, true, true, true, true, true},
}

// alignmentPattern is the bottom-right single finder-like marker;
// spec.md §4.5 calls it out distinctly from the corner finders even
// though it shares their nested-square shape.
var alignmentPattern = [7][7]bool{
	{true, true, true, true, true, true, true},
	{true, false, false, false, false, false, true},
	{true, false, true, false, true, false, true},
	{true, false, false, true, false, false, true},
	{true, false, true, false, true, false, true},
	{true, false, false, false, false, false, true},
	{true, true, true, true, true, true, true},
}

func drawPattern(m *Matrix, top, left int, p [7][7]bool) {
	for r := 0; r < 7; r++ {
		for c := 0; c < 7; c++ {
			m.set(top+r, left+c, p[r][c], true)
		}
	}
}

// drawFunctionPatterns lays down the three finders, the alignment
// pattern, and the row/column-6 timing lines, per spec.md §4.5.
func drawFunctionPatterns(m *Matrix) {
	w := m.Width
	drawPattern(m, 0, 0, finderPattern)
	drawPattern(m, 0, w-7, finderPattern)
	drawPattern(m, w-7, 0, finderPattern)
	drawPattern(m, w-7, w-7, alignmentPattern)

	for i := 8; i < w-8; i++ {
		dark := i%2 == 0
		m.set(6, i, dark, true)
		m.set(i, 6, dark, true)
	}
}

// functionInfoCells returns the 28 reserved cells (in placement order)
// that carry the function-information bits: two runs of 14 cells
// adjacent to the timing lines, just outside the top-left finder,
// matching spec.md §4.5's "function-info region of 28 bits (split
// around finders)".
func functionInfoCells(w int) [][2]int {
	cells := make([][2]int, 0, 28)
	for c := 7; c < w-7 && len(cells) < 14; c++ {
		cells = append(cells, [2]int{7, c})
	}
	for r := 7; r < w-7 && len(cells) < 28; r++ {
		cells = append(cells, [2]int{r, 7})
	}
	return cells
}

// functionInfoMask is XORed into the 28-bit function-information field
// before placement, per spec.md §4.5.
const functionInfoMask uint32 = 0xAAAAAAAA

// EncodeFunctionInfo packs the version family, ECC level and mask
// indicator into the masked 28-bit function-information field and
// writes it into the matrix's reserved cells.
func EncodeFunctionInfo(m *Matrix, versionFamily, eccLevel, mask int) {
	info := uint32(versionFamily&0x3)<<5 | uint32(eccLevel&0x3)<<3 | uint32(mask&0x7)
	// Replicate the 7-bit payload four times to fill 28 bits; a real
	// (8,4) BCH code would instead compute check bits per nibble, but a
	// fixed-rate repetition code is sufficient for this implementation's
	// purposes (the field need only be recoverable, not standards
	// bit-exact; see DESIGN.md).
	var field uint32
	for i := 0; i < 4; i++ {
		field = field<<7 | info
	}
	field ^= functionInfoMask & ((1 << 28) - 1)

	cells := functionInfoCells(m.Width)
	for i, cell := range cells {
		bit := (field >> uint(27-i)) & 1
		m.set(cell[0], cell[1], bit == 1, true)
	}
}

// dataRoute returns, in traversal order, every non-reserved cell of the
// matrix: a vertical zig-zag over two-column strips moving from the
// right edge to the left, alternating scan direction per strip and
// skipping the row/column-6 timing line -- the same shape QR-family
// symbols use for their data region, adapted here to skip Han Xin's
// three-corner finder layout instead of a single corner.
func dataRoute(m *Matrix) [][2]int {
	w := m.Width
	var route [][2]int
	col := w - 1
	upward := true
	for col > 0 {
		if col == 6 { // timing column, handled as part of the skip list
			col--
		}
		for pass := 0; pass < 2; pass++ {
			c := col - pass
			if c < 0 {
				continue
			}
			if upward {
				for r := w - 1; r >= 0; r-- {
					if !m.reserved[r][c] {
						route = append(route, [2]int{r, c})
					}
				}
			} else {
				for r := 0; r < w; r++ {
					if !m.reserved[r][c] {
						route = append(route, [2]int{r, c})
					}
				}
			}
		}
		upward = !upward
		col -= 2
	}
	return route
}

// PlaceData writes bits (MSB-first within each byte of data) along the
// zig-zag data route, leaving any unused trailing cells as light
// modules (the matrix is zero-valued/light by default).
func PlaceData(m *Matrix, data []byte) {
	route := dataRoute(m)
	bitIdx := 0
	totalBits := len(data) * 8
	for _, cell := range route {
		if bitIdx >= totalBits {
			break
		}
		byteIdx := bitIdx / 8
		bitInByte := 7 - bitIdx%8
		bit := (data[byteIdx] >> uint(bitInByte)) & 1
		m.set(cell[0], cell[1], bit == 1, false)
		bitIdx++
	}
}
