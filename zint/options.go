package zint

// Symbology identifies which encoder a Symbol drives. spec.md §1 scopes
// the core to GS1 linting and Han Xin encoding, with Code 49 and the
// composite driver covered only at their interfaces; this tagged
// variant stands in for the "one per supported symbology" set spec.md
// §3 describes, restricted to what this module implements.
type Symbology int

const (
	SymbologyHanXin Symbology = iota
	SymbologyCode49
	SymbologyGS1Composite
)

// InputMode is the bitset spec.md §3/§6 calls input_mode.
type InputMode uint32

const (
	ModeData InputMode = 1 << iota
	ModeUnicode
	ModeGS1
	ModeEscape
	ModeExtraEscape
	ModeFast
	ModeGS1Parens
	ModeGS1NoCheck
	ModeHeightPerRow
)

func (m InputMode) has(flag InputMode) bool { return m&flag != 0 }

// OutputOptions is the bitset spec.md §6 calls "Output options",
// carried on the Symbol for renderers to interpret. The core reads only
// OutGS1GSSeparator (FNC1 separators in the composite 2-D payload) and
// OutNoQuietZones (RenderHints.QuietZone).
type OutputOptions uint32

const (
	OutBind OutputOptions = 1 << iota
	OutBindTop
	OutBox
	OutStdout
	OutReaderInit
	OutSmallText
	OutBoldText
	OutCMYKColour
	OutDotty
	OutGS1GSSeparator
	OutQuietZones
	OutNoQuietZones
	OutCompliantHeight
)

func (o OutputOptions) has(flag OutputOptions) bool { return o&flag != 0 }
