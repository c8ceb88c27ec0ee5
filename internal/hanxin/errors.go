package hanxin

// Error/warning codes specific to the Han Xin encoder, spec.md §4.5.
const (
	ErrTooLongMaxVersion = 541 // no version, even 84, fits the input
	ErrTooLongPinned     = 542 // user-pinned version is too small
	ErrBadECIChar        = 545 // invalid character for the declared ECI
	WarnImplicitShiftJIS = 760 // implicit Shift-JIS conversion without an ECI
	ErrGS1OnNonGS1       = 220 // GS1 mode requested on a non-GS1 symbology
)
