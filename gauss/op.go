// SPDX-License-Identifier: MIT

package gauss

// Kind tags the variant of an Op.
type Kind int

const (
	// KindSwap exchanges two rows.
	KindSwap Kind = iota
	// KindNormalize scales the pivot row so the pivot becomes 1.
	KindNormalize
	// KindEliminate subtracts a multiple of the pivot row from a lower row.
	KindEliminate
	// KindContradiction marks a row reading 0 = c with c ≠ 0.
	KindContradiction
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSwap:
		return "swap"
	case KindNormalize:
		return "normalize"
	case KindEliminate:
		return "eliminate"
	case KindContradiction:
		return "contradiction"
	default:
		return "unknown"
	}
}

// Op is one elementary row operation. The set of implementations is closed:
// Swap, Normalize, Elimination and Contradiction. All indices are 0-based.
type Op interface {
	Kind() Kind
	isOp()
}

// Swap exchanges row A (the pivot cursor) with row B (the row holding the pivot).
type Swap struct {
	A, B int
}

// Normalize divides Row, from Column rightward, by Pivot.
type Normalize struct {
	Row    int
	Column int
	Pivot  float64 // pivot value before scaling
}

// Elimination performs Row ← Row − Factor·PivotRow, zeroing Row at Column.
type Elimination struct {
	Row      int
	PivotRow int
	Column   int
	Factor   float64
}

// Coefficient is the multiplier shown in the trace: Row + k·PivotRow, k = −Factor.
func (e Elimination) Coefficient() float64 { return -e.Factor }

// Contradiction marks Row as 0 = Value with Value ≠ 0.
type Contradiction struct {
	Row   int
	Value float64
}

func (Swap) Kind() Kind          { return KindSwap }
func (Normalize) Kind() Kind     { return KindNormalize }
func (Elimination) Kind() Kind   { return KindEliminate }
func (Contradiction) Kind() Kind { return KindContradiction }

func (Swap) isOp()          {}
func (Normalize) isOp()     {}
func (Elimination) isOp()   {}
func (Contradiction) isOp() {}
