package elementary

import "fmt"

// Rule is the truth table of an elementary automaton, indexed by the
// neighbourhood pattern left<<2 | center<<1 | right.
type Rule [8]uint8

// Rule30 is Wolfram's rule 30: live for patterns 001, 010, 011 and 100.
var Rule30 = FromCode(30)

// FromCode expands a Wolfram code into its truth table.
func FromCode(code uint8) Rule {
	var r Rule
	for idx := range r {
		r[idx] = (code >> idx) & 1
	}
	return r
}

// Code packs the truth table back into its Wolfram code. Entries other than
// 0 count as live.
func (r Rule) Code() uint8 {
	var code uint8
	for idx, v := range r {
		if v != 0 {
			code |= 1 << idx
		}
	}
	return code
}

// Apply returns the next state of a cell given its neighbourhood.
func (r Rule) Apply(left, center, right uint8) uint8 {
	idx := (left&1)<<2 | (center&1)<<1 | right&1
	if r[idx] != 0 {
		return 1
	}
	return 0
}

func (r Rule) String() string { return fmt.Sprintf("rule %d", r.Code()) }
