package dice

import (
	"strconv"
	"strings"
)

// String implements fmt.Stringer for RollNumber.
func (n RollNumber) String() string {
	if n.isFloat {
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
	return strconv.Itoa(n.i)
}

// String implements fmt.Stringer for DiceResult: a single value formats as
// itself; several format as "v1, v2, ... = total" or, when a success
// threshold is set, "v1, v2, ... >= T = hits". A result served by the local
// PRNG fallback gets a trailing " [pseudo-random]" marker, per spec §4.1.
func (r *DiceResult) String() string {
	var sb strings.Builder

	switch len(r.Seq) {
	case 0:
		sb.WriteString("0")
	case 1:
		sb.WriteString(strconv.Itoa(r.Seq[0]))
	default:
		vals := make([]string, len(r.Seq))
		for i, v := range r.Seq {
			vals[i] = strconv.Itoa(v)
		}
		sb.WriteString(strings.Join(vals, ", "))
		if r.SuccessThreshold != nil {
			sb.WriteString(" >= ")
			sb.WriteString(strconv.Itoa(*r.SuccessThreshold))
		}
		sb.WriteString(" = ")
		sb.WriteString(strconv.Itoa(r.Aggregate()))
	}

	if !r.TrulyRandom {
		sb.WriteString(" [pseudo-random]")
	}
	return sb.String()
}

// String implements fmt.Stringer for CompoundResult: a single individual
// formats as that individual's own display form; several join with "; "
// and append "; = total", per spec §4.5.
func (c *CompoundResult) String() string {
	if len(c.Individuals) == 1 {
		return c.Individuals[0].String()
	}

	parts := make([]string, len(c.Individuals))
	for i, ind := range c.Individuals {
		parts[i] = ind.String()
	}
	return strings.Join(parts, "; ") + "; = " + c.Total.String()
}
