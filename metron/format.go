package metron

import (
	"strconv"
	"strings"
)

// FormatValue renders v in the text form ParseValue accepts: the
// shortest exact decimal for the amount, with the culture's decimal
// point, followed immediately by the unit's canonical suffix. The
// default pixel unit has no suffix and auto renders as the bare
// keyword. No whitespace is emitted.
func FormatValue(v Value, c Culture) string {
	if v.Unit == UnitAuto {
		return autoKeyword
	}
	num := strconv.FormatFloat(v.Amount, 'g', -1, 64)
	if c.DecimalSep != '.' {
		num = strings.Replace(num, ".", string(c.DecimalSep), 1)
	}
	return num + v.Unit.suffix()
}
