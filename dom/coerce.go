package dom

import (
	"fmt"
	"strconv"
)

// DOMString coerces an arbitrary value into a string, following the
// permissive Web-IDL flavor of string conversion: nil becomes "null",
// booleans and numbers their textual form, everything else goes
// through its natural formatting.
func DOMString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprintf("%v", v)
}
