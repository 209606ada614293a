// Package plot models the variables emitted to plotting output: a
// symbol, a description and the plotted values at a fixed precision.
package plot

// Field budgets for stored variables. Longer text is cut, not rejected.
const (
	MaxSymbolChars      = 256
	MaxDescriptionChars = 1024
)

// Variable is one plotted variable.
type Variable struct {
	Symbol      string
	Description string
	Values      Values
}

// NewVariable builds a variable, truncating over-long symbol and
// description text to their field budgets.
func NewVariable(symbol, description string, values Values) Variable {
	return Variable{
		Symbol:      Truncate(symbol, MaxSymbolChars),
		Description: Truncate(description, MaxDescriptionChars),
		Values:      values,
	}
}

// Truncate caps s strictly below chars bytes.
func Truncate(s string, chars int) string {
	if len(s) >= chars {
		return s[:chars-1]
	}
	return s
}
