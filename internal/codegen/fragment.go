package codegen

import "sketch-generator/arduino"

// Fragment is what a block generator hands back to the block-tree walker:
// either a statement block spliced verbatim at the block's position, or an
// expression together with the order it binds at, so the caller can decide
// whether to parenthesize it inside a larger expression.
type Fragment struct {
	Code  string
	Order arduino.Order
	expr  bool
}

// Statement wraps a (possibly empty, possibly multi-line) statement block.
func Statement(code string) Fragment {
	return Fragment{Code: code, Order: arduino.OrderNone}
}

// Expression wraps expression code produced at the given order.
func Expression(code string, order arduino.Order) Fragment {
	return Fragment{Code: code, Order: order, expr: true}
}

// IsExpression reports whether the fragment is an expression rather than a
// statement block.
func (f Fragment) IsExpression() bool {
	return f.expr
}

// AsStatement renders the fragment at statement position: statement blocks
// pass through verbatim, expressions become expression statements.
func (f Fragment) AsStatement() string {
	if !f.expr {
		return f.Code
	}

	if f.Code == "" {
		return ""
	}

	return f.Code + ";\n"
}
