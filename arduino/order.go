// Package arduino holds the Arduino C vocabulary shared by the block
// generators: expression binding strength and pin usage categories.
package arduino

//go:generate go tool stringer -type=Order -output=order_string.go

// Order is the binding strength of a generated C expression, tightest
// first. An expression travels with the order it was produced at; the
// splice position demands an order, and the two are compared to decide
// whether parentheses are needed.
type Order int

const (
	OrderAtomic         Order = iota // literals, identifiers, calls
	OrderUnaryPostfix                // expr++ expr-- [] . ->
	OrderUnaryPrefix                 // -expr !expr ~expr ++expr --expr
	OrderMultiplicative              // * / %
	OrderAdditive                    // + -
	OrderShift                       // << >>
	OrderRelational                  // < <= > >=
	OrderEquality                    // == !=
	OrderBitwiseAnd                  // &
	OrderBitwiseXor                  // ^
	OrderBitwiseOr                   // |
	OrderLogicalAnd                  // &&
	OrderLogicalOr                   // ||
	OrderConditional                 // ?:
	OrderAssignment                  // = += -= *= /=
	OrderComma                       // ,
	OrderNone                        // unordered splice position, never parenthesized
)

// Binds reports whether an expression produced at order o can sit in a
// position demanding order want without parentheses.
func (o Order) Binds(want Order) bool {
	if want == OrderNone {
		return true
	}

	return o <= want
}
