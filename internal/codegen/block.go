package codegen

import "sketch-generator/arduino"

// Block is a read-only view of one node of the visual program. Field values
// are fixed configuration chosen in the editor. A field the user left unset
// reports ok=false; there is no in-band "none" sentinel.
type Block interface {
	Type() string
	Field(name string) (value string, ok bool)
}

// Input is sub-expression code together with the order it was produced at.
type Input struct {
	Code  string
	Order arduino.Order
}

// InputSource is implemented by blocks that can resolve their own input
// slots to code.
type InputSource interface {
	Input(name string) (Input, bool)
}

// Evaluator resolves a block input slot to code fitting a splice position
// of the requested order. ok is false when the slot is unconnected.
type Evaluator interface {
	ValueToCode(b Block, input string, want arduino.Order) (code string, ok bool)
}

// InputEval is the stock Evaluator: it reads inputs from blocks
// implementing InputSource and parenthesizes any input that binds weaker
// than the splice position demands.
type InputEval struct{}

func (InputEval) ValueToCode(b Block, input string, want arduino.Order) (string, bool) {
	src, ok := b.(InputSource)
	if !ok {
		return "", false
	}

	in, ok := src.Input(input)
	if !ok || in.Code == "" {
		return "", false
	}

	if !in.Order.Binds(want) {
		return "(" + in.Code + ")", true
	}

	return in.Code, true
}

// SimpleBlock is a map-backed Block used by the driver and in tests.
type SimpleBlock struct {
	Kind   string
	Fields map[string]string
	Inputs map[string]Input
}

func (b *SimpleBlock) Type() string {
	return b.Kind
}

func (b *SimpleBlock) Field(name string) (string, bool) {
	v, ok := b.Fields[name]
	return v, ok
}

func (b *SimpleBlock) Input(name string) (Input, bool) {
	in, ok := b.Inputs[name]
	return in, ok
}
