package codegen

import (
	"bytes"
	"text/template"

	"sketch-generator/arduino"
	"sketch-generator/internal/boards"
)

// Context carries the whole-program registries one generation pass writes
// into: one-time includes and setup statements, pin claims and generated
// helper functions. The driver owns one Context per pass and resets by
// simply building a fresh one; generators only append.
//
// Keyed registries follow first-insertion-wins-for-ordering,
// last-write-wins-for-content. Promoted setup entries run ahead of all
// non-promoted ones regardless of registration order.
type Context struct {
	Board *boards.Board
	Eval  Evaluator

	includes []entry
	setups   []setupEntry
	claims   []PinClaim
	funcs    []funcEntry
}

type entry struct {
	key  string
	code string
}

type setupEntry struct {
	entry
	runFirst bool
}

type funcEntry struct {
	name string
	body string
}

// PinClaim records one declared use of a physical pin.
type PinClaim struct {
	Pin   string
	Use   arduino.PinUse
	Label string
	Owner string // type of the block that claimed the pin
}

// PinConflict is a pin claimed under two different usage categories.
type PinConflict struct {
	Pin    string
	First  PinClaim
	Second PinClaim
}

// NewContext builds an empty context for one generation pass.
func NewContext(board *boards.Board, eval Evaluator) *Context {
	return &Context{Board: board, Eval: eval}
}

// AddInclude registers a one-time include line under a stable key.
func (c *Context) AddInclude(key, code string) {
	for i := range c.includes {
		if c.includes[i].key == key {
			c.includes[i].code = code
			return
		}
	}

	c.includes = append(c.includes, entry{key: key, code: code})
}

// AddSetup registers a one-time setup statement under a stable key.
// runFirst asks for the statement to run ahead of non-promoted entries. A
// repeat key keeps the position and promotion of its first registration and
// takes the latest code.
func (c *Context) AddSetup(key, code string, runFirst bool) {
	for i := range c.setups {
		if c.setups[i].key == key {
			c.setups[i].code = code
			return
		}
	}

	c.setups = append(c.setups, setupEntry{entry: entry{key: key, code: code}, runFirst: runFirst})
}

// AddFunction registers a helper function and returns the name callers must
// use. body is a text/template with {{.func}} bound to the allocated name.
// A suggested name is registered once: repeat registrations return the
// existing name and keep the first body.
func (c *Context) AddFunction(suggested, body string) string {
	for _, f := range c.funcs {
		if f.name == suggested {
			return f.name
		}
	}

	c.funcs = append(c.funcs, funcEntry{name: suggested, body: renderFunc(suggested, body)})

	return suggested
}

func renderFunc(name, body string) string {
	tmpl, err := template.New("func").Parse(body)
	if err != nil {
		panic(err)
	}

	var buf bytes.Buffer

	err = tmpl.Execute(&buf, map[string]any{"func": name})
	if err != nil {
		panic(err)
	}

	return buf.String()
}

// ReservePin declares that block b uses pin under the given category.
// Generators declare every pin they touch on every call; conflicting claims
// are collected here and surfaced by the driver, never by generators.
func (c *Context) ReservePin(b Block, pin string, use arduino.PinUse, label string) {
	c.claims = append(c.claims, PinClaim{Pin: pin, Use: use, Label: label, Owner: b.Type()})
}

// ValueToCode resolves a block input to code at the requested order. ok is
// false when the slot is unconnected.
func (c *Context) ValueToCode(b Block, input string, want arduino.Order) (string, bool) {
	if c.Eval == nil {
		return "", false
	}

	return c.Eval.ValueToCode(b, input, want)
}

// Includes returns the registered include lines in registration order.
func (c *Context) Includes() []string {
	res := make([]string, len(c.includes))
	for i, e := range c.includes {
		res[i] = e.code
	}

	return res
}

// Setup returns the registered setup statements: promoted entries first,
// otherwise in registration order.
func (c *Context) Setup() []string {
	res := make([]string, 0, len(c.setups))

	for _, s := range c.setups {
		if s.runFirst {
			res = append(res, s.code)
		}
	}

	for _, s := range c.setups {
		if !s.runFirst {
			res = append(res, s.code)
		}
	}

	return res
}

// Functions returns the rendered helper functions in registration order.
func (c *Context) Functions() []string {
	res := make([]string, len(c.funcs))
	for i, f := range c.funcs {
		res[i] = f.body
	}

	return res
}

// Claims returns every pin claim in declaration order.
func (c *Context) Claims() []PinClaim {
	return c.claims
}

// Conflicts returns one conflict per claim that disagrees with the first
// claim on the same pin.
func (c *Context) Conflicts() []PinConflict {
	first := map[string]PinClaim{}

	var res []PinConflict

	for _, cl := range c.claims {
		prev, seen := first[cl.Pin]
		if !seen {
			first[cl.Pin] = cl
			continue
		}

		if prev.Use != cl.Use {
			res = append(res, PinConflict{Pin: cl.Pin, First: prev, Second: cl})
		}
	}

	return res
}
