// Package program loads the block program description fed to the
// generators: a target board plus an ordered list of loop blocks with
// their field values and input expressions.
package program

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"sketch-generator/arduino"
	"sketch-generator/internal/codegen"
	"sketch-generator/internal/gen"
)

// BlockSpec describes one block of the program. Inputs are raw C
// expressions treated as atomic; anything weaker must come parenthesized.
type BlockSpec struct {
	Type   string            `yaml:"type"`
	Fields map[string]string `yaml:"fields"`
	Inputs map[string]string `yaml:"inputs"`
}

// Program is a flat block program: every loop block is generated once, in
// order, into the sketch's loop body.
type Program struct {
	Board string      `yaml:"board"`
	Loop  []BlockSpec `yaml:"loop"`
}

// Load reads a program description, rejecting unknown fields and block
// types the generator table does not know.
func Load(r io.Reader) (*Program, error) {
	var p Program

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("program: decode: %w", err)
	}

	for i, bs := range p.Loop {
		if _, ok := gen.ForType(bs.Type); !ok {
			return nil, fmt.Errorf("program: loop block %d: unknown type %q (supported: %s)",
				i, bs.Type, strings.Join(gen.Types(), ", "))
		}
	}

	return &p, nil
}

// LoadFromFile reads a program description from path.
func LoadFromFile(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("program: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Block converts the description into the generator-facing block model.
func (bs BlockSpec) Block() *codegen.SimpleBlock {
	b := &codegen.SimpleBlock{Kind: bs.Type, Fields: bs.Fields, Inputs: map[string]codegen.Input{}}
	for name, code := range bs.Inputs {
		b.Inputs[name] = codegen.Input{Code: code, Order: arduino.OrderAtomic}
	}

	return b
}

// Generate runs every loop block through its generator against ctx and
// returns the assembled loop body.
func (p *Program) Generate(ctx *codegen.Context) (string, error) {
	var loop strings.Builder

	for i, bs := range p.Loop {
		f, ok := gen.ForType(bs.Type)
		if !ok {
			return "", fmt.Errorf("program: loop block %d: unknown type %q", i, bs.Type)
		}

		loop.WriteString(f(ctx, bs.Block()).AsStatement())
	}

	return loop.String(), nil
}
