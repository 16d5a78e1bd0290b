// Package gen holds the per-block code generators. Each generator reads
// the block's fields, resolves its inputs through the pass evaluator,
// pushes one-time declarations (includes, setup statements, pin claims,
// helper functions) into the pass Context, and returns the fragment the
// block-tree walker splices at the block's position.
package gen

import (
	"sort"

	"sketch-generator/internal/codegen"
)

// Func generates the code fragment for one block.
type Func func(ctx *codegen.Context, b codegen.Block) codegen.Fragment

var byType = map[string]Func{
	"spi_setup":           SPISetup,
	"spi_transfer":        SPITransfer,
	"spi_transfer_return": SPITransferReturn,
}

// ForType returns the generator for a block type.
func ForType(typ string) (Func, bool) {
	f, ok := byType[typ]
	return f, ok
}

// Types lists the supported block types in alphabetical order.
func Types() []string {
	res := make([]string, 0, len(byType))
	for typ := range byType {
		res = append(res, typ)
	}

	sort.Strings(res)

	return res
}
