package gen

import (
	"strings"

	"sketch-generator/arduino"
	"sketch-generator/internal/codegen"
	"sketch-generator/internal/ir"
)

// Field and input names of the SPI blocks.
const (
	spiFieldShiftOrder = "SPI_SHIFT_ORDER"
	spiFieldMode       = "SPI_MODE"
	spiFieldClockDiv   = "SPI_CLOCK_DIVIDE"
	spiFieldSS         = "SPI_SS"
	spiInputData       = "SPI_DATA"
)

// spiReturnVar accumulates the received byte inside a synthesized helper.
const spiReturnVar = "spiReturn"

// SPISetup emits the one-time bus configuration: bit order, data mode and
// clock divider, followed by the bus start. All registry keys are stable,
// so a repeated setup block overwrites the earlier statements instead of
// duplicating them, and the per-loop contribution is always empty.
func SPISetup(ctx *codegen.Context, b codegen.Block) codegen.Fragment {
	shift, _ := b.Field(spiFieldShiftOrder)
	mode, _ := b.Field(spiFieldMode)
	div, _ := b.Field(spiFieldClockDiv)
	bus := ctx.Board.SPIBus

	ctx.AddInclude("spi", "#include <SPI.h>")
	ctx.AddSetup("spi_order", bus+".setBitOrder("+shift+");", false)
	ctx.AddSetup("spi_mode", bus+".setDataMode("+mode+");", false)
	ctx.AddSetup("spi_div", bus+".setClockDivider("+div+");", false)
	ctx.AddSetup("spi_begin", bus+".begin();", false)

	return codegen.Statement("")
}

// SPITransfer emits one bus transfer, pulsing the slave select line around
// it when the block names one. An unconnected data input sends a zero.
func SPITransfer(ctx *codegen.Context, b codegen.Block) codegen.Fragment {
	return codegen.Statement(spiTransfer(ctx, b).String())
}

// spiTransfer registers the declarations shared by both transfer blocks
// and builds the transfer statement sequence.
func spiTransfer(ctx *codegen.Context, b codegen.Block) ir.Seq {
	bus := ctx.Board.SPIBus

	// The bus must come up even when the program has no setup block, so the
	// start call is promoted ahead of non-promoted setup statements.
	ctx.AddInclude("spi", "#include <SPI.h>")
	ctx.AddSetup("spi_begin", bus+".begin();", true)

	for _, rp := range ctx.Board.SPIPins {
		ctx.ReservePin(b, rp.Pin, arduino.UseSPI, bus+" "+rp.Role)
	}

	ss, hasSS := b.Field(spiFieldSS)
	if hasSS {
		ctx.ReservePin(b, ss, arduino.UseOutput, "SPI slave select")
		ctx.AddSetup("io_"+ss, "pinMode("+ss+", OUTPUT);", false)
	}

	data, ok := ctx.ValueToCode(b, spiInputData, arduino.OrderAtomic)
	if !ok {
		data = "0"
	}

	var seq ir.Seq

	if hasSS {
		seq = append(seq, ir.Stmt{Text: "digitalWrite(" + ss + ", HIGH);"})
	}

	seq = append(seq, ir.Call(bus+".transfer("+data+")"))

	if hasSS {
		seq = append(seq, ir.Stmt{Text: "digitalWrite(" + ss + ", LOW);"})
	}

	return seq
}

// SPITransferReturn emits a transfer whose received value is used as an
// expression. Without a slave select the transfer call itself is the
// expression. With one, the select/transfer/deselect sequence is wrapped
// into a helper function that captures the received value, and the
// expression is a call to it. The helper is keyed by the slave select pin,
// so blocks sharing a pin share one helper.
func SPITransferReturn(ctx *codegen.Context, b codegen.Block) codegen.Fragment {
	seq := spiTransfer(ctx, b)

	ss, hasSS := b.Field(spiFieldSS)
	if !hasSS {
		expr, ok := seq.CallExpr()
		if !ok {
			panic("gen: spi transfer sequence carries no transfer call")
		}

		return codegen.Expression(expr, arduino.OrderAtomic)
	}

	captured, ok := seq.AssignCall(spiReturnVar)
	if !ok {
		panic("gen: spi transfer sequence carries no transfer call")
	}

	body := ir.Seq{{Text: "int {{.func}}() {"}, {Text: "  int " + spiReturnVar + " = 0;"}}
	body = append(body, captured.Indent("  ")...)
	body = append(body, ir.Stmt{Text: "  return " + spiReturnVar + ";"}, ir.Stmt{Text: "}"})

	name := ctx.AddFunction("spiReturnSlaveSelect"+ss, strings.TrimSuffix(body.String(), "\n"))

	return codegen.Expression(name+"()", arduino.OrderUnaryPostfix)
}
