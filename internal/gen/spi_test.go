package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketch-generator/arduino"
	"sketch-generator/internal/boards"
	"sketch-generator/internal/codegen"
	"sketch-generator/internal/gen"
)

func newContext(t *testing.T, board string) *codegen.Context {
	t.Helper()

	b, err := boards.ByName(board)
	require.NoError(t, err)

	return codegen.NewContext(b, codegen.InputEval{})
}

func setupBlock(shift, mode, div string) *codegen.SimpleBlock {
	return &codegen.SimpleBlock{
		Kind: "spi_setup",
		Fields: map[string]string{
			"SPI_SHIFT_ORDER":  shift,
			"SPI_MODE":         mode,
			"SPI_CLOCK_DIVIDE": div,
		},
	}
}

func transferBlock(kind, ss, data string) *codegen.SimpleBlock {
	b := &codegen.SimpleBlock{Kind: kind, Fields: map[string]string{}, Inputs: map[string]codegen.Input{}}
	if ss != "" {
		b.Fields["SPI_SS"] = ss
	}

	if data != "" {
		b.Inputs["SPI_DATA"] = codegen.Input{Code: data, Order: arduino.OrderAtomic}
	}

	return b
}

func TestSPISetup(t *testing.T) {
	ctx := newContext(t, "uno")

	frag := gen.SPISetup(ctx, setupBlock("MSBFIRST", "SPI_MODE0", "SPI_CLOCK_DIV16"))

	assert.False(t, frag.IsExpression())
	assert.Equal(t, "", frag.AsStatement())
	assert.Equal(t, []string{"#include <SPI.h>"}, ctx.Includes())
	assert.Equal(t, []string{
		"SPI.setBitOrder(MSBFIRST);",
		"SPI.setDataMode(SPI_MODE0);",
		"SPI.setClockDivider(SPI_CLOCK_DIV16);",
		"SPI.begin();",
	}, ctx.Setup())
	assert.Empty(t, ctx.Claims())
}

func TestSPISetup_Idempotent(t *testing.T) {
	ctx := newContext(t, "uno")
	b := setupBlock("LSBFIRST", "SPI_MODE2", "SPI_CLOCK_DIV8")

	gen.SPISetup(ctx, b)
	once := append([]string{}, ctx.Setup()...)
	gen.SPISetup(ctx, b)

	assert.Equal(t, once, ctx.Setup())
	assert.Equal(t, []string{"#include <SPI.h>"}, ctx.Includes())
}

func TestSPISetup_LastWriterWins(t *testing.T) {
	ctx := newContext(t, "uno")

	gen.SPISetup(ctx, setupBlock("MSBFIRST", "SPI_MODE0", "SPI_CLOCK_DIV4"))
	gen.SPISetup(ctx, setupBlock("MSBFIRST", "SPI_MODE0", "SPI_CLOCK_DIV64"))

	setup := ctx.Setup()
	require.Len(t, setup, 4)
	assert.Equal(t, "SPI.setClockDivider(SPI_CLOCK_DIV64);", setup[2])
}

func TestSPITransfer_WithSlaveSelect(t *testing.T) {
	ctx := newContext(t, "uno")

	frag := gen.SPITransfer(ctx, transferBlock("spi_transfer", "8", "someVar"))

	assert.Equal(t, "digitalWrite(8, HIGH);\nSPI.transfer(someVar);\ndigitalWrite(8, LOW);\n", frag.AsStatement())
	assert.Equal(t, []string{"SPI.begin();", "pinMode(8, OUTPUT);"}, ctx.Setup())

	claims := ctx.Claims()
	require.Len(t, claims, 4)
	assert.Equal(t, codegen.PinClaim{Pin: "13", Use: arduino.UseSPI, Label: "SPI SCK", Owner: "spi_transfer"}, claims[0])
	assert.Equal(t, codegen.PinClaim{Pin: "12", Use: arduino.UseSPI, Label: "SPI MISO", Owner: "spi_transfer"}, claims[1])
	assert.Equal(t, codegen.PinClaim{Pin: "11", Use: arduino.UseSPI, Label: "SPI MOSI", Owner: "spi_transfer"}, claims[2])
	assert.Equal(t, codegen.PinClaim{Pin: "8", Use: arduino.UseOutput, Label: "SPI slave select", Owner: "spi_transfer"}, claims[3])
	assert.Empty(t, ctx.Conflicts())
}

func TestSPITransfer_NoSlaveSelect_UnconnectedData(t *testing.T) {
	ctx := newContext(t, "uno")

	frag := gen.SPITransfer(ctx, transferBlock("spi_transfer", "", ""))

	// a single line sending the zero literal, no pulses
	assert.Equal(t, "SPI.transfer(0);\n", frag.AsStatement())
	// no pin-mode setup beyond the promoted bus start
	assert.Equal(t, []string{"SPI.begin();"}, ctx.Setup())
	assert.Len(t, ctx.Claims(), 3)
}

func TestSPITransfer_ReservesBoardPins(t *testing.T) {
	for _, name := range boards.Names() {
		t.Run(name, func(t *testing.T) {
			ctx := newContext(t, name)

			gen.SPITransfer(ctx, transferBlock("spi_transfer", "", "someVar"))

			claims := ctx.Claims()
			require.Len(t, claims, len(ctx.Board.SPIPins))

			for i, rp := range ctx.Board.SPIPins {
				assert.Equal(t, rp.Pin, claims[i].Pin)
				assert.Equal(t, arduino.UseSPI, claims[i].Use)
			}
		})
	}
}

func TestSPITransfer_DistinctSlaveSelectsGetOwnSetup(t *testing.T) {
	ctx := newContext(t, "uno")

	gen.SPITransfer(ctx, transferBlock("spi_transfer", "8", "a"))
	gen.SPITransfer(ctx, transferBlock("spi_transfer", "9", "b"))

	assert.Equal(t, []string{"SPI.begin();", "pinMode(8, OUTPUT);", "pinMode(9, OUTPUT);"}, ctx.Setup())
}

func TestSPITransfer_AfterSetup_KeepsBeginPosition(t *testing.T) {
	ctx := newContext(t, "uno")

	gen.SPISetup(ctx, setupBlock("MSBFIRST", "SPI_MODE0", "SPI_CLOCK_DIV16"))
	gen.SPITransfer(ctx, transferBlock("spi_transfer", "8", "someVar"))

	// the begin key was first registered unpromoted after the mode setup, so
	// the transfer's promoted re-registration does not move it
	assert.Equal(t, []string{
		"SPI.setBitOrder(MSBFIRST);",
		"SPI.setDataMode(SPI_MODE0);",
		"SPI.setClockDivider(SPI_CLOCK_DIV16);",
		"SPI.begin();",
		"pinMode(8, OUTPUT);",
	}, ctx.Setup())
}

func TestSPITransferReturn_NoSlaveSelect(t *testing.T) {
	ctx := newContext(t, "uno")

	frag := gen.SPITransferReturn(ctx, transferBlock("spi_transfer_return", "", "someVar"))

	require.True(t, frag.IsExpression())
	assert.Equal(t, "SPI.transfer(someVar)", frag.Code)
	assert.Equal(t, arduino.OrderAtomic, frag.Order)
	// registries are populated exactly like a plain transfer
	assert.Equal(t, []string{"SPI.begin();"}, ctx.Setup())
	assert.Len(t, ctx.Claims(), 3)
	assert.Empty(t, ctx.Functions())
}

func TestSPITransferReturn_SlaveSelect(t *testing.T) {
	ctx := newContext(t, "uno")

	frag := gen.SPITransferReturn(ctx, transferBlock("spi_transfer_return", "8", "someVar"))

	require.True(t, frag.IsExpression())
	assert.Equal(t, "spiReturnSlaveSelect8()", frag.Code)
	assert.Equal(t, arduino.OrderUnaryPostfix, frag.Order)

	funcs := ctx.Functions()
	require.Len(t, funcs, 1)
	assert.Equal(t, `int spiReturnSlaveSelect8() {
  int spiReturn = 0;
  digitalWrite(8, HIGH);
  spiReturn = SPI.transfer(someVar);
  digitalWrite(8, LOW);
  return spiReturn;
}`, funcs[0])
}

func TestSPITransferReturn_SharedSlaveSelectSharesHelper(t *testing.T) {
	ctx := newContext(t, "uno")

	first := gen.SPITransferReturn(ctx, transferBlock("spi_transfer_return", "8", "someVar"))
	second := gen.SPITransferReturn(ctx, transferBlock("spi_transfer_return", "8", "someVar"))

	assert.Equal(t, first.Code, second.Code)
	assert.Len(t, ctx.Functions(), 1)
}

func TestForType(t *testing.T) {
	for _, typ := range []string{"spi_setup", "spi_transfer", "spi_transfer_return"} {
		_, ok := gen.ForType(typ)
		assert.True(t, ok, typ)
	}

	_, ok := gen.ForType("servo_write")
	assert.False(t, ok)

	assert.Equal(t, []string{"spi_setup", "spi_transfer", "spi_transfer_return"}, gen.Types())
}
