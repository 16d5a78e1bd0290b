// Package main provides the CLI entrypoint for sketch-generator.
//
// sketch-generator turns a YAML block-program description into an Arduino
// sketch: it runs every block through its code generator, reports pin
// reservation conflicts, and prints the assembled compilation unit on
// stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"sketch-generator/internal/boards"
	"sketch-generator/internal/codegen"
	"sketch-generator/internal/program"
)

func main() {
	var (
		boardName = flag.String("board", "", "target board, overrides the program's own (one of: "+strings.Join(boards.Names(), ", ")+")")
		debug     = flag.Bool("debug", false, "dump the generation context to stderr")
	)

	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: sketch-generator [flags] program.yaml")
		flag.PrintDefaults()
		os.Exit(2)
	}

	p, err := program.LoadFromFile(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("load program")
	}

	name := p.Board
	if *boardName != "" {
		name = *boardName
	}

	if name == "" {
		name = "uno"
	}

	board, err := boards.ByName(name)
	if err != nil {
		log.Fatal().Err(err).Strs("known", boards.Names()).Msg("select board")
	}

	ctx := codegen.NewContext(board, codegen.InputEval{})

	loop, err := p.Generate(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("generate")
	}

	for _, pc := range ctx.Conflicts() {
		log.Warn().
			Str("pin", pc.Pin).
			Str("claimed", pc.First.Label+" ("+pc.First.Owner+")").
			Str("also", pc.Second.Label+" ("+pc.Second.Owner+")").
			Msg("pin reserved for conflicting uses")
	}

	if *debug {
		spew.Fdump(os.Stderr, ctx)
	}

	fmt.Print(ctx.Sketch(loop))
}
