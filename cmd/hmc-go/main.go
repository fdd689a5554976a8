package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	compiler "hmc-go/packages/compiler/src"
	"hmc-go/packages/compiler/src/program"
	"hmc-go/packages/compiler/src/vdom"
)

func usage() {
	fmt.Println(`hmc-go - markup macro compiler
Usage: hmc-go <command> [file]

Commands:
  expand <file>    Parse markup and print its construction program as JSON
  render <file>    Expand, run with literal-only evaluation, and print HTML
  help             Show help

Reads from stdin when no file is given.`)
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "help":
		usage()
	case "expand":
		source, url := readInput(log)
		if err := expand(source, url); err != nil {
			log.Fatal().Err(err).Msg("expand failed")
		}
	case "render":
		source, url := readInput(log)
		if err := render(source, url); err != nil {
			log.Fatal().Err(err).Msg("render failed")
		}
	default:
		usage()
		os.Exit(1)
	}
}

func readInput(log zerolog.Logger) (string, string) {
	if len(os.Args) >= 3 {
		data, err := os.ReadFile(os.Args[2])
		if err != nil {
			log.Fatal().Err(err).Msg("cannot read input file")
		}
		return string(data), os.Args[2]
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read stdin")
	}
	return string(data), "<stdin>"
}

func expand(source, url string) error {
	prog, err := compiler.NewCompiler().Compile(source, url)
	if err != nil {
		return err
	}
	out, jsonErr := json.MarshalIndent(program.Dump(prog), "", "  ")
	if jsonErr != nil {
		return jsonErr
	}
	fmt.Println(string(out))
	return nil
}

func render(source, url string) error {
	node, err := compiler.NewCompiler().Render(source, url, program.LiteralEvaluator{})
	if err != nil {
		return err
	}
	return vdom.ToGomponents(node).Render(os.Stdout)
}
