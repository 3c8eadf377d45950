package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/textform/format"
)

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "convert a corpus file from one format to another",
		ArgsUsage: "<input> [output]",
		Flags: append([]cli.Flag{
			formatFlag("from", "conll-sentence", "input format"),
			formatFlag("to", "tokenized-text", "output format"),
		}, optionFlags()...),
		Action: runConvert,
	}
}

func runConvert(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return fmt.Errorf("missing input file. Usage: convert <input> [output]")
	}

	opts := codecOptions(ctx)
	in, err := format.New(ctx.String("from"), opts)
	if err != nil {
		return err
	}
	out, err := format.New(ctx.String("to"), opts)
	if err != nil {
		return err
	}

	input := ctx.Args().Get(0)
	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	sentences, err := format.ParseAll(in, f, docIdForPath(input))
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", input, err)
	}

	var w io.Writer = os.Stdout
	if ctx.NArg() > 1 {
		outFile, err := os.Create(ctx.Args().Get(1))
		if err != nil {
			return err
		}
		defer outFile.Close()
		w = outFile
	}

	return format.WriteAll(out, w, sentences)
}

// docIdForPath derives a document id from a file path: the base name
// without its extension.
func docIdForPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
