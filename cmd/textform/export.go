package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/textform/format"
)

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "serialize a stored doc in a document format",
		ArgsUsage: "<store> <docId> [output]",
		Flags: append([]cli.Flag{
			formatFlag("to", "conll-sentence", "output format"),
		}, optionFlags()...),
		Action: runExport,
	}
}

func runExport(ctx *cli.Context) error {
	if ctx.NArg() < 2 {
		return fmt.Errorf("usage: export <store> <docId> [output]")
	}

	codec, err := format.New(ctx.String("to"), codecOptions(ctx))
	if err != nil {
		return err
	}

	store, release, err := newCorpusRepository(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	defer release()

	sentences, err := store.Sentences(ctx.Args().Get(1))
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if ctx.NArg() > 2 {
		f, err := os.Create(ctx.Args().Get(2))
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	return format.WriteAll(codec, w, sentences)
}
