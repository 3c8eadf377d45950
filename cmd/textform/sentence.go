package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/textform/render"
	sent "github.com/revelaction/textform/sentence"
)

func sentenceCommand() *cli.Command {
	return &cli.Command{
		Name:      "sentence",
		Usage:     "print one sentence of a stored doc as a token table",
		ArgsUsage: "<store> <docId> <index>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-color", Usage: "disable colored output"},
		},
		Action: runSentence,
	}
}

func runSentence(ctx *cli.Context) error {
	if ctx.NArg() < 3 {
		return fmt.Errorf("usage: sentence <store> <docId> <index>")
	}

	idx, err := strconv.Atoi(ctx.Args().Get(2))
	if err != nil {
		return fmt.Errorf("sentence index must be a number: %w", err)
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

	if idx < 0 || idx >= len(sentences) {
		return fmt.Errorf("sentence index %d out of range, doc has %d sentences", idx, len(sentences))
	}

	r := render.NewTextRenderer(os.Stdout)
	r.HasColor = !ctx.Bool("no-color")
	r.Format = "tokens"
	r.Render([]sent.Sentence{sentences[idx]})

	return nil
}
