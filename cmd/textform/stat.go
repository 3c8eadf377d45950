package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/textform/stat"
)

func statCommand() *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "print corpus statistics for a store, or for one of its docs",
		ArgsUsage: "<store> [docId]",
		Action:    runStat,
	}
}

func runStat(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return fmt.Errorf("usage: stat <store> [docId]")
	}

	store, release, err := newCorpusRepository(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	defer release()

	docs := ctx.Args().Slice()[1:]
	if len(docs) == 0 {
		docs, err = store.Docs()
		if err != nil {
			return err
		}
	}

	hdl := stat.NewHandler()
	for _, docId := range docs {
		sentences, err := store.Sentences(docId)
		if err != nil {
			return err
		}
		hdl.Aggregate(sentences)
	}

	stats := hdl.Get()
	fmt.Printf("Num sentences %d, num tokens %d, tokens per sentence %d, placeholders %d\n",
		stats.NumSentences, stats.NumTokens, stats.TokensPerSentenceMean, stats.NumPlaceholders)

	return nil
}
