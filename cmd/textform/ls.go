package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func lsCommand() *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     "list the docs of a corpus store",
		ArgsUsage: "<store>",
		Action:    runLs,
	}
}

func runLs(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return fmt.Errorf("usage: ls <store>")
	}

	store, release, err := newCorpusRepository(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	defer release()

	docs, err := store.Docs()
	if err != nil {
		return err
	}

	for i, docId := range docs {
		fmt.Printf("📖 %d %s \n", i, docId)
	}

	return nil
}
