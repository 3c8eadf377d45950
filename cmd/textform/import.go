package main

import (
	"fmt"
	"os"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/textform/format"
)

func importCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "parse corpus files and store the sentences in a corpus store",
		ArgsUsage: "<file>...",
		Flags: append([]cli.Flag{
			formatFlag("from", "conll-sentence", "input format"),
			&cli.StringFlag{
				Name:     "to",
				Usage:    "corpus store: a directory (JSON files) or a SQLite db path",
				Required: true,
			},
		}, optionFlags()...),
		Action: runImport,
	}
}

func runImport(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return fmt.Errorf("missing input files. Usage: import --to <store> <file>...")
	}

	codec, err := format.New(ctx.String("from"), codecOptions(ctx))
	if err != nil {
		return err
	}

	store, release, err := newCorpusRepository(ctx.String("to"))
	if err != nil {
		return err
	}
	defer release()

	files := ctx.Args().Slice()

	uiprogress.Start()
	bar := uiprogress.AddBar(len(files))
	bar.AppendCompleted()
	bar.PrependElapsed()
	bar.Set(1)
	// Append the file name to the progress bar
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		return files[b.Current()-1]
	})

	count := 0
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			uiprogress.Stop()
			return err
		}

		docId := docIdForPath(file)
		sentences, err := format.ParseAll(codec, f, docId)
		f.Close()
		if err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to parse %s: %w", file, err)
		}

		if err := store.Write(docId, sentences); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to store %s: %w", docId, err)
		}
		count++
		bar.Incr()
	}
	uiprogress.Stop()

	fmt.Printf("Successfully imported %d docs into %s\n", count, ctx.String("to"))
	return nil
}
