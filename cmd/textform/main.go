package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	app := &cli.App{
		Name:    "textform",
		Usage:   "convert sentence corpora between document formats",
		Version: version,
		Commands: []*cli.Command{
			convertCommand(),
			importCommand(),
			exportCommand(),
			lsCommand(),
			sentenceCommand(),
			statCommand(),
			tokenizeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "textform: %v\n", err)
		os.Exit(1)
	}
}
