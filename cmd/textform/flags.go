package main

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/textform/format"
)

// formatFlag builds the format-selection flag shared by several commands.
func formatFlag(name, value, usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  name,
		Value: value,
		Usage: usage + " (one of: " + strings.Join(format.Names(), ", ") + ")",
	}
}

// optionFlags are the CoNLL field-encoding option flags.
func optionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "join-category-to-pos",
			Usage: "fold the coarse category into the tag on read, split on write",
		},
		&cli.BoolFlag{
			Name:  "add-pos-as-attribute",
			Usage: "mirror the tag into a synthetic fPOS attribute on read, strip on write",
		},
	}
}

// codecOptions extracts the codec options from the command line.
func codecOptions(ctx *cli.Context) format.Options {
	return format.Options{
		JoinCategoryToPos: ctx.Bool("join-category-to-pos"),
		AddPosAsAttribute: ctx.Bool("add-pos-as-attribute"),
	}
}
