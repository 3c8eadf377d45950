package main

import (
	"fmt"
	"os"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/textform/format"
	"github.com/revelaction/textform/render"
	sent "github.com/revelaction/textform/sentence"
)

func tokenizeCommand() *cli.Command {
	return &cli.Command{
		Name:  "tokenize",
		Usage: "interactively tokenize typed sentences",
		Flags: append([]cli.Flag{
			formatFlag("format", "english-text", "tokenizer format"),
		}, optionFlags()...),
		Action: runTokenize,
	}
}

func runTokenize(ctx *cli.Context) error {
	codec, err := format.New(ctx.String("format"), codecOptions(ctx))
	if err != nil {
		return err
	}

	r := render.NewTextRenderer(os.Stdout)
	r.HasColor = true
	r.Format = "tokens"

	fmt.Println("🔑 type a sentence, Ctrl+F: next format, quit to exit")

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      ✍  ", completer,
			prompt.OptionTitle("textform tokenize"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionMaxSuggestion(4),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					r.NextFormat()
					fmt.Println("Format set to: " + r.Format)
				}}),
		)

		if in == "quit" {
			return nil
		}
		if strings.TrimSpace(in) == "" {
			continue
		}

		history = append(history, in)

		s, err := codec.Parse("prompt", in)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		if s == nil {
			continue
		}

		r.Render([]sent.Sentence{*s})
	}
}

func completer(in prompt.Document) []prompt.Suggest {
	before := in.TextBeforeCursor()
	if before == "" {
		return nil
	}

	s := []prompt.Suggest{
		{Text: "quit", Description: "leave the tokenizer"},
	}
	return prompt.FilterHasPrefix(s, in.GetWordBeforeCursor(), true)
}
