package main

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/comalice/fsmx"
	"github.com/comalice/fsmx/internal/production"
	"github.com/comalice/fsmx/modthree"
)

var demoInputs = []struct {
	input string
	value int
}{
	{"1101", 13},
	{"1110", 14},
	{"1111", 15},
}

func newEvalCmd(a *app) *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "eval [binary...]",
		Short: "Print the remainder of each binary number divided by three",
		Long: "Print the remainder of each binary number divided by three.\n" +
			"With no arguments a few demonstration values are printed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return runDemo(out)
			}
			return runEval(out, a, args, trace)
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "print every state the machine passes through")
	return cmd
}

func runDemo(out io.Writer) error {
	for _, d := range demoInputs {
		r, err := modthree.Mod(d.input)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Mod Three %s (%d): %d\n", d.input, d.value, r)
	}
	return nil
}

func runEval(out io.Writer, a *app, inputs []string, trace bool) error {
	failed := 0
	for _, input := range inputs {
		opts := []fsmx.Option{fsmx.WithLogger(a.logger)}
		var (
			events <-chan fsmx.Event
			obs    *production.ChannelObserver
		)
		if trace {
			// started + one event per symbol + the final outcome
			ch := make(chan fsmx.Event, utf8.RuneCountInString(input)+2)
			events, obs = ch, production.NewChannelObserver(ch)
			opts = append(opts, fsmx.WithObserver(obs))
		}
		m := modthree.New(opts...)

		r, err := m.Run(fsmx.Chars(input))
		if obs != nil {
			if cerr := obs.Close(); cerr != nil {
				return cerr
			}
			printTrace(out, events)
		}
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s -> error: %v\n", input, err)
			continue
		}
		fmt.Fprintf(out, "%s -> %d\n", input, r)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(inputs))
	}
	return nil
}

func printTrace(out io.Writer, events <-chan fsmx.Event) {
	for e := range events {
		switch e.Kind {
		case fsmx.RunStarted:
			fmt.Fprintf(out, "  start %v\n", e.State)
		case fsmx.Stepped:
			fmt.Fprintf(out, "  %v -> %v\n", e.Symbol, e.State)
		}
	}
}
