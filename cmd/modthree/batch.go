package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/comalice/fsmx"
	"github.com/comalice/fsmx/internal/production"
	"github.com/comalice/fsmx/modthree"
)

type batchResult struct {
	input string
	value int
	err   error
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		file    string
		workers int
		metrics bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Evaluate one binary number per line from a file or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("workers") {
				a.cfg.Workers = workers
			}
			if cmd.Flags().Changed("metrics") {
				a.cfg.Metrics = metrics
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("open %s: %w", file, err)
				}
				defer f.Close()
				in = f
			}

			inputs, err := readInputs(in)
			if err != nil {
				return err
			}
			return runBatch(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), a, inputs)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read inputs from file instead of stdin")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of concurrent evaluations (default from config)")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "dump Prometheus metrics to stderr when done")
	return cmd
}

// readInputs returns the non-blank, trimmed lines of r.
func readInputs(r io.Reader) ([]string, error) {
	var inputs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read inputs: %w", err)
	}
	return inputs, nil
}

func runBatch(ctx context.Context, out, errOut io.Writer, a *app, inputs []string) error {
	reg := prometheus.NewRegistry()
	m := modthree.New(
		fsmx.WithLogger(a.logger),
		fsmx.WithObserver(production.NewMetrics(reg)),
	)

	results := make([]batchResult, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, input := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := m.Run(fsmx.Chars(input))
			results[i] = batchResult{input: input, value: v, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(out, "%s -> error: %v\n", r.input, r.err)
			continue
		}
		fmt.Fprintf(out, "%s -> %d\n", r.input, r.value)
	}
	a.logger.Info("batch finished",
		"inputs", len(inputs),
		"failed", failed,
		"workers", a.cfg.Workers,
	)

	if a.cfg.Metrics {
		if err := dumpMetrics(errOut, reg); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(inputs))
	}
	return nil
}

// dumpMetrics writes every gathered metric family in the Prometheus text format.
func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}
