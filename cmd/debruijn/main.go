package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vic/debruijn/pkg/reduction"
	"github.com/vic/debruijn/pkg/term"
)

var (
	flagFile     string
	flagMaxSteps int
	flagTrace    bool
	flagNamed    bool
	flagStats    bool
	flagLogLevel string
)

var (
	stepStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	limitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func main() {
	root := &cobra.Command{
		Use:   "debruijn [term]",
		Short: "Normal-order reducer for untyped lambda terms in De Bruijn notation",
		Long: `debruijn parses a lambda term given in De Bruijn notation (λ 1, λ λ 2 1)
or classic named notation (λx. x, \f. \x. f x), reduces it to normal form
with the leftmost-outermost strategy, and prints the result.

The term is taken from the command line argument, from --file, or from
stdin. Terms without a normal form are cut off at --max-steps; hitting the
cap is reported but is not an error.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVarP(&flagFile, "file", "f", "", "read the term from a file")
	root.Flags().IntVarP(&flagMaxSteps, "max-steps", "n", 100000, "contraction budget, 0 for unbounded")
	root.Flags().BoolVarP(&flagTrace, "trace", "t", false, "print every intermediate state")
	root.Flags().BoolVar(&flagNamed, "named", false, "print results with reconstructed names")
	root.Flags().BoolVar(&flagStats, "stats", false, "print timing and step counts to stderr")
	root.Flags().StringVar(&flagLogLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		log.SetLevel(lvl)
	}
	log.SetTimeFormat("")

	input, err := readInput(args)
	if err != nil {
		return err
	}

	t, err := term.Parse(input)
	if err != nil {
		return err
	}
	log.Debug("parsed", "term", t.String())

	start := time.Now()
	if flagTrace {
		tr := reduction.Trace(t, flagMaxSteps)
		for i, state := range tr.States {
			fmt.Printf("%s %s\n", stepStyle.Render(fmt.Sprintf("[%d]", i)), render(state))
		}
		reportOutcome(tr.NormalForm, tr.Steps(), time.Since(start))
		return nil
	}

	res := reduction.Reduce(t, flagMaxSteps)
	fmt.Println(render(res.Term))
	reportOutcome(res.NormalForm, res.Steps, time.Since(start))
	return nil
}

func readInput(args []string) (string, error) {
	switch {
	case len(args) == 1:
		return args[0], nil
	case flagFile != "":
		data, err := os.ReadFile(flagFile)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(data)), nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(data)), nil
	}
}

func render(t term.Term) string {
	if flagNamed {
		return term.PrintNamed(t)
	}
	return t.String()
}

func reportOutcome(normalForm bool, steps int, elapsed time.Duration) {
	if !normalForm {
		fmt.Fprintln(os.Stderr, limitStyle.Render(
			fmt.Sprintf("step limit reached after %d contractions; the term may have no normal form", steps)))
	}
	if !flagStats {
		return
	}
	fmt.Fprintf(os.Stderr, "\nStats:\n")
	fmt.Fprintf(os.Stderr, "Time: %v\n", elapsed)
	fmt.Fprintf(os.Stderr, "Contractions: %d", steps)
	if seconds := elapsed.Seconds(); seconds > 0 {
		fmt.Fprintf(os.Stderr, " (%.2f steps/sec)", float64(steps)/seconds)
	}
	fmt.Fprintf(os.Stderr, "\n")
}
