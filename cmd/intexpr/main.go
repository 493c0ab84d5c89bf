package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zephyrtronium/intexpr"
)

func main() {
	cmd := newRootCmd()
	cmd.SetArgs(exprArgs(cmd, os.Args[1:]))
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// options holds the command line configuration.
type options struct {
	logLevel string
	inname   string
	exact    bool
	echo     bool
	noColor  bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "intexpr [flags] [expression...]",
		Short: "Evaluate integer arithmetic expressions",
		Long: `Intexpr evaluates arithmetic expressions over 64-bit integers.

Expressions may use + - * / and parentheses. Multiplication and division bind
more tightly than addition and subtraction, and division truncates toward zero.
Each argument is a separate expression. A failed expression is reported and
does not stop the others. An argument that starts with a sign followed by a
digit or parenthesis is always an expression, never a flag.

Examples:
  intexpr '1+2*3' '-1+(-1-1)'
  intexpr --exact '1/3+1/6'
  echo '10/3' | intexpr --in -`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	f.StringVar(&opts.inname, "in", "", "file with one expression per line, or - for stdin")
	f.BoolVar(&opts.exact, "exact", false, "evaluate with exact fractions instead of truncating division")
	f.BoolVar(&opts.echo, "echo", false, "print the grouping of each expression")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", opts.logLevel, err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: opts.noColor}).
		With().Timestamp().Logger().
		Level(level)
	if opts.noColor {
		color.NoColor = true
	}

	exprs := args
	if opts.inname != "" {
		in, closer, err := infile(opts.inname, cmd.InOrStdin())
		if err != nil {
			return err
		}
		defer closer.Close()
		lines, err := readLines(in)
		if err != nil {
			return err
		}
		exprs = append(exprs, lines...)
	}
	if len(exprs) == 0 {
		return cmd.Help()
	}

	out := cmd.OutOrStdout()
	fail := color.New(color.FgRed, color.Bold)
	for _, s := range exprs {
		logger.Debug().Str("expr", s).Msg("evaluating")
		r, err := evaluate(s, opts, logger)
		if err != nil {
			logger.Info().Str("expr", s).Err(err).Msg("evaluation failed")
			fail.Fprint(out, "error:")
			fmt.Fprintf(out, " %s: %v\n", s, err)
			continue
		}
		fmt.Fprintf(out, "%s = %s\n", s, r)
	}
	return nil
}

// evaluate computes one expression and formats its result.
func evaluate(s string, opts options, logger zerolog.Logger) (string, error) {
	if logger.GetLevel() <= zerolog.DebugLevel {
		if toks, err := intexpr.LexString(s); err == nil {
			norm, _ := intexpr.Normalize(toks)
			logger.Debug().
				Str("tokens", intexpr.Format(toks)).
				Str("normalized", intexpr.Format(norm)).
				Msg("lexed")
		}
	}
	var r string
	if opts.exact {
		v, err := intexpr.ComputeExact(s)
		if err != nil {
			return "", err
		}
		r = v.String()
	} else {
		v, err := intexpr.Compute(s)
		if err != nil {
			return "", err
		}
		r = fmt.Sprint(v)
	}
	if opts.echo {
		e, err := intexpr.ParseString(s)
		if err != nil {
			return "", err
		}
		r += " : " + e.String()
	}
	return r, nil
}

// exprArgs rearranges command line arguments so that expressions beginning
// with a sign are not parsed as flags. Flags and their values stay in order
// ahead of a "--", and every other argument follows it in order.
func exprArgs(cmd *cobra.Command, args []string) []string {
	var flags, exprs []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			exprs = append(exprs, args[i+1:]...)
			break
		}
		if len(a) < 2 || a[0] != '-' || signed(a) {
			exprs = append(exprs, a)
			continue
		}
		flags = append(flags, a)
		if strings.Contains(a, "=") {
			continue
		}
		var f *pflag.Flag
		if strings.HasPrefix(a, "--") {
			f = cmd.Flags().Lookup(a[2:])
		} else if len(a) == 2 {
			f = cmd.Flags().ShorthandLookup(a[1:])
		}
		if f != nil && f.NoOptDefVal == "" && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}
	return append(append(flags, "--"), exprs...)
}

// signed reports whether an argument is an expression starting with a sign.
func signed(a string) bool {
	if len(a) < 2 || (a[0] != '-' && a[0] != '+') {
		return false
	}
	return a[1] == '(' || '0' <= a[1] && a[1] <= '9'
}

// infile opens the named input, with - meaning stdin.
func infile(inname string, stdin io.Reader) (io.Reader, io.Closer, error) {
	if inname == "-" {
		return stdin, io.NopCloser(stdin), nil
	}
	f, err := os.Open(inname)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

// readLines reads non-blank lines as expressions.
func readLines(in io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}
