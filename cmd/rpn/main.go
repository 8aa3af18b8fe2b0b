package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zephyrtronium/rpn"
	"github.com/zephyrtronium/rpn/internal/config"
	"github.com/zephyrtronium/rpn/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("rpn failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

type options struct {
	cfgFile string
	inname  string
	verb    string
	echo    bool
	strict  bool
	debug   bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "rpn [flags] [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `rpn evaluates infix arithmetic with + - * / ^, brackets, and prefix minus.
Each argument is a separate expression. With no arguments, expressions are
read one per line from --in or standard input. Expressions from --in are
evaluated before the arguments.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &opts)
		},
	}
	cmd.Flags().StringVar(&opts.cfgFile, "config", "", "YAML configuration file")
	cmd.Flags().StringVar(&opts.inname, "in", "", "input file, one expression per line, evaluated before any arguments (default stdin if no args given)")
	cmd.Flags().StringVar(&opts.verb, "fmt", "", "result formatting verb (default from config, %v)")
	cmd.Flags().BoolVar(&opts.echo, "echo", false, "print the postfix form of each expression")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "reject malformed expressions")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("fmt") {
		cfg.Output.Format = opts.verb
	}
	if flags.Changed("echo") {
		cfg.Output.Echo = opts.echo
	}
	if flags.Changed("strict") {
		cfg.Output.Strict = opts.strict
	}
	if opts.debug {
		cfg.Logging.Level = "debug"
	}
	if err := logger.Init(cfg.Logger()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 || opts.inname != "" {
		if err := evalLines(cmd, out, opts.inname, &cfg.Output); err != nil {
			return err
		}
	}
	for _, arg := range args {
		if err := eval(out, arg, &cfg.Output); err != nil {
			return err
		}
	}
	return nil
}

// evalLines evaluates each non-blank line of the named file, or of standard
// input if name is empty or "-".
func evalLines(cmd *cobra.Command, out io.Writer, name string, cfg *config.OutputConfig) error {
	var in io.Reader = cmd.InOrStdin()
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		if err := eval(out, line, cfg); err != nil {
			return err
		}
	}
	return scan.Err()
}

// eval evaluates one expression and prints its result.
func eval(w io.Writer, src string, cfg *config.OutputConfig) error {
	tokens, err := rpn.Tokenize(src)
	if err != nil {
		return fmt.Errorf("%q: %w", src, err)
	}
	logger.Debug("tokenized", zap.String("src", src), zap.Int("tokens", len(tokens)))
	if cfg.Strict {
		if err := rpn.CheckBrackets(tokens); err != nil {
			return fmt.Errorf("%q: %w", src, err)
		}
	}
	postfix := rpn.ToPostfix(tokens)
	logger.Debug("converted", zap.String("postfix", rpn.Format(postfix)))
	if cfg.Strict {
		if err := rpn.CheckPostfix(postfix); err != nil {
			return fmt.Errorf("%q: %w", src, err)
		}
	}
	r := rpn.Evaluate(postfix)
	logger.Debug("evaluated", zap.Float64("result", r))
	if cfg.Echo {
		fmt.Fprintf(w, "%s : ", rpn.Format(postfix))
	}
	fmt.Fprintf(w, "Result: "+cfg.Format+"\n", r)
	return nil
}
