// Package generator provides the command that turns a translations file
// into an Elm module.
package generator

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/cockroachdb/errors"
	"github.com/goaux/contextvalue"
	"github.com/goaux/stacktrace/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/takumakei/elm-translations-go/elmgen"
	"github.com/takumakei/elm-translations-go/execpipe"
)

// Main runs the command with the process arguments and exits.
func Main(ctx context.Context, config Config) {
	os.Exit(Execute(ctx, config, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Execute runs the command with args and returns the exit code.
func Execute(ctx context.Context, config Config, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newCommand(&config)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	ctx = contextvalue.With(ctx, &config)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err.Error())
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(stderr, "hint: %s\n", hint)
		}
		return ExitCode(err)
	}
	return ExitOK
}

func newCommand(config *Config) *cobra.Command {
	s := config.defaults()
	cmd := &cobra.Command{
		Use:     config.Use,
		Short:   config.Short,
		Long:    render(config.Long),
		Version: config.Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := s.loadFile(cmd.Flags()); err != nil {
				return exitf(ExitRead, err, "cannot read config: %s", s.ConfigFile)
			}
			return run(cmd, &s)
		},

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	fl := cmd.Flags()
	fl.SortFlags = false
	fl.StringVarP(&s.From, "from", "f", "", "path to your translations `file` (JSON, or YAML by extension)")
	fl.StringVarP(&s.Module, "module", "m", s.Module, "Elm `module` name")
	fl.StringVarP(&s.Root, "root", "r", "", "key `path` to use as root, e.g. en.app")
	fl.StringVarP(&s.Out, "out", "o", "", "output `dir`; the file path follows the module name")
	fl.BoolVarP(&s.Format, "format", "F", s.Format, "pipe the output through elm-format")
	fl.StringVarP(&s.ConfigFile, "config", "c", "", "read settings from a TOML `file`")
	fl.BoolVarP(&s.Verbose, "verbose", "v", false, "log progress to stderr")

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.MarkFlagFilename("from", "json", "yaml", "yml")
	cmd.MarkFlagFilename("config", "toml")
	cmd.MarkFlagDirname("out")
	cmd.RegisterFlagCompletionFunc("module", func(*cobra.Command, []string, string) ([]cobra.Completion, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func render(usage string) string {
	if isTTY(os.Stdout) {
		r, err := glamour.NewTermRenderer(
			glamour.WithEnvironmentConfig(),
			glamour.WithWordWrap(100),
		)
		if err == nil { // if NO error
			if s, err := r.Render(usage); err == nil { // if NO error
				return s
			}
		}
	}
	return usage
}

func run(cmd *cobra.Command, s *Settings) error {
	config, ok := contextvalue.From[*Config](cmd.Context())
	if !ok {
		panic("never")
	}

	cin := cmd.InOrStdin()
	if s.From == "" && isTTY(cin) {
		return pflag.ErrHelp
	}

	log := newLogger(cmd.ErrOrStderr(), s.Verbose)
	defer log.Sync()

	if s.Format {
		if err := execpipe.CheckPath("elm-format"); err != nil {
			err = errors.WithHint(err, "elm-format was not found, consider using `--format=false`")
			return &ExitError{Code: ExitGenerate, Err: err}
		}
	}

	name, data, err := readInput(cin, s.From)
	if err != nil {
		return exitf(ExitRead, err, "cannot read file: %s", name)
	}
	log.Debug("read input", zap.String("file", name), zap.Int("size", len(data)))

	tree, err := parseInput(name, data)
	if err != nil {
		return exitf(ExitParse, err, "cannot parse file: %s", name)
	}

	tree, err = tree.Lookup(s.Root)
	if err != nil {
		return exitf(ExitGenerate, err, "cannot use root: %s", s.Root)
	}

	opts := []elmgen.Option{elmgen.WithLogger(log)}
	if config.MaxDepth > 0 {
		opts = append(opts, elmgen.WithMaxDepth(config.MaxDepth))
	}
	src, err := elmgen.Generate(tree, s.Module, opts...)
	if err != nil {
		return exitf(ExitGenerate, err, "cannot generate Elm code")
	}

	buf := bytes.NewBufferString(src + "\n")
	if s.Format {
		out := new(bytes.Buffer)
		if err := execpipe.Run(cmd.Context(), out, buf, "elm-format", "--stdin"); err != nil {
			return exitf(ExitGenerate, err, "cannot format Elm code")
		}
		buf = out
	}

	if s.Out == "" {
		if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
			return exitf(ExitWrite, stacktrace.Trace(err), "cannot write output")
		}
		return nil
	}
	output := filepath.Join(s.Out, filepath.FromSlash(elmgen.ModulePath(s.Module)))
	if err := writeOutput(output, buf.Bytes()); err != nil {
		return exitf(ExitWrite, err, "cannot write file: %s", output)
	}
	log.Info("wrote module", zap.String("module", s.Module), zap.String("file", output))
	return nil
}

func isTTY(io any) bool {
	if f, ok := io.(*os.File); ok {
		return isatty.IsTerminal(f.Fd())
	}
	return false
}

func readInput(cin io.Reader, from string) (string, []byte, error) {
	if from == "" {
		data, err := stacktrace.Trace2(io.ReadAll(cin))
		return "(stdin)", data, err
	}
	data, err := stacktrace.Trace2(os.ReadFile(from))
	return from, data, err
}

func parseInput(name string, data []byte) (*elmgen.Group, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return elmgen.ParseYAML(data)
	default:
		return elmgen.ParseJSON(data)
	}
}

func writeOutput(path string, data []byte) error {
	if err := stacktrace.Trace(os.MkdirAll(filepath.Dir(path), 0755)); err != nil {
		return err
	}
	return stacktrace.Trace(os.WriteFile(path, data, 0644))
}
