package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"revcomp/internal/config"
	"revcomp/internal/logger"
	"revcomp/internal/version"
	"revcomp/internal/writers"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	// flags
	configPath string
	output     string
	noColor    bool
	debug      bool
	logFile    string
	quiet      bool

	cfg      config.Config
	cleanup  func() error
	renderer *lipgloss.Renderer
}

// Run executes argv against the revcomp command tree and returns the
// process exit code.
func Run(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	cmd := a.rootCmd()
	if argv == nil {
		// cobra falls back to os.Args on nil.
		argv = []string{}
	}
	cmd.SetArgs(argv)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if a.cleanup != nil {
		_ = a.cleanup()
	}
	return exitCode(err, stderr)
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revcomp",
		Short: "DNA reverse complement tool",
		Long: `revcomp replaces each base with its complement (A<->T, G<->C, case kept)
and reverses the result. Without a subcommand it starts an interactive prompt.`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runShell(cmd.Context())
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (default $REVCOMP_CONFIG)")
	pf.StringVarP(&a.output, "output", "o", "text", "output: "+strings.Join(writers.Formats(), " | "))
	pf.BoolVar(&a.noColor, "no-color", false, "disable styled text output")
	pf.BoolVar(&a.debug, "debug", false, "debug logging (to --log-file, else stderr)")
	pf.StringVar(&a.logFile, "log-file", "", "append JSON logs to this file")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "suppress banner and prompt")

	cmd.AddCommand(a.shellCmd(), a.rcCmd(), a.demoCmd(), a.versionCmd())
	return cmd
}

// setup resolves configuration (defaults, then file, then flags) and
// installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	path := a.configPath
	if path == "" {
		path = os.Getenv("REVCOMP_CONFIG")
	}
	if path != "" {
		loaded, err := config.Load(path, writers.Formats())
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = strings.ToLower(a.output)
		if err := config.ValidateOutput(cfg.Output, writers.Formats()); err != nil {
			return &exitError{code: exitUsage, err: err}
		}
	}
	if a.noColor || os.Getenv("NO_COLOR") != "" {
		cfg.Color = false
	}
	if flags.Changed("log-file") {
		cfg.LogFile = a.logFile
	}
	if a.quiet {
		cfg.Banner = false
		cfg.Prompt = ""
	}
	a.cfg = cfg

	cleanup, err := logger.Setup(logger.Config{
		File:   cfg.LogFile,
		Stderr: a.stderr,
		Level:  cfg.LogLevel,
		Debug:  a.debug,
	})
	if err != nil {
		return &exitError{code: exitUsage, err: err}
	}
	a.cleanup = cleanup
	logger.L().Debug("config.resolved", "path", path, "output", cfg.Output, "color", cfg.Color, "log_path", logger.Path())
	return nil
}

// writerOptions binds the color renderer to the real stdout, since the
// writers only ever see buffers wrapping it.
func (a *app) writerOptions() writers.Options {
	opt := writers.Options{Color: a.cfg.Color}
	if opt.Color {
		if a.renderer == nil {
			a.renderer = lipgloss.NewRenderer(a.stdout)
		}
		opt.Renderer = a.renderer
	}
	return opt
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(a.stdout, "revcomp version "+version.Version+"\n")
			return outputErr(err)
		},
	}
}
