package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"revcomp/internal/logger"
	"revcomp/internal/shell"
)

func (a *app) shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive prompt (the default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runShell(cmd.Context())
		},
	}
}

func (a *app) runShell(ctx context.Context) error {
	st, err := shell.Run(ctx, a.stdin, a.stdout, shell.Options{
		Prompt:    a.cfg.Prompt,
		ExitWords: a.cfg.ExitWords,
		Banner:    a.cfg.Banner,
		Format:    a.cfg.Output,
		Writer:    a.writerOptions(),
		Logger:    logger.L(),
	})
	logger.L().Info("shell.done", "transformed", st.Transformed, "rejected", st.Rejected)
	if err == nil || ctx.Err() != nil {
		return err
	}
	if errors.Is(err, shell.ErrInput) {
		return &exitError{code: exitUsage, err: err}
	}
	return outputErr(err)
}
