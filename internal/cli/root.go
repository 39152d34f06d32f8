package cli

import (
	"context"
	"io"
	"time"

	"todoList/internal/app"
	"todoList/internal/config"
	"todoList/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	configPath string
	storePath  string
	verbose    bool

	app *app.App
	now func() time.Time
}

// Execute разбирает аргументы, выполняет команду и возвращает код завершения.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts := &rootOptions{now: time.Now}
	root := newRootCommand(opts)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if opts.app != nil {
		defer opts.app.Close()
	}
	if err != nil {
		reportError(stderr, err)
	}
	return ExitCode(err)
}

func newRootCommand(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "tasks",
		Short:         "A CLI tool to manage your tasks",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.DefaultPath, "path to the YAML config file")
	flags.StringVar(&opts.storePath, "file", "", "path to the tasks file (overrides config and "+config.EnvStorePath+")")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newAddCommand(opts),
		newListCommand(opts),
		newCompleteCommand(opts),
		newDeleteCommand(opts),
		newShowCommand(opts),
		newDoctorCommand(opts),
	)
	return root
}

func (o *rootOptions) init(ctx context.Context) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fail(err)
	}
	if o.storePath != "" {
		cfg.Storage.Path = o.storePath
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}

	a := app.New(cfg)
	o.app = a
	if err := a.Init(ctx); err != nil {
		return fail(err)
	}
	logger.Debug("CLI: Конфигурация загружена",
		zap.String("config", o.configPath),
		zap.String("store", cfg.Storage.Path))
	return nil
}
