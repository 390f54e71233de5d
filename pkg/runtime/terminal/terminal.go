package terminal

import (
	"context"
	"io"
	"os"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/runtime/terminal/commands"
	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/runtime/terminal/export"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	logger   zerolog.Logger
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	DefaultDBPath string
	Output        io.Writer
	Logger        zerolog.Logger
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.DefaultDBPath == "" {
		opts.DefaultDBPath = "eventdesign.db"
	}

	cli := &CLI{
		logger:   opts.Logger,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd(opts.DefaultDBPath)
	return cli
}

func (cli *CLI) Execute() error {
	ctx := cli.logger.WithContext(context.Background())
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd(defaultDBPath string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eventreport",
		Short: "Event catalog reporting tool",
	}

	cmd.AddCommand(commands.NewReportCmd(defaultDBPath, cli.reporter))
	cmd.AddCommand(commands.NewExportCmd(defaultDBPath))
	cmd.AddCommand(commands.NewEventsCmd(defaultDBPath))
	cmd.AddCommand(commands.NewSeedCmd(defaultDBPath))

	return cmd
}
