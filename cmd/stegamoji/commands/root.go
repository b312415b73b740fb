package commands

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"stegamoji/internal/app"
)

var (
	configPath string
	verbose    bool

	appCtx *app.Wire
	logger *log.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:          "stegamoji",
		Short:        "Hide and reveal secret messages inside emoji",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: false,
			})
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}

			w, err := app.NewWire(app.Config{ConfigPath: configPath})
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.stegamoji/config.toml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")

	root.AddCommand(hideCmd(), revealCmd(), inspectCmd())
	return root.Execute()
}
