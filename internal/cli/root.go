package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-agent/internal/app"
	"github.com/nguyentantai21042004/meeting-agent/internal/config"
	"github.com/nguyentantai21042004/meeting-agent/internal/logger"
	"github.com/nguyentantai21042004/meeting-agent/internal/version"
)

// Dependencies is filled lazily so commands that need no services
// (version, help) work without a config file.
type Dependencies struct {
	ConfigPath string
	Config     *config.Config
	Logger     logger.Logger
	App        *app.App
}

// load reads the config and wires the application once.
func (d *Dependencies) load() error {
	if d.App != nil {
		return nil
	}

	cfg, err := config.Load(d.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := logger.New(cfg.Logging.Level)

	application, err := app.New(cfg, log)
	if err != nil {
		return fmt.Errorf("initializing app: %w", err)
	}

	d.Config, d.Logger, d.App = cfg, log, application
	return nil
}

// Close releases the application if it was built.
func (d *Dependencies) Close() error {
	if d.App == nil {
		return nil
	}
	return d.App.Close()
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "meetingagent",
		Short:         "Transcribe, summarize and search meeting recordings",
		Long:          "A service that transcribes uploaded meeting audio, extracts a summary and action items with Gemini, stores the result and renders downloadable reports.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")
	rootCmd.PersistentFlags().StringVarP(&deps.ConfigPath, "config", "c", "config.yaml", "path to the YAML config file")

	rootCmd.AddCommand(NewServeCmd(deps))
	rootCmd.AddCommand(NewProcessCmd(deps))
	rootCmd.AddCommand(NewSearchCmd(deps))
	rootCmd.AddCommand(NewPurgeCmd(deps))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
