package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"connectors/diagram"
	"connectors/geometry"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	logFile    string
	noGrid     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "connectors",
		Short:         "Draw boxes and connect them in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfigPath(), "config file")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "write logs to this file (overrides log_file)")
	cmd.PersistentFlags().BoolVar(&opts.noGrid, "no-grid", false, "hide the background grid")
	cmd.AddCommand(newExportCmd(opts))
	return cmd
}

func (opts *rootOptions) load() (*Config, error) {
	config, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.logFile != "" {
		config.LogFile = opts.logFile
	}
	if opts.noGrid {
		config.ShowGrid = false
	}
	return config, nil
}

func runTUI(opts *rootOptions) error {
	config, err := opts.load()
	if err != nil {
		return err
	}
	logger, closer, err := openLog(config.LogFile, config.Level())
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closer.Close()

	logger.Info("starting", "config", opts.configPath)
	p := tea.NewProgram(
		initialModel(config, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var boxes int
	var format string
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Render a cascade of connected boxes to a PNG or TXT file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.load()
			if err != nil {
				return err
			}
			state := cascade(boxes)
			switch format {
			case "png":
				err = ExportToPNG(state, args[0], config.ShowGrid)
			case "txt":
				err = ExportToTXT(state, args[0], config.ShowGrid)
			default:
				return fmt.Errorf("unknown format %q", format)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().IntVar(&boxes, "boxes", 3, "number of boxes")
	cmd.Flags().StringVar(&format, "format", "png", "output format: png or txt")
	return cmd
}

// cascade lays n boxes out diagonally from the default origin, each one
// connected to the next.
func cascade(n int) *diagram.State {
	state := diagram.New()
	var prev *diagram.Box
	for i := 0; i < n; i++ {
		offset := geometry.Pt(float64(i)*(diagram.DefaultBoxWidth+diagram.GridPitch), float64(i)*(diagram.DefaultBoxHeight+diagram.GridPitch))
		box := state.Add(diagram.DefaultOrigin.Add(offset))
		if prev != nil {
			state.Connect(prev.ID(), box.ID())
		}
		prev = box
	}
	return state
}
