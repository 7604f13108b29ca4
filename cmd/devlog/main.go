// FILE: lixenwraith/devlog/cmd/devlog/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/devlog"
)

var (
	cfgFile   string
	directory string
	overrides []string
)

var rootCmd = &cobra.Command{
	Use:   "devlog",
	Short: "Console and day file logger toolbox",
	Long: `devlog drives the devlog logger from the command line.

Commands:
  demo     - log from concurrent workers to the console and day files
  decrypt  - print the plain text of an encrypted day file
  config   - show or save the effective configuration
  serve    - run gnet and fasthttp servers logging through devlog`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML or YAML config file with a [log] section")
	rootCmd.PersistentFlags().StringVarP(&directory, "dir", "d", "", "Day file directory (overrides config)")
	rootCmd.PersistentFlags().StringArrayVarP(&overrides, "set", "s", nil, "key=value override, repeatable")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the config file, the --dir flag and --set overrides, in that order
func loadConfig() (*devlog.Config, error) {
	cfg := devlog.DefaultConfig()
	if cfgFile != "" {
		loaded, err := devlog.NewConfigFromFile(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if directory != "" {
		cfg.Directory = directory
	}
	return cfg, nil
}

// newLogger creates a logger from the resolved configuration
func newLogger() (*devlog.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := devlog.NewLogger()
	if err := logger.ApplyConfig(cfg); err != nil {
		_ = logger.Shutdown()
		return nil, err
	}
	if len(overrides) > 0 {
		if err := logger.ApplyOverride(overrides...); err != nil {
			_ = logger.Shutdown()
			return nil, err
		}
	}
	return logger, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "devlog: %v\n", err)
		os.Exit(1)
	}
}
