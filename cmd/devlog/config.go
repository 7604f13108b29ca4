// FILE: lixenwraith/devlog/cmd/devlog/config.go
package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

var configSavePath string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or save the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Shutdown()

		if configSavePath != "" {
			if err := logger.SaveConfig(configSavePath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "saved %s\n", configSavePath)
			return nil
		}

		return toml.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{"log": logger.GetConfig()})
	},
}

func init() {
	configCmd.Flags().StringVar(&configSavePath, "save", "", "Write the configuration to this TOML file")
}
