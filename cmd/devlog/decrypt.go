// FILE: lixenwraith/devlog/cmd/devlog/decrypt.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/devlog"
	"github.com/lixenwraith/devlog/crypt"
)

var decryptKey string

var decryptCmd = &cobra.Command{
	Use:   "decrypt <file>",
	Short: "Print the plain text of an encrypted day file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := decryptKey
		if key == "" {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			key = cfg.EncryptionKey
		}

		aes, err := crypt.NewAES([]byte(key))
		if err != nil {
			return err
		}

		n, err := devlog.DecryptFile(args[0], aes, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%d entries\n", n)
		return nil
	},
}

func init() {
	decryptCmd.Flags().StringVarP(&decryptKey, "key", "k", "", "AES key (default: encryption_key from config)")
}
