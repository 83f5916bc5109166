package main

import (
	"fmt"

	"doom-fire/internal/config"

	"github.com/spf13/cobra"
)

func newConfigCmd(cfg *config.Config) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "write the effective configuration as yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(out, cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "doomfire.yaml", "output path")
	return cmd
}
