package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/estensen/merkletree/internal/config"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file for " + appName + ".",
		Long:  `Create a configuration file for ` + appName + ` holding the default settings.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath(cmd)
			force, _ := cmd.Flags().GetBool("force")

			if err := config.Save(config.Default(), path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
	return cmd
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.DefaultPath
	}
	return path
}
