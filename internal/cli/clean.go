package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sampleproc/internal/workspace"
)

func newCleanCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove outputs and cache state",
		Long:  "clean empties the outputs directory and removes the cache directory. Downloaded sample data is kept.",
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfigDefaults(cmd, flags)

			layout := &workspace.Layout{
				DataDir:   flags.DataDir,
				OutputDir: flags.OutputDir,
			}
			if err := layout.Clean(); err != nil {
				return err
			}

			fmt.Println("Workspace cleaned.")
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.OutputDir, "output-dir", flags.OutputDir, "Root of the outputs tree")

	return cmd
}
