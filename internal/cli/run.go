package cli

import (
	"github.com/spf13/cobra"

	"sampleproc/internal/processor"
)

func newRunCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process the sample data with both pipelines",
		Long: `run prepares the outputs directory tree and executes the image and
signal pipelines against the downloaded sample data. A failing pipeline is
reported but does not stop the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfigDefaults(cmd, flags)

			proc := processor.NewProcessor(&processor.Options{
				DataDir:   flags.DataDir,
				OutputDir: flags.OutputDir,
				Workers:   flags.Workers,
				MaxDim:    flags.MaxDim,
				DSRate:    flags.DSRate,
			})
			return proc.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&flags.DataDir, "data-dir", flags.DataDir, "Directory of downloaded sample data")
	cmd.Flags().StringVar(&flags.OutputDir, "output-dir", flags.OutputDir, "Root of the outputs tree")
	cmd.Flags().IntVar(&flags.Workers, "workers", flags.Workers, "Number of parallel workers per pipeline")

	return cmd
}
