package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sampleproc/internal/imagepipe"
	"sampleproc/internal/pipeline"
)

func newImagesCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images --input_dir DIR --output_dir DIR",
		Short: "Run the image pipeline",
		Long: `images resizes every image under the input directory to a maximum
dimension, converts it to grayscale, and writes the grayscale PNG plus a
256-bin intensity histogram CSV to the output directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfigDefaults(cmd, flags)

			results, err := imagepipe.Run(cmd.Context(), &imagepipe.Options{
				InputDir:  flags.InputDir,
				OutputDir: flags.OutputDir,
				Workers:   flags.Workers,
				MaxDim:    flags.MaxDim,
			})
			if err != nil {
				return err
			}

			printSummary(pipeline.Summarize(results))
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.InputDir, "input_dir", "", "Directory of input images")
	cmd.Flags().StringVar(&flags.OutputDir, "output_dir", "", "Directory for processed outputs")
	cmd.Flags().IntVar(&flags.Workers, "workers", flags.Workers, "Number of parallel workers")
	cmd.Flags().IntVar(&flags.MaxDim, "max_dim", flags.MaxDim, "Maximum image dimension after resize")
	cmd.MarkFlagRequired("input_dir")
	cmd.MarkFlagRequired("output_dir")

	return cmd
}

func printSummary(s pipeline.Summary) {
	fmt.Printf("\nProcessed %d files (%d ok, %d failed)\n", s.Total, s.OK, s.Failed)
}
