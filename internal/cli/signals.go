package cli

import (
	"github.com/spf13/cobra"

	"sampleproc/internal/pipeline"
	"sampleproc/internal/signalpipe"
)

func newSignalsCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signals --input_dir DIR --output_dir DIR",
		Short: "Run the signal pipeline",
		Long: `signals computes an FFT magnitude spectrum CSV and a downsampled
waveform CSV for every WAV and single-column numeric CSV under the input
directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfigDefaults(cmd, flags)

			results, err := signalpipe.Run(cmd.Context(), &signalpipe.Options{
				InputDir:  flags.InputDir,
				OutputDir: flags.OutputDir,
				Workers:   flags.Workers,
				DSRate:    flags.DSRate,
			})
			if err != nil {
				return err
			}

			printSummary(pipeline.Summarize(results))
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.InputDir, "input_dir", "", "Directory of input WAV/CSV files")
	cmd.Flags().StringVar(&flags.OutputDir, "output_dir", "", "Directory for processed outputs")
	cmd.Flags().IntVar(&flags.Workers, "workers", flags.Workers, "Number of parallel workers")
	cmd.Flags().IntVar(&flags.DSRate, "ds_rate", flags.DSRate, "Target rate for the downsampled waveform")
	cmd.MarkFlagRequired("input_dir")
	cmd.MarkFlagRequired("output_dir")

	return cmd
}
