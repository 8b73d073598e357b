package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sampleproc/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sampleproc",
		Short: "Batch image and signal sample processor",
		Long: `sampleproc fetches sample media files and runs batch processing
pipelines over them.

The image pipeline resizes images, converts them to grayscale and writes
intensity histograms. The signal pipeline turns WAV/CSV waveforms into FFT
magnitude spectra and downsampled waveforms.

Examples:
  sampleproc fetch              # Download the sample WAV and image
  sampleproc run                # Process the sample data into outputs/
  sampleproc images --input_dir data/sample_images --output_dir outputs/images --workers 4
  sampleproc clean              # Remove outputs and cache`,
		Version: internal.Version,
	}

	rootCmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.sampleproc.yaml)")

	rootCmd.AddCommand(newFetchCommand(flags))
	rootCmd.AddCommand(newImagesCommand(flags))
	rootCmd.AddCommand(newSignalsCommand(flags))
	rootCmd.AddCommand(newRunCommand(flags))
	rootCmd.AddCommand(newCleanCommand(flags))

	return rootCmd
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".sampleproc" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sampleproc")
	}

	// Environment variables
	viper.SetEnvPrefix("SAMPLEPROC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// applyConfigDefaults fills flag values from the config file for flags the
// user did not set on the command line.
func applyConfigDefaults(cmd *cobra.Command, flags *Flags) {
	if !cmd.Flags().Changed("workers") && viper.IsSet("pipeline.workers") {
		flags.Workers = viper.GetInt("pipeline.workers")
	}
	if !cmd.Flags().Changed("max_dim") && viper.IsSet("image.max_dim") {
		flags.MaxDim = viper.GetInt("image.max_dim")
	}
	if !cmd.Flags().Changed("ds_rate") && viper.IsSet("signal.ds_rate") {
		flags.DSRate = viper.GetInt("signal.ds_rate")
	}
	if !cmd.Flags().Changed("data-dir") && viper.IsSet("fetch.data_dir") {
		flags.DataDir = viper.GetString("fetch.data_dir")
	}
	if !cmd.Flags().Changed("output-dir") && viper.IsSet("output.directory") {
		flags.OutputDir = viper.GetString("output.directory")
	}
}
