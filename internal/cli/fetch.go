package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sampleproc/internal/fetch"
)

func newFetchCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "fetch [images|signals|all]",
		Short:     "Download the sample assets",
		Long:      "fetch downloads the sample WAV and image from their fixed URLs into the data directory, overwriting existing copies.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"images", "signals", "all"},
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfigDefaults(cmd, flags)

			target := "all"
			if len(args) > 0 {
				target = args[0]
			}

			var assets []fetch.Asset
			switch target {
			case "images":
				assets = []fetch.Asset{fetch.SampleImage}
			case "signals":
				assets = []fetch.Asset{fetch.SampleSignal}
			case "all":
				assets = fetch.AllAssets()
			}

			fetcher := fetch.NewFetcher(&fetch.Options{
				DataDir:      flags.DataDir,
				MaxSizeBytes: flags.MaxFetchBytes,
			})
			if err := fetcher.FetchAll(cmd.Context(), assets); err != nil {
				return err
			}

			fmt.Println("Sample data downloaded.")
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.DataDir, "data-dir", flags.DataDir, "Directory for downloaded sample data")
	cmd.Flags().Int64Var(&flags.MaxFetchBytes, "max-size", flags.MaxFetchBytes, "Maximum download size in bytes (0 = no limit)")

	return cmd
}
