package cli

import (
	"github.com/spf13/cobra"

	conf "github.com/yaptide/activetarget/config"
	"github.com/yaptide/activetarget/plot"
)

func plotCmd(config conf.Config) *cobra.Command {
	input := config.OutputFile
	outDir := config.PlotDir

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "convert a diagnostics file into per-histogram plots",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := plot.Convert(input, outDir, plot.DefaultNames, plot.DefaultRanges)
			if err != nil {
				return err
			}

			log.Infof("Wrote %d plots to %s", len(result.Written), outDir)
			for _, name := range result.Skipped {
				log.Warnf("Skipped %s: not present in %s", name, input)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", input, "diagnostics file to read")
	cmd.Flags().StringVar(&outDir, "out-dir", outDir, "directory receiving the plot files")
	return cmd
}
