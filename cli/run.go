package cli

import (
	"github.com/spf13/cobra"

	conf "github.com/yaptide/activetarget/config"
	"github.com/yaptide/activetarget/run"
	"github.com/yaptide/activetarget/runner"
	"github.com/yaptide/activetarget/score"
)

func runCmd(config conf.Config) *cobra.Command {
	variant := config.Variant
	events := config.Events
	output := config.OutputFile
	variantsFile := config.VariantsFile
	var seed int64
	var trackStopZ bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "drive a synthetic beam through the diagnostics pipeline",
		Long: "builds the selected detector variant and drives a deterministic " +
			"synthetic beam through the run/event/track/step hooks, writing the " +
			"histogram artifact at run end",
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := loadParams(variantsFile)
			if err != nil {
				return err
			}

			configuration, err := run.BuildGeometry(params, variant)
			if err != nil {
				return err
			}

			context := run.New(configuration, score.Options{
				OutputFile:       output,
				RecordTrackStopZ: trackStopZ,
			})

			retained, err := runner.NewLocal(events, seed).Run(context)
			if err != nil {
				return err
			}
			log.Infof("Run finished: %d of %d events retained, output in %s",
				retained, events, output)
			return nil
		},
	}

	cmd.Flags().StringVar(&variant, "variant", variant, "detector variant to build")
	cmd.Flags().IntVar(&events, "events", events, "number of synthetic events")
	cmd.Flags().StringVar(&output, "output", output, "diagnostics output file")
	cmd.Flags().StringVar(&variantsFile, "variants-file", variantsFile, "YAML variant parameter overrides")
	cmd.Flags().Int64Var(&seed, "seed", 1, "beam sampling seed")
	cmd.Flags().BoolVar(&trackStopZ, "track-stop-z", false, "record the secondary track-level stop-z histogram")
	return cmd
}
