package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	conf "github.com/yaptide/activetarget/config"
	"github.com/yaptide/activetarget/geometry"
)

func layoutCmd(config conf.Config) *cobra.Command {
	variant := config.Variant
	variantsFile := config.VariantsFile

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "print the layer layout of a detector variant",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := loadParams(variantsFile)
			if err != nil {
				return err
			}

			configuration, err := geometry.NewBuilder(params).Configure(variant)
			if err != nil {
				return err
			}

			printLayout(configuration)
			return nil
		},
	}

	cmd.Flags().StringVar(&variant, "variant", variant, "detector variant to build")
	cmd.Flags().StringVar(&variantsFile, "variants-file", variantsFile, "YAML variant parameter overrides")
	return cmd
}

func printLayout(configuration *geometry.DetectorConfiguration) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "index\tname\tmaterial\tcenter z [mm]\tthickness [mm]\trole\n")
	for i, volume := range configuration.Targets.Volumes() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%.2f\t%s\n",
			i, volume.Name, volume.Material.Name, volume.CenterZ, volume.Thickness, volume.Role)
	}
	w.Flush()

	for _, field := range configuration.Fields {
		scopeNote := "whole world"
		if field.Scope == geometry.FieldScopeLocal {
			scopeNote = field.Volume.Name
		}
		fmt.Printf("field: (%g, %g, %g) T, scope %s (%s)\n",
			field.Value.X, field.Value.Y, field.Value.Z, field.Scope, scopeNote)
	}
	if configuration.Gas != nil {
		fmt.Printf("gas region: z in [%.2f, %.2f] mm, center %.2f mm\n",
			configuration.Gas.ZStart, configuration.Gas.ZEnd, configuration.Gas.ZCenter)
	}
}
