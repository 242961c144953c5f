// Package cli exposes the activetarget command tree.
package cli

import (
	"github.com/spf13/cobra"

	conf "github.com/yaptide/activetarget/config"
	"github.com/yaptide/activetarget/geometry"
)

var log = conf.NamedLogger("cli")

// Launch ...
func Launch() {
	config := conf.Read()

	var rootCmd = &cobra.Command{Use: "activetarget"}
	rootCmd.AddCommand(
		runCmd(config),
		layoutCmd(config),
		plotCmd(config),
	)
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
	}
}

// loadParams reads variant overrides when a file is configured.
func loadParams(variantsFile string) (geometry.Params, error) {
	if variantsFile == "" {
		return geometry.DefaultParams(), nil
	}
	return geometry.LoadParams(variantsFile)
}
