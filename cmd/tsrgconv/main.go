package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var verbosity int
	var quiet bool

	rootCmd := &cobra.Command{
		Use:   "tsrgconv",
		Short: "Convert ProGuard deobfuscation mappings to TSRG",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if quiet {
				verbosity = -4
			}
			commonlog.Configure(verbosity, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress log output")

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newClassesCmd())
	rootCmd.AddCommand(newShowCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
