package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sensego/sensego/sense/trace"
)

// inspectCmd summarizes a previously written trace file
var inspectCmd = &cobra.Command{
	Use:   "inspect <trace.json>",
	Short: "Summarize a recorded sensing trace",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		et, err := trace.ReadJSON(args[0])
		if err != nil {
			logrus.Fatalf("Loading trace: %v", err)
		}
		fmt.Printf("Run %s (seed %d, policy %s)\n", et.RunID, et.Seed, et.Policy)
		trace.Summarize(et).Print()
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
