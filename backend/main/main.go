package main

import (
	"fmt"
	"os"

	"civicflow/backend/version"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "civicflow",
		Short:         "Civic issue reporting backend",
		Version:       version.BuildVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	serve := newServeCmd()
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve, newInitDBCmd(), newScoreCmd())
	return root
}
