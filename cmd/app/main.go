package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "gymguru",
		Short: "Gym Guru membership backend",
		Long: `Gym Guru membership backend.

Serves the HTTP API used by the Gym Guru web client: member registration,
login, profile updates, subscription plans, skills and member interests.

Examples:
  gymguru serve                      # listen on $PORT (default 4000)
  gymguru serve --port 8080          # override the port
  gymguru serve --env-file prod.env  # load settings from another file`,
		SilenceUsage: true,
	}
	root.AddCommand(newServeCommand())
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
