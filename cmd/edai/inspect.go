package main

import (
	"github.com/ethicsbuild/edai-hedera-network/pkg/edai"
	"github.com/spf13/cobra"
)

const (
	serialFlagName  = "serial"
	serialFlagUsage = "Also look up this guardian credential serial number."

	mirrorURLFlagName  = "mirror-url"
	mirrorURLFlagUsage = "Mirror node base URL. Defaults to the public mirror node of the recorded network."
)

func newInspectCommand(flags *globalFlags, options commandOptions) *cobra.Command {
	var serial int64
	var mirrorURL string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show what the mirror node reports about the recorded deployment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, logger, err := newClient(flags, options, mirrorURL)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			_, err = client.Inspect(cmd.Context(), edai.InspectOptions{Serial: serial})
			return err
		},
	}

	cmd.Flags().Int64Var(&serial, serialFlagName, 0, serialFlagUsage)
	cmd.Flags().StringVar(&mirrorURL, mirrorURLFlagName, "", mirrorURLFlagUsage)

	return cmd
}
