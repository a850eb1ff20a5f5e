package main

import (
	"github.com/ethicsbuild/edai-hedera-network/pkg/edai"
	"github.com/spf13/cobra"
)

func newDeployCommand(flags *globalFlags, options commandOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "deploy",
		Short: "Create the guardian token and the verification and compliance topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, logger, err := newClient(flags, options, "")
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			_, err = client.Deploy(cmd.Context(), edai.DeployOptions{Network: resolveNetwork(flags.network)})
			return err
		},
	}
}
