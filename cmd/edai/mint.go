package main

import (
	"fmt"
	"os"

	"github.com/ethicsbuild/edai-hedera-network/pkg/edai"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	metadataFileFlagName  = "metadata-file"
	metadataFileFlagUsage = "YAML file with guardianId, platform, humanWitness, institutionId and capabilities." +
		" Skips the guardian prompts."

	yesFlagName  = "yes"
	yesFlagUsage = "Mint without asking for confirmation."
)

func newMintCommand(flags *globalFlags, options commandOptions) *cobra.Command {
	var metadataFile string
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Mint one guardian credential into the deployed guardian token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input *edai.GuardianInput
			if metadataFile != "" {
				loaded, err := loadGuardianInput(metadataFile)
				if err != nil {
					return err
				}
				input = &loaded
			}

			client, logger, err := newClient(flags, options, "")
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			_, err = client.Mint(cmd.Context(), edai.MintOptions{Input: input, AssumeYes: assumeYes})
			return err
		},
	}

	cmd.Flags().StringVar(&metadataFile, metadataFileFlagName, "", metadataFileFlagUsage)
	cmd.Flags().BoolVarP(&assumeYes, yesFlagName, "y", false, yesFlagUsage)

	return cmd
}

func loadGuardianInput(path string) (edai.GuardianInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return edai.GuardianInput{}, fmt.Errorf("failed to read metadata file: %w", err)
	}

	var input edai.GuardianInput
	if err := yaml.Unmarshal(raw, &input); err != nil {
		return edai.GuardianInput{}, fmt.Errorf("failed to parse metadata file %s: %w", path, err)
	}
	return input, nil
}
