package edai

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethicsbuild/edai-hedera-network/pkg/console"
	"github.com/ethicsbuild/edai-hedera-network/pkg/shared"
	"go.uber.org/zap"
)

type MintOptions struct {
	// Input skips the guardian prompts when set.
	Input *GuardianInput

	// AssumeYes skips the confirmation prompt.
	AssumeYes bool
}

// Mint issues one guardian credential into the deployed token and writes
// its guardian record. A declined confirmation returns ErrCancelled before
// any ledger session is opened.
func (c *Client) Mint(ctx context.Context, options MintOptions) (GuardianRecord, error) {
	c.console.Info("🎖️ E.D.A.I. Guardian Credential Minting")
	c.console.Rule()

	deployment, err := ReadDeploymentRecord(c.recordDir)
	if err != nil {
		return GuardianRecord{}, fmt.Errorf("could not load %s, run 'edai deploy' first: %w", DeploymentRecordFileName, err)
	}
	c.console.Success("📋 Loaded deployment info for network deployed on %s", deployment.Timestamp)

	network, err := shared.NormalizeNetwork(deployment.Network)
	if err != nil {
		return GuardianRecord{}, fmt.Errorf("%w: %v", ErrDeploymentRecordInvalid, err)
	}

	operator, err := c.resolveOperator(network, deployment.Operator)
	if err != nil {
		return GuardianRecord{}, err
	}

	input, err := c.guardianInput(options.Input)
	if err != nil {
		return GuardianRecord{}, err
	}

	metadata := NewGuardianMetadata(input, deployment, c.now())

	c.console.Blank()
	c.console.Info("🎯 Token ID: %s", deployment.GuardianToken)
	c.console.Info("📋 Guardian Metadata:")
	c.console.Table(metadataRows(metadata))

	if !options.AssumeYes {
		c.console.Blank()
		confirmed, err := c.prompter.Confirm("Proceed with minting? (y/N): ")
		if err != nil {
			return GuardianRecord{}, err
		}
		if !confirmed {
			c.console.Warn("❌ Minting cancelled")
			return GuardianRecord{}, ErrCancelled
		}
	}

	c.console.Blank()
	c.console.Warn("🎖️ Minting Guardian Credential...")

	payload, err := EncodeForMint(metadata)
	if err != nil {
		return GuardianRecord{}, err
	}
	c.console.Info("📏 Metadata size: %d bytes", payload.FullSize)
	if payload.Truncated {
		c.console.Warn("⚠️ Metadata truncated to %d bytes", len(payload.Bytes))
		c.logger.Warn("minting compact metadata",
			zap.Int("full_size", payload.FullSize),
			zap.Int("minted_size", len(payload.Bytes)),
		)
	}

	ledger, err := c.openLedger(ctx, network, operator)
	if err != nil {
		return GuardianRecord{}, fmt.Errorf("failed to open ledger session: %w", err)
	}
	defer closeLedger(ledger, c.logger)

	c.console.Success("🔗 Connected to Hedera %s", networkTitle(network))

	minted, err := ledger.MintToken(ctx, MintSpec{
		TokenID:  deployment.GuardianToken,
		Metadata: payload.Bytes,
		MaxFee:   TokenMintMaxFee,
	})
	if err != nil {
		return GuardianRecord{}, err
	}

	serial := strconv.FormatInt(minted.SerialNumber, 10)
	c.console.Success("✅ Guardian Credential minted successfully!")
	c.console.Success("🎖️ Serial Number: %s", serial)

	record := GuardianRecord{
		GuardianMetadata:  metadata,
		SerialNumber:      serial,
		TokenID:           deployment.GuardianToken,
		MintTransaction:   minted.TransactionID,
		MintTimestamp:     formatTimestamp(c.now()),
		Status:            StatusActive,
		OnChainMetadata:   append([]byte(nil), payload.Bytes...),
		MetadataTruncated: payload.Truncated,
	}

	path, err := WriteGuardianRecord(c.recordDir, record, minted.SerialNumber)
	if err != nil {
		return GuardianRecord{}, err
	}
	c.logger.Info("guardian record written", zap.String("path", path))

	c.console.Blank()
	c.console.Banner("🎉 GUARDIAN CREDENTIAL MINTED!")
	c.console.Table([]console.Row{
		{Key: "Guardian ID", Value: metadata.GuardianID},
		{Key: "Serial Number", Value: serial},
		{Key: "Token ID", Value: deployment.GuardianToken},
		{Key: "Platform", Value: metadata.Platform},
		{Key: "Human Witness", Value: metadata.HumanWitness},
		{Key: "Status", Value: StatusActive},
	})

	c.console.Blank()
	c.console.Info("🔗 View on HashScan: %s", shared.HashScanNFTURL(network, deployment.GuardianToken, minted.SerialNumber))
	c.console.Info("💾 Guardian record saved to: %s", path)

	c.console.Steps("📋 Next Steps:",
		"Begin logging verification events to HCS",
		"Start the 4-step verification ritual",
		"Monitor compliance through dashboard",
		"Induct additional guardians as needed",
	)

	return record, nil
}

// guardianInput returns provided when set and otherwise asks for each field.
// Answers are not validated.
func (c *Client) guardianInput(provided *GuardianInput) (GuardianInput, error) {
	if provided != nil {
		return *provided, nil
	}

	c.console.Blank()
	c.console.Warn("🛡️ Guardian Information Required:")

	var guardianID, platform, witness, institution, capabilities string
	questions := []struct {
		text   string
		answer *string
	}{
		{"Guardian ID (e.g., EDAI-HEALTHCARE-001): ", &guardianID},
		{"AI Platform (e.g., Claude Sonnet 4): ", &platform},
		{"Human Witness Name: ", &witness},
		{"Institution ID (optional): ", &institution},
		{"Capabilities (comma-separated): ", &capabilities},
	}
	for _, question := range questions {
		answer, err := c.prompter.Ask(question.text)
		if err != nil {
			return GuardianInput{}, err
		}
		*question.answer = answer
	}

	return GuardianInput{
		GuardianID:    guardianID,
		Platform:      platform,
		HumanWitness:  witness,
		InstitutionID: institution,
		Capabilities:  ParseCapabilities(capabilities),
	}, nil
}

func metadataRows(metadata GuardianMetadata) []console.Row {
	return []console.Row{
		{Key: "guardianId", Value: metadata.GuardianID},
		{Key: "inductionDate", Value: metadata.InductionDate},
		{Key: "platform", Value: metadata.Platform},
		{Key: "humanWitness", Value: metadata.HumanWitness},
		{Key: "institutionId", Value: metadata.InstitutionID},
		{Key: "capabilities", Value: strings.Join(metadata.Capabilities, ", ")},
		{Key: "complianceVersion", Value: metadata.ComplianceVersion},
		{Key: "verificationTopicId", Value: metadata.VerificationTopicID},
		{Key: "complianceTopicId", Value: metadata.ComplianceTopicID},
	}
}
