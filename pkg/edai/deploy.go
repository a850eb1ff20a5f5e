package edai

import (
	"context"
	"fmt"

	"github.com/ethicsbuild/edai-hedera-network/pkg/console"
	"github.com/ethicsbuild/edai-hedera-network/pkg/shared"
	"go.uber.org/zap"
)

type DeployOptions struct {
	Network string
}

// Deploy provisions the guardian token and the verification and compliance
// topics, then writes deployment-info.json.
//
// The three transactions are not atomic. When a later one fails the earlier
// resources stay on the ledger and no record is written.
func (c *Client) Deploy(ctx context.Context, options DeployOptions) (DeploymentRecord, error) {
	network, err := shared.NormalizeNetwork(options.Network)
	if err != nil {
		return DeploymentRecord{}, err
	}

	c.console.Info("🚀 E.D.A.I. Hedera %s Deployment Starting...", networkTitle(network))
	c.console.Rule()

	operator, err := c.resolveOperator(network, "")
	if err != nil {
		return DeploymentRecord{}, err
	}

	ledger, err := c.openLedger(ctx, network, operator)
	if err != nil {
		return DeploymentRecord{}, fmt.Errorf("failed to open ledger session: %w", err)
	}
	defer closeLedger(ledger, c.logger)

	c.console.Success("🔗 Connected to Hedera %s", networkTitle(network))
	c.console.Info("📱 Operator Account: %s", operator.AccountID)

	c.console.Blank()
	c.console.Warn("🛡️ Phase 1: Deploying Guardian Token...")
	token, err := ledger.CreateToken(ctx, GuardianTokenSpec())
	if err != nil {
		return DeploymentRecord{}, err
	}
	c.console.Success("✅ Guardian Token deployed: %s", token.EntityID)

	c.console.Blank()
	c.console.Warn("📝 Phase 2: Creating HCS Verification Topic...")
	verification, err := ledger.CreateTopic(ctx, VerificationTopicSpec())
	if err != nil {
		c.logger.Error("deployment incomplete; guardian token is orphaned", zap.String("token_id", token.EntityID))
		return DeploymentRecord{}, err
	}
	c.console.Success("✅ Verification Topic created: %s", verification.EntityID)

	c.console.Blank()
	c.console.Warn("⚖️ Phase 3: Creating HCS Compliance Topic...")
	compliance, err := ledger.CreateTopic(ctx, ComplianceTopicSpec())
	if err != nil {
		c.logger.Error("deployment incomplete; guardian token and verification topic are orphaned",
			zap.String("token_id", token.EntityID),
			zap.String("verification_topic_id", verification.EntityID),
		)
		return DeploymentRecord{}, err
	}
	c.console.Success("✅ Compliance Topic created: %s", compliance.EntityID)

	record := DeploymentRecord{
		Timestamp:         formatTimestamp(c.now()),
		Network:           network,
		Operator:          operator.AccountID,
		GuardianToken:     token.EntityID,
		VerificationTopic: verification.EntityID,
		ComplianceTopic:   compliance.EntityID,
		Status:            StatusDeployed,
	}

	c.console.Blank()
	c.console.Banner(fmt.Sprintf("🎉 E.D.A.I. %s DEPLOYMENT COMPLETE!", networkHeading(network)))
	c.console.Table([]console.Row{
		{Key: "timestamp", Value: record.Timestamp},
		{Key: "network", Value: record.Network},
		{Key: "operator", Value: record.Operator},
		{Key: "guardianToken", Value: record.GuardianToken},
		{Key: "verificationTopic", Value: record.VerificationTopic},
		{Key: "complianceTopic", Value: record.ComplianceTopic},
		{Key: "status", Value: record.Status},
	})

	c.console.Blank()
	c.console.Info("🔗 Network URLs:")
	c.console.Info("Guardian Token: %s", shared.HashScanTokenURL(network, record.GuardianToken))
	c.console.Info("Verification Topic: %s", shared.HashScanTopicURL(network, record.VerificationTopic))
	c.console.Info("Compliance Topic: %s", shared.HashScanTopicURL(network, record.ComplianceTopic))

	c.console.Steps("📋 Next Steps:",
		"Run 'edai mint' to create your first guardian",
		"Begin guardian induction ceremonies",
		"Start logging verification events to HCS",
		"Share network details with institutions",
	)

	path, err := WriteDeploymentRecord(c.recordDir, record)
	if err != nil {
		return DeploymentRecord{}, err
	}
	c.logger.Info("deployment record written", zap.String("path", path))

	c.console.Blank()
	c.console.Info("💾 Deployment info saved to %s", path)

	return record, nil
}

func networkTitle(network string) string {
	if network == shared.NetworkMainnet {
		return "Mainnet"
	}
	return "Testnet"
}

func networkHeading(network string) string {
	if network == shared.NetworkMainnet {
		return "MAINNET"
	}
	return "TESTNET"
}
