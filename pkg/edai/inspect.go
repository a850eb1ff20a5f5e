package edai

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ethicsbuild/edai-hedera-network/pkg/console"
	"github.com/ethicsbuild/edai-hedera-network/pkg/mirror"
	"github.com/ethicsbuild/edai-hedera-network/pkg/shared"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"go.uber.org/zap"
)

type InspectOptions struct {
	// Serial, when positive, also looks up that minted credential.
	Serial int64
}

// InspectReport is what the mirror node reports about a deployment.
type InspectReport struct {
	Deployment        DeploymentRecord
	Operator          mirror.AccountInfo
	Token             mirror.TokenInfo
	VerificationTopic mirror.TopicInfo
	ComplianceTopic   mirror.TopicInfo
	NFT               *mirror.NFTInfo
	NFTMetadata       string
}

// Inspect reads deployment-info.json and looks up the recorded entities on
// the mirror node. It submits no transactions.
func (c *Client) Inspect(ctx context.Context, options InspectOptions) (InspectReport, error) {
	deployment, err := ReadDeploymentRecord(c.recordDir)
	if err != nil {
		return InspectReport{}, fmt.Errorf("could not load %s, run 'edai deploy' first: %w", DeploymentRecordFileName, err)
	}

	network, err := shared.NormalizeNetwork(deployment.Network)
	if err != nil {
		return InspectReport{}, fmt.Errorf("%w: %v", ErrDeploymentRecordInvalid, err)
	}

	reader, err := c.openMirror(network)
	if err != nil {
		return InspectReport{}, err
	}

	report := InspectReport{Deployment: deployment}

	if report.Operator, err = reader.GetAccount(ctx, deployment.Operator); err != nil {
		return InspectReport{}, fmt.Errorf("failed to look up operator %s: %w", deployment.Operator, err)
	}
	if report.Token, err = reader.GetToken(ctx, deployment.GuardianToken); err != nil {
		return InspectReport{}, fmt.Errorf("failed to look up guardian token %s: %w", deployment.GuardianToken, err)
	}
	if report.VerificationTopic, err = reader.GetTopicInfo(ctx, deployment.VerificationTopic); err != nil {
		return InspectReport{}, fmt.Errorf("failed to look up verification topic %s: %w", deployment.VerificationTopic, err)
	}
	if report.ComplianceTopic, err = reader.GetTopicInfo(ctx, deployment.ComplianceTopic); err != nil {
		return InspectReport{}, fmt.Errorf("failed to look up compliance topic %s: %w", deployment.ComplianceTopic, err)
	}

	if options.Serial > 0 {
		nft, err := reader.GetNFT(ctx, deployment.GuardianToken, options.Serial)
		if err != nil {
			return InspectReport{}, fmt.Errorf("failed to look up serial %d: %w", options.Serial, err)
		}
		report.NFT = &nft

		payload, err := mirror.DecodeNFTMetadata(nft)
		if err != nil {
			c.logger.Warn("minted metadata unreadable", zap.Int64("serial", options.Serial), zap.Error(err))
		} else {
			report.NFTMetadata = string(payload)
		}
	}

	c.printReport(network, report)
	return report, nil
}

func (c *Client) printReport(network string, report InspectReport) {
	c.console.Banner(fmt.Sprintf("🔎 E.D.A.I. %s DEPLOYMENT", networkHeading(network)))
	c.console.Table([]console.Row{
		{Key: "deployed", Value: report.Deployment.Timestamp},
		{Key: "operator", Value: report.Operator.Account},
		{Key: "operator balance", Value: hedera.HbarFromTinybar(report.Operator.Balance.Balance).String()},
		{Key: "token", Value: fmt.Sprintf("%s (%s)", report.Token.TokenID, report.Token.Symbol)},
		{Key: "token name", Value: report.Token.Name},
		{Key: "credentials minted", Value: report.Token.TotalSupply},
		{Key: "verification topic", Value: topicSummary(report.VerificationTopic)},
		{Key: "compliance topic", Value: topicSummary(report.ComplianceTopic)},
	})

	if report.NFT != nil {
		c.console.Blank()
		c.console.Info("🎖️ Serial %d", report.NFT.SerialNumber)
		c.console.Table([]console.Row{
			{Key: "holder", Value: report.NFT.AccountID},
			{Key: "minted", Value: report.NFT.CreatedTimestamp},
			{Key: "deleted", Value: strconv.FormatBool(report.NFT.Deleted)},
			{Key: "metadata", Value: report.NFTMetadata},
		})
		c.console.Info("🔗 %s", shared.HashScanNFTURL(network, report.Token.TokenID, report.NFT.SerialNumber))
	}
}

func topicSummary(topic mirror.TopicInfo) string {
	if topic.Deleted {
		return topic.TopicID + " (deleted)"
	}
	return topic.TopicID
}
