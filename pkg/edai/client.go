package edai

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethicsbuild/edai-hedera-network/pkg/console"
	"github.com/ethicsbuild/edai-hedera-network/pkg/mirror"
	"github.com/ethicsbuild/edai-hedera-network/pkg/prompt"
	"github.com/ethicsbuild/edai-hedera-network/pkg/shared"
	"go.uber.org/zap"
)

// Prompter asks the operator for missing input.
type Prompter interface {
	Ask(question string) (string, error)
	AskSecret(question string) (string, error)
	Confirm(question string) (bool, error)
}

// MirrorReader is the read-only view of the network used by Inspect.
type MirrorReader interface {
	GetToken(ctx context.Context, tokenID string) (mirror.TokenInfo, error)
	GetNFT(ctx context.Context, tokenID string, serial int64) (mirror.NFTInfo, error)
	GetTopicInfo(ctx context.Context, topicID string) (mirror.TopicInfo, error)
	GetAccount(ctx context.Context, accountID string) (mirror.AccountInfo, error)
}

type MirrorOpener func(network string) (MirrorReader, error)

type ClientConfig struct {
	// RecordDir holds deployment-info.json and guardian records.
	RecordDir string

	// LookupOperator resolves operator credentials for a network without
	// prompting. Defaults to shared.LookupOperatorConfig.
	LookupOperator func(network string) shared.OperatorConfig

	OpenLedger    LedgerOpener
	OpenMirror    MirrorOpener
	MirrorBaseURL string

	Prompter Prompter
	Console  *console.Printer
	Logger   *zap.Logger
	Now      func() time.Time
}

type Client struct {
	recordDir      string
	lookupOperator func(network string) shared.OperatorConfig
	openLedger     LedgerOpener
	openMirror     MirrorOpener
	prompter       Prompter
	console        *console.Printer
	logger         *zap.Logger
	now            func() time.Time
}

// NewClient fills unset dependencies with the Hedera, mirror node, stdin and
// stdout defaults.
func NewClient(config ClientConfig) *Client {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	recordDir := strings.TrimSpace(config.RecordDir)
	if recordDir == "" {
		recordDir = "."
	}

	lookupOperator := config.LookupOperator
	if lookupOperator == nil {
		lookupOperator = shared.LookupOperatorConfig
	}

	openLedger := config.OpenLedger
	if openLedger == nil {
		openLedger = NewHederaLedgerOpener(logger)
	}

	openMirror := config.OpenMirror
	if openMirror == nil {
		mirrorBaseURL := config.MirrorBaseURL
		openMirror = func(network string) (MirrorReader, error) {
			mirrorClient, err := mirror.NewClient(mirror.Config{Network: network, BaseURL: mirrorBaseURL})
			if err != nil {
				return nil, err
			}
			return mirrorClient, nil
		}
	}

	printer := config.Console
	if printer == nil {
		printer = console.New(os.Stdout)
	}

	prompter := config.Prompter
	if prompter == nil {
		prompter = prompt.New(os.Stdin, os.Stdout)
	}

	now := config.Now
	if now == nil {
		now = time.Now
	}

	return &Client{
		recordDir:      recordDir,
		lookupOperator: lookupOperator,
		openLedger:     openLedger,
		openMirror:     openMirror,
		prompter:       prompter,
		console:        printer,
		logger:         logger,
		now:            now,
	}
}

// resolveOperator fills credentials missing from the environment through
// the prompter. The account prompt is skipped when fallbackAccount is set.
func (c *Client) resolveOperator(network string, fallbackAccount string) (shared.OperatorConfig, error) {
	operator := c.lookupOperator(network)
	operator.Network = network

	if strings.TrimSpace(operator.AccountID) == "" {
		operator.AccountID = strings.TrimSpace(fallbackAccount)
	}
	if strings.TrimSpace(operator.AccountID) == "" {
		answer, err := c.prompter.Ask("Enter Hedera Account ID (0.0.xxxxx): ")
		if err != nil {
			return shared.OperatorConfig{}, err
		}
		operator.AccountID = answer
	}
	if strings.TrimSpace(operator.PrivateKey) == "" {
		answer, err := c.prompter.AskSecret("Enter Private Key: ")
		if err != nil {
			return shared.OperatorConfig{}, err
		}
		operator.PrivateKey = answer
	}

	if missing := operator.Missing(); len(missing) > 0 {
		return shared.OperatorConfig{}, fmt.Errorf(
			"%w: set %s or enter them when prompted",
			ErrMissingCredentials,
			strings.Join(missing, " and "),
		)
	}

	return operator, nil
}

func closeLedger(ledger Ledger, logger *zap.Logger) {
	if err := ledger.Close(); err != nil {
		logger.Warn("failed to close ledger session", zap.Error(err))
	}
}
