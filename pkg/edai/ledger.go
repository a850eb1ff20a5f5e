package edai

import (
	"context"
	"fmt"

	"github.com/ethicsbuild/edai-hedera-network/pkg/shared"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"go.uber.org/zap"
)

// Ledger is the network collaborator the workflows submit transactions to.
// Each call returns only after the transaction's receipt is known.
type Ledger interface {
	CreateToken(ctx context.Context, spec TokenSpec) (CreateResult, error)
	CreateTopic(ctx context.Context, spec TopicSpec) (CreateResult, error)
	MintToken(ctx context.Context, spec MintSpec) (MintResult, error)
	Close() error
}

// LedgerOpener opens a session for operator on network.
type LedgerOpener func(ctx context.Context, network string, operator shared.OperatorConfig) (Ledger, error)

type HederaLedger struct {
	hederaClient *hedera.Client
	operatorID   hedera.AccountID
	operatorKey  hedera.PrivateKey
	logger       *zap.Logger
}

// NewHederaLedgerOpener returns a LedgerOpener backed by the Hedera SDK.
func NewHederaLedgerOpener(logger *zap.Logger) LedgerOpener {
	return func(ctx context.Context, network string, operator shared.OperatorConfig) (Ledger, error) {
		return OpenHederaLedger(network, operator, logger)
	}
}

// OpenHederaLedger creates a Hedera client with operator as the payer.
func OpenHederaLedger(network string, operator shared.OperatorConfig, logger *zap.Logger) (*HederaLedger, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	hederaClient, operatorID, operatorKey, err := shared.NewOperatorClient(network, operator.AccountID, operator.PrivateKey)
	if err != nil {
		return nil, err
	}

	return &HederaLedger{
		hederaClient: hederaClient,
		operatorID:   operatorID,
		operatorKey:  operatorKey,
		logger:       logger.With(zap.String("network", network), zap.String("operator", operatorID.String())),
	}, nil
}

func (l *HederaLedger) CreateToken(ctx context.Context, spec TokenSpec) (CreateResult, error) {
	if err := ctx.Err(); err != nil {
		return CreateResult{}, err
	}

	transaction, err := BuildGuardianTokenCreateTx(spec, l.operatorID, l.operatorKey.PublicKey())
	if err != nil {
		return CreateResult{}, err
	}

	response, err := transaction.Execute(l.hederaClient)
	if err != nil {
		return CreateResult{}, newTransactionError(OperationCreateToken, err)
	}
	l.logger.Debug("transaction submitted",
		zap.String("operation", string(OperationCreateToken)),
		zap.String("transaction_id", response.TransactionID.String()),
	)

	receipt, err := response.GetReceipt(l.hederaClient)
	if err != nil {
		return CreateResult{}, newTransactionError(OperationCreateToken, err)
	}
	if receipt.TokenID == nil {
		return CreateResult{}, &TransactionError{
			Operation: OperationCreateToken,
			Status:    receipt.Status,
			HasStatus: true,
			Err:       fmt.Errorf("token ID missing in create token receipt"),
		}
	}

	l.logger.Info("token created",
		zap.String("token_id", receipt.TokenID.String()),
		zap.String("transaction_id", response.TransactionID.String()),
	)

	return CreateResult{
		EntityID:      receipt.TokenID.String(),
		TransactionID: response.TransactionID.String(),
	}, nil
}

func (l *HederaLedger) CreateTopic(ctx context.Context, spec TopicSpec) (CreateResult, error) {
	if err := ctx.Err(); err != nil {
		return CreateResult{}, err
	}

	response, err := BuildTopicCreateTx(spec, l.operatorKey.PublicKey()).Execute(l.hederaClient)
	if err != nil {
		return CreateResult{}, newTransactionError(OperationCreateTopic, err)
	}
	l.logger.Debug("transaction submitted",
		zap.String("operation", string(OperationCreateTopic)),
		zap.String("transaction_id", response.TransactionID.String()),
	)

	receipt, err := response.GetReceipt(l.hederaClient)
	if err != nil {
		return CreateResult{}, newTransactionError(OperationCreateTopic, err)
	}
	if receipt.TopicID == nil {
		return CreateResult{}, &TransactionError{
			Operation: OperationCreateTopic,
			Status:    receipt.Status,
			HasStatus: true,
			Err:       fmt.Errorf("topic ID missing in create topic receipt"),
		}
	}

	l.logger.Info("topic created",
		zap.String("topic_id", receipt.TopicID.String()),
		zap.String("memo", spec.Memo),
	)

	return CreateResult{
		EntityID:      receipt.TopicID.String(),
		TransactionID: response.TransactionID.String(),
	}, nil
}

func (l *HederaLedger) MintToken(ctx context.Context, spec MintSpec) (MintResult, error) {
	if err := ctx.Err(); err != nil {
		return MintResult{}, err
	}

	transaction, err := BuildGuardianMintTx(spec)
	if err != nil {
		return MintResult{}, err
	}

	response, err := transaction.Execute(l.hederaClient)
	if err != nil {
		return MintResult{}, newTransactionError(OperationMintToken, err)
	}
	l.logger.Debug("transaction submitted",
		zap.String("operation", string(OperationMintToken)),
		zap.String("transaction_id", response.TransactionID.String()),
	)

	receipt, err := response.GetReceipt(l.hederaClient)
	if err != nil {
		return MintResult{}, newTransactionError(OperationMintToken, err)
	}
	if len(receipt.SerialNumbers) == 0 {
		return MintResult{}, &TransactionError{
			Operation: OperationMintToken,
			Status:    receipt.Status,
			HasStatus: true,
			Err:       fmt.Errorf("serial number missing in mint receipt"),
		}
	}

	l.logger.Info("token minted",
		zap.String("token_id", spec.TokenID),
		zap.Int64("serial", receipt.SerialNumbers[0]),
	)

	return MintResult{
		SerialNumber:  receipt.SerialNumbers[0],
		TransactionID: response.TransactionID.String(),
	}, nil
}

func (l *HederaLedger) Close() error {
	return l.hederaClient.Close()
}
