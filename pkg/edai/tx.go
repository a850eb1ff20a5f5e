package edai

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// BuildGuardianTokenCreateTx builds the credential class creation. The
// operator's key controls admin, supply and metadata updates.
func BuildGuardianTokenCreateTx(
	spec TokenSpec,
	treasury hedera.AccountID,
	key hedera.Key,
) (*hedera.TokenCreateTransaction, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return nil, fmt.Errorf("token name is required")
	}
	if strings.TrimSpace(spec.Symbol) == "" {
		return nil, fmt.Errorf("token symbol is required")
	}
	if key == nil {
		return nil, fmt.Errorf("token key is required")
	}

	transaction := hedera.NewTokenCreateTransaction().
		SetTokenName(spec.Name).
		SetTokenSymbol(spec.Symbol).
		SetTokenType(hedera.TokenTypeNonFungibleUnique).
		SetSupplyType(hedera.TokenSupplyTypeInfinite).
		SetDecimals(0).
		SetInitialSupply(0).
		SetTreasuryAccountID(treasury).
		SetSupplyKey(key).
		SetAdminKey(key).
		SetMetadataKey(key).
		SetTokenMemo(spec.Memo).
		SetMaxTransactionFee(spec.MaxFee)

	return transaction, nil
}

// BuildTopicCreateTx builds a consensus topic creation administered and
// written to by key.
func BuildTopicCreateTx(spec TopicSpec, key hedera.Key) *hedera.TopicCreateTransaction {
	transaction := hedera.NewTopicCreateTransaction().
		SetTopicMemo(spec.Memo).
		SetMaxTransactionFee(spec.MaxFee)

	if key != nil {
		transaction.SetAdminKey(key)
		transaction.SetSubmitKey(key)
	}

	return transaction
}

// BuildGuardianMintTx builds a single-serial mint carrying spec.Metadata.
func BuildGuardianMintTx(spec MintSpec) (*hedera.TokenMintTransaction, error) {
	trimmedTokenID := strings.TrimSpace(spec.TokenID)
	if trimmedTokenID == "" {
		return nil, fmt.Errorf("token ID is required")
	}
	if len(spec.Metadata) == 0 {
		return nil, fmt.Errorf("metadata is required")
	}

	tokenID, err := hedera.TokenIDFromString(trimmedTokenID)
	if err != nil {
		return nil, fmt.Errorf("invalid token ID: %w", err)
	}

	transaction := hedera.NewTokenMintTransaction().
		SetTokenID(tokenID).
		SetMetadata(spec.Metadata).
		SetMaxTransactionFee(spec.MaxFee)

	return transaction, nil
}
