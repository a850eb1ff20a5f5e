package shared

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
)

const hashScanBaseURL = "https://hashscan.io"

// NormalizeNetwork lower-cases and validates a network name. An empty value
// resolves to testnet.
func NormalizeNetwork(network string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(network))
	if normalized == "" {
		return NetworkTestnet, nil
	}

	switch normalized {
	case NetworkMainnet, NetworkTestnet:
		return normalized, nil
	default:
		return "", fmt.Errorf("unsupported network %q", network)
	}
}

// NewHederaClient creates an unauthenticated client for the named network.
func NewHederaClient(network string) (*hedera.Client, error) {
	normalized, err := NormalizeNetwork(network)
	if err != nil {
		return nil, err
	}

	if normalized == NetworkMainnet {
		return hedera.ClientForMainnet(), nil
	}

	return hedera.ClientForTestnet(), nil
}

// NewOperatorClient creates a client for the named network with the given
// account and key set as the paying operator.
func NewOperatorClient(network string, accountID string, privateKey string) (*hedera.Client, hedera.AccountID, hedera.PrivateKey, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, hedera.AccountID{}, hedera.PrivateKey{}, fmt.Errorf("operator account ID is required")
	}
	if strings.TrimSpace(privateKey) == "" {
		return nil, hedera.AccountID{}, hedera.PrivateKey{}, fmt.Errorf("operator private key is required")
	}

	operatorID, err := hedera.AccountIDFromString(strings.TrimSpace(accountID))
	if err != nil {
		return nil, hedera.AccountID{}, hedera.PrivateKey{}, fmt.Errorf("invalid operator account ID: %w", err)
	}

	operatorKey, err := ParsePrivateKey(privateKey)
	if err != nil {
		return nil, hedera.AccountID{}, hedera.PrivateKey{}, err
	}

	hederaClient, err := NewHederaClient(network)
	if err != nil {
		return nil, hedera.AccountID{}, hedera.PrivateKey{}, err
	}
	hederaClient.SetOperator(operatorID, operatorKey)

	return hederaClient, operatorID, operatorKey, nil
}

// HashScanTokenURL returns the explorer page for a token.
func HashScanTokenURL(network string, tokenID string) string {
	return fmt.Sprintf("%s/%s/token/%s", hashScanBaseURL, explorerNetwork(network), tokenID)
}

// HashScanNFTURL returns the explorer page for a single serial of a token.
func HashScanNFTURL(network string, tokenID string, serial int64) string {
	return fmt.Sprintf("%s/%s/token/%s/%d", hashScanBaseURL, explorerNetwork(network), tokenID, serial)
}

// HashScanTopicURL returns the explorer page for a consensus topic.
func HashScanTopicURL(network string, topicID string) string {
	return fmt.Sprintf("%s/%s/topic/%s", hashScanBaseURL, explorerNetwork(network), topicID)
}

func explorerNetwork(network string) string {
	normalized, err := NormalizeNetwork(network)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(network))
	}
	return normalized
}
