package mirror

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ethicsbuild/edai-hedera-network/pkg/shared"
)

type Config struct {
	Network    string
	BaseURL    string
	HTTPClient *http.Client
	APIKey     string
	Headers    map[string]string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	headers    map[string]string
}

// NewClient creates a client for the network's public mirror node unless
// BaseURL points elsewhere.
func NewClient(config Config) (*Client, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		if network == shared.NetworkMainnet {
			baseURL = "https://mainnet-public.mirrornode.hedera.com"
		} else {
			baseURL = "https://testnet.mirrornode.hedera.com"
		}
	}
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mirror base URL: %w", err)
	}
	if parsedBaseURL.Scheme != "http" && parsedBaseURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid mirror base URL: scheme must be http or https")
	}
	if strings.TrimSpace(parsedBaseURL.Host) == "" {
		return nil, fmt.Errorf("invalid mirror base URL: host is required")
	}
	baseURL = strings.TrimRight(parsedBaseURL.String(), "/")

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	headers := map[string]string{}
	for key, value := range config.Headers {
		headers[key] = value
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		apiKey:     strings.TrimSpace(config.APIKey),
		headers:    headers,
	}, nil
}

// BaseURL returns the normalized mirror node URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetTopicInfo returns the mirror node's view of a consensus topic.
func (c *Client) GetTopicInfo(ctx context.Context, topicID string) (TopicInfo, error) {
	var topicInfo TopicInfo
	if strings.TrimSpace(topicID) == "" {
		return topicInfo, fmt.Errorf("topic ID is required")
	}

	path := fmt.Sprintf("/api/v1/topics/%s", topicID)
	if err := c.getJSON(ctx, path, &topicInfo); err != nil {
		return topicInfo, err
	}

	return topicInfo, nil
}

// GetAccount returns an account with its current balance.
func (c *Client) GetAccount(ctx context.Context, accountID string) (AccountInfo, error) {
	var accountInfo AccountInfo
	normalizedAccountID := strings.TrimSpace(accountID)
	if normalizedAccountID == "" {
		return accountInfo, fmt.Errorf("account ID is required")
	}

	path := fmt.Sprintf("/api/v1/accounts/%s", normalizedAccountID)
	if err := c.getJSON(ctx, path, &accountInfo); err != nil {
		return accountInfo, err
	}

	return accountInfo, nil
}

// GetToken returns the mirror node's view of a token.
func (c *Client) GetToken(ctx context.Context, tokenID string) (TokenInfo, error) {
	var tokenInfo TokenInfo
	normalizedTokenID := strings.TrimSpace(tokenID)
	if normalizedTokenID == "" {
		return tokenInfo, fmt.Errorf("token ID is required")
	}

	path := fmt.Sprintf("/api/v1/tokens/%s", normalizedTokenID)
	if err := c.getJSON(ctx, path, &tokenInfo); err != nil {
		return tokenInfo, err
	}

	return tokenInfo, nil
}

// GetNFT returns one serial of a non-fungible token.
func (c *Client) GetNFT(ctx context.Context, tokenID string, serial int64) (NFTInfo, error) {
	var nftInfo NFTInfo
	normalizedTokenID := strings.TrimSpace(tokenID)
	if normalizedTokenID == "" {
		return nftInfo, fmt.Errorf("token ID is required")
	}
	if serial <= 0 {
		return nftInfo, fmt.Errorf("serial must be positive")
	}

	path := fmt.Sprintf("/api/v1/tokens/%s/nfts/%d", normalizedTokenID, serial)
	if err := c.getJSON(ctx, path, &nftInfo); err != nil {
		return nftInfo, err
	}

	return nftInfo, nil
}

// DecodeNFTMetadata returns the raw metadata bytes of an NFT.
func DecodeNFTMetadata(nft NFTInfo) ([]byte, error) {
	if strings.TrimSpace(nft.Metadata) == "" {
		return nil, fmt.Errorf("NFT metadata is empty")
	}
	payload, err := base64.StdEncoding.DecodeString(nft.Metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to decode NFT metadata: %w", err)
	}
	return payload, nil
}

func (c *Client) getJSON(ctx context.Context, pathOrURL string, target any) error {
	requestURL := c.resolveURL(pathOrURL)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	request.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}
	for key, value := range c.headers {
		request.Header.Set(key, value)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("mirror node request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("failed to read mirror node response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf(
			"mirror node request failed with status %d: %s",
			response.StatusCode,
			strings.TrimSpace(string(body)),
		)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode mirror node response: %w", err)
	}

	return nil
}

func (c *Client) resolveURL(pathOrURL string) string {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL
	}

	path := pathOrURL
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.baseURL + path
}
