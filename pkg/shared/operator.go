package shared

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

type OperatorConfig struct {
	AccountID  string
	PrivateKey string
	Network    string
}

// Missing reports which operator credentials are still empty, using the
// environment variable names an operator would set.
func (c OperatorConfig) Missing() []string {
	missing := make([]string, 0, 2)
	if strings.TrimSpace(c.AccountID) == "" {
		missing = append(missing, "HEDERA_ACCOUNT_ID")
	}
	if strings.TrimSpace(c.PrivateKey) == "" {
		missing = append(missing, "HEDERA_PRIVATE_KEY")
	}
	return missing
}

var dotenvLoadOnce sync.Once

var (
	accountIDKeys  = []string{"HEDERA_ACCOUNT_ID", "HEDERA_OPERATOR_ID", "ACCOUNT_ID", "OPERATOR_ID"}
	privateKeyKeys = []string{"HEDERA_PRIVATE_KEY", "HEDERA_OPERATOR_KEY", "PRIVATE_KEY", "OPERATOR_KEY"}
)

// NetworkFromEnv returns the network named by HEDERA_NETWORK or NETWORK, or
// an empty string when neither is set.
func NetworkFromEnv() string {
	loadDotEnvIfPresent()
	return firstNonEmptyEnv("HEDERA_NETWORK", "NETWORK")
}

// LookupOperatorConfig resolves whatever operator credentials the environment
// holds for the given network without failing on absent values. Network
// scoped variables such as MAINNET_HEDERA_ACCOUNT_ID win over the generic
// names. An empty network falls back to NetworkFromEnv and then testnet.
func LookupOperatorConfig(network string) OperatorConfig {
	loadDotEnvIfPresent()

	if strings.TrimSpace(network) == "" {
		network = firstNonEmptyEnv("HEDERA_NETWORK", "NETWORK")
	}
	if network == "" {
		network = NetworkTestnet
	}

	accountID := firstNonEmptyEnv(accountIDKeys...)
	privateKey := firstNonEmptyEnv(privateKeyKeys...)

	scope := strings.ToUpper(strings.TrimSpace(network))
	if scope == "MAINNET" || scope == "TESTNET" {
		if scopedAccount := firstNonEmptyEnv(
			scope+"_HEDERA_ACCOUNT_ID",
			scope+"_HEDERA_OPERATOR_ID",
			scope+"_OPERATOR_ID",
		); scopedAccount != "" {
			accountID = scopedAccount
		}
		if scopedKey := firstNonEmptyEnv(
			scope+"_HEDERA_PRIVATE_KEY",
			scope+"_HEDERA_OPERATOR_KEY",
			scope+"_OPERATOR_KEY",
		); scopedKey != "" {
			privateKey = scopedKey
		}
	}

	return OperatorConfig{
		AccountID:  accountID,
		PrivateKey: privateKey,
		Network:    network,
	}
}

// OperatorConfigFromEnv resolves operator credentials from the environment
// and fails when either the account ID or the private key is absent.
func OperatorConfigFromEnv() (OperatorConfig, error) {
	config := LookupOperatorConfig("")

	if strings.TrimSpace(config.AccountID) == "" {
		return OperatorConfig{}, fmt.Errorf("HEDERA_ACCOUNT_ID is required")
	}
	if strings.TrimSpace(config.PrivateKey) == "" {
		return OperatorConfig{}, fmt.Errorf("HEDERA_PRIVATE_KEY is required")
	}

	return config, nil
}

func loadDotEnvIfPresent() {
	dotenvLoadOnce.Do(func() {
		cwd, err := os.Getwd()
		if err != nil {
			return
		}
		if candidate, found := findDotEnv(cwd); found {
			loadDotEnvFile(candidate)
		}
	})
}

// findDotEnv walks from start towards the filesystem root and returns the
// nearest .env file. The nearest one wins even when it sets nothing.
func findDotEnv(start string) (string, bool) {
	current := start
	for {
		candidate := filepath.Join(current, ".env")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

func loadDotEnvFile(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	loadedAny := false
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "export ") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		}

		separator := strings.Index(line, "=")
		if separator <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:separator])
		if !isValidEnvKey(key) {
			continue
		}
		if _, alreadySet := os.LookupEnv(key); alreadySet {
			continue
		}

		value := strings.TrimSpace(line[separator+1:])
		if len(value) >= 2 {
			first := value[0]
			last := value[len(value)-1]
			if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		if setErr := os.Setenv(key, value); setErr == nil {
			loadedAny = true
		}
	}

	return loadedAny
}

func isValidEnvKey(key string) bool {
	if key == "" {
		return false
	}
	for index, character := range key {
		if (character >= 'A' && character <= 'Z') ||
			(character >= 'a' && character <= 'z') ||
			(index > 0 && character >= '0' && character <= '9') ||
			character == '_' {
			continue
		}
		return false
	}
	return true
}

func firstNonEmptyEnv(keys ...string) string {
	for _, key := range keys {
		value := strings.TrimSpace(os.Getenv(key))
		if value != "" {
			return value
		}
	}
	return ""
}

// ParsePrivateKey parses the provided input value.
func ParsePrivateKey(raw string) (hedera.PrivateKey, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return hedera.PrivateKey{}, fmt.Errorf("private key cannot be empty")
	}

	ed25519Key, edErr := hedera.PrivateKeyFromStringEd25519(candidate)
	if edErr == nil {
		return ed25519Key, nil
	}

	ecdsaKey, ecdsaErr := hedera.PrivateKeyFromStringECDSA(candidate)
	if ecdsaErr == nil {
		return ecdsaKey, nil
	}

	genericKey, genericErr := hedera.PrivateKeyFromString(candidate)
	if genericErr == nil {
		return genericKey, nil
	}

	return hedera.PrivateKey{}, fmt.Errorf(
		"failed to parse private key as ED25519 (%v), ECDSA (%v), or generic (%v)",
		edErr,
		ecdsaErr,
		genericErr,
	)
}
