// Package shared holds the Hedera plumbing used by the E.D.A.I. tooling:
// network normalization, operator credential resolution from the
// environment (including .env discovery), client construction, key parsing
// and HashScan explorer links.
//
// # Environment Variables
//
// Operator credentials are read from HEDERA_ACCOUNT_ID and
// HEDERA_PRIVATE_KEY, with HEDERA_OPERATOR_ID/HEDERA_OPERATOR_KEY,
// ACCOUNT_ID/PRIVATE_KEY and OPERATOR_ID/OPERATOR_KEY accepted as aliases.
// Network scoped variants (MAINNET_HEDERA_ACCOUNT_ID, TESTNET_HEDERA_PRIVATE_KEY
// and so on) take precedence for the network in use. HEDERA_NETWORK selects
// the network. Values already present in the process environment are never
// overridden by a .env file.
package shared
