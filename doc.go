// Package edai_hedera_network holds the E.D.A.I. guardian credential network
// tooling for the Hedera public ledger. It provisions the guardian
// credential token together with the verification and compliance consensus
// topics, and mints individual guardian credentials into that token.
//
// # Packages
//
//   - pkg/edai: provisioning, issuance and inspection workflows
//   - pkg/mirror: Hedera mirror node REST client
//   - pkg/shared: network and operator credential resolution
//   - pkg/console, pkg/prompt, pkg/logging: operator-facing terminal I/O
//
// # Command
//
//	go install github.com/ethicsbuild/edai-hedera-network/cmd/edai@latest
//	edai deploy --network testnet
//	edai mint
//	edai inspect --serial 1
package edai_hedera_network
