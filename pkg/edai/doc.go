// Package edai provisions and issues E.D.A.I. guardian credentials on the
// Hedera public ledger.
//
// Provisioning creates one non-fungible token that represents the guardian
// credential class and two consensus topics, one for verification events
// and one for compliance events, and records their identifiers in
// deployment-info.json. Issuance reads that record and mints one NFT per
// guardian, writing a guardian-<id>-<serial>.json record per mint.
//
// Every network interaction goes through the Ledger interface. The Hedera
// implementation executes each transaction and waits for its receipt before
// returning, so workflows run strictly one step at a time.
//
// NFT metadata on Hedera is limited to 100 bytes. When the JSON encoding of
// a guardian's metadata is larger, the compact projection returned by
// CompactMetadataFor is minted instead and the record says so.
package edai
