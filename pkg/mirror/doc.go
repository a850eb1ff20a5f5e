// Package mirror is a small client for the Hedera mirror node REST API. The
// E.D.A.I. tooling uses it to read back the guardian token, its minted
// serials, the verification and compliance topics, and the operator's
// balance without submitting transactions.
package mirror
