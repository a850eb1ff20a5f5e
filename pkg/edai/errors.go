package edai

import (
	"errors"
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

var (
	// ErrMissingCredentials means the operator account or key was found
	// neither in the environment nor at the prompt.
	ErrMissingCredentials = errors.New("missing operator credentials")

	// ErrDeploymentRecordMissing means deployment-info.json does not exist.
	ErrDeploymentRecordMissing = errors.New("deployment record not found")

	ErrDeploymentRecordInvalid = errors.New("deployment record is invalid")

	// ErrCancelled means the operator declined to mint. It is not a failure.
	ErrCancelled = errors.New("minting cancelled")
)

type Operation string

const (
	OperationCreateToken Operation = "create token"
	OperationCreateTopic Operation = "create topic"
	OperationMintToken   Operation = "mint token"
)

// TransactionError reports a ledger transaction that failed to execute or
// reached consensus with a non-success status.
type TransactionError struct {
	Operation Operation
	Status    hedera.Status
	HasStatus bool
	Err       error
}

func (e *TransactionError) Error() string {
	if e.HasStatus {
		return fmt.Sprintf("%s transaction failed with status %s: %v", e.Operation, e.Status.String(), e.Err)
	}
	return fmt.Sprintf("%s transaction failed: %v", e.Operation, e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

// StatusCode returns the numeric network status code, when the network
// supplied one.
func (e *TransactionError) StatusCode() (int32, bool) {
	if !e.HasStatus {
		return 0, false
	}
	return int32(e.Status), true
}

func newTransactionError(operation Operation, err error) *TransactionError {
	transactionError := &TransactionError{Operation: operation, Err: err}

	var precheckErr hedera.ErrHederaPreCheckStatus
	var receiptErr hedera.ErrHederaReceiptStatus
	switch {
	case errors.As(err, &receiptErr):
		transactionError.Status = receiptErr.Status
		transactionError.HasStatus = true
	case errors.As(err, &precheckErr):
		transactionError.Status = precheckErr.Status
		transactionError.HasStatus = true
	}

	return transactionError
}
