package edai

import (
	"encoding/json"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

const (
	DeploymentRecordFileName = "deployment-info.json"

	StatusDeployed = "DEPLOYED"
	StatusActive   = "ACTIVE"

	ComplianceVersion     = "E.D.A.I.v1.0"
	DefaultInstitutionID  = "independent"
	MetadataByteLimit     = 100
	CompactFieldRuneLimit = 20
)

const (
	GuardianTokenName   = "E.D.A.I. Guardian Credential"
	GuardianTokenSymbol = "EDAI-GUARD"
	GuardianTokenMemo   = "E.D.A.I. Guardian Credentials - Verified AI Network"

	VerificationTopicMemo = "E.D.A.I. Verification Events - 4-Step Ritual Logging"
	ComplianceTopicMemo   = "E.D.A.I. Compliance Events - Guardian Status Changes"
)

var (
	TokenCreateMaxFee = hedera.NewHbar(10)
	TopicCreateMaxFee = hedera.NewHbar(2)
	TokenMintMaxFee   = hedera.NewHbar(1)
)

// DeploymentRecord is the content of deployment-info.json.
type DeploymentRecord struct {
	Timestamp         string `json:"timestamp"`
	Network           string `json:"network"`
	Operator          string `json:"operator"`
	GuardianToken     string `json:"guardianToken"`
	VerificationTopic string `json:"verificationTopic"`
	ComplianceTopic   string `json:"complianceTopic"`
	Status            string `json:"status"`
}

// GuardianInput is what an operator supplies about a guardian, either at the
// prompts or through a YAML metadata file.
type GuardianInput struct {
	GuardianID    string   `yaml:"guardianId"`
	Platform      string   `yaml:"platform"`
	HumanWitness  string   `yaml:"humanWitness"`
	InstitutionID string   `yaml:"institutionId"`
	Capabilities  []string `yaml:"capabilities"`
}

// GuardianMetadata is the full metadata describing one guardian credential.
// Field order is the encoding order.
type GuardianMetadata struct {
	GuardianID          string   `json:"guardianId"`
	InductionDate       string   `json:"inductionDate"`
	Platform            string   `json:"platform"`
	HumanWitness        string   `json:"humanWitness"`
	InstitutionID       string   `json:"institutionId"`
	Capabilities        []string `json:"capabilities"`
	ComplianceVersion   string   `json:"complianceVersion"`
	VerificationTopicID string   `json:"verificationTopicId"`
	ComplianceTopicID   string   `json:"complianceTopicId"`
}

// CompactMetadata is the lossy projection minted when GuardianMetadata does
// not fit in MetadataByteLimit.
type CompactMetadata struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Platform string `json:"platform"`
	Witness  string `json:"witness"`
	Version  string `json:"version"`
}

// MintPayload is the exact byte string placed on the NFT.
type MintPayload struct {
	Bytes     []byte
	FullSize  int
	Truncated bool
}

// GuardianRecord is the content of a guardian-<id>-<serial>.json file.
type GuardianRecord struct {
	GuardianMetadata
	SerialNumber      string          `json:"serialNumber"`
	TokenID           string          `json:"tokenId"`
	MintTransaction   string          `json:"mintTransaction"`
	MintTimestamp     string          `json:"mintTimestamp"`
	Status            string          `json:"status"`
	OnChainMetadata   json.RawMessage `json:"onChainMetadata"`
	MetadataTruncated bool            `json:"metadataTruncated"`
}

type TokenSpec struct {
	Name   string
	Symbol string
	Memo   string
	MaxFee hedera.Hbar
}

type TopicSpec struct {
	Memo   string
	MaxFee hedera.Hbar
}

type MintSpec struct {
	TokenID  string
	Metadata []byte
	MaxFee   hedera.Hbar
}

// CreateResult identifies the entity a create transaction produced.
type CreateResult struct {
	EntityID      string
	TransactionID string
}

type MintResult struct {
	SerialNumber  int64
	TransactionID string
}

// GuardianTokenSpec returns the credential class definition.
func GuardianTokenSpec() TokenSpec {
	return TokenSpec{
		Name:   GuardianTokenName,
		Symbol: GuardianTokenSymbol,
		Memo:   GuardianTokenMemo,
		MaxFee: TokenCreateMaxFee,
	}
}

func VerificationTopicSpec() TopicSpec {
	return TopicSpec{Memo: VerificationTopicMemo, MaxFee: TopicCreateMaxFee}
}

func ComplianceTopicSpec() TopicSpec {
	return TopicSpec{Memo: ComplianceTopicMemo, MaxFee: TopicCreateMaxFee}
}
