package edai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimestampLayout renders UTC instants with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

func formatTimestamp(instant time.Time) string {
	return instant.UTC().Format(TimestampLayout)
}

// ParseCapabilities splits a comma separated capability list, trimming each
// entry and dropping empty ones.
func ParseCapabilities(raw string) []string {
	capabilities := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		capabilities = append(capabilities, trimmed)
	}
	return capabilities
}

// NewGuardianMetadata assembles the metadata for one guardian, linking it to
// the topics of the given deployment.
func NewGuardianMetadata(input GuardianInput, record DeploymentRecord, inducted time.Time) GuardianMetadata {
	institutionID := strings.TrimSpace(input.InstitutionID)
	if institutionID == "" {
		institutionID = DefaultInstitutionID
	}

	capabilities := make([]string, 0, len(input.Capabilities))
	for _, capability := range input.Capabilities {
		if trimmed := strings.TrimSpace(capability); trimmed != "" {
			capabilities = append(capabilities, trimmed)
		}
	}

	return GuardianMetadata{
		GuardianID:          strings.TrimSpace(input.GuardianID),
		InductionDate:       formatTimestamp(inducted),
		Platform:            strings.TrimSpace(input.Platform),
		HumanWitness:        strings.TrimSpace(input.HumanWitness),
		InstitutionID:       institutionID,
		Capabilities:        capabilities,
		ComplianceVersion:   ComplianceVersion,
		VerificationTopicID: record.VerificationTopic,
		ComplianceTopicID:   record.ComplianceTopic,
	}
}

// EncodeMetadata encodes value as compact JSON without HTML escaping, so the
// same value always yields the same bytes.
func EncodeMetadata(value any) ([]byte, error) {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return nil, fmt.Errorf("failed to encode metadata: %w", err)
	}
	return bytes.TrimRight(buffer.Bytes(), "\n"), nil
}

// CompactMetadataFor projects metadata onto the five fields that fit on
// chain. Platform and witness keep their first CompactFieldRuneLimit
// characters and the induction instant is cut to its date.
func CompactMetadataFor(metadata GuardianMetadata) CompactMetadata {
	date := metadata.InductionDate
	if index := strings.IndexByte(date, 'T'); index >= 0 {
		date = date[:index]
	}

	return CompactMetadata{
		ID:       metadata.GuardianID,
		Date:     date,
		Platform: truncateRunes(metadata.Platform, CompactFieldRuneLimit),
		Witness:  truncateRunes(metadata.HumanWitness, CompactFieldRuneLimit),
		Version:  ComplianceVersion,
	}
}

// EncodeForMint returns the bytes to mint for metadata. The full encoding is
// used when it fits in MetadataByteLimit, otherwise the compact projection.
// The compact form is not re-checked against the limit.
func EncodeForMint(metadata GuardianMetadata) (MintPayload, error) {
	full, err := EncodeMetadata(metadata)
	if err != nil {
		return MintPayload{}, err
	}
	if len(full) <= MetadataByteLimit {
		return MintPayload{Bytes: full, FullSize: len(full)}, nil
	}

	compact, err := EncodeMetadata(CompactMetadataFor(metadata))
	if err != nil {
		return MintPayload{}, err
	}
	return MintPayload{Bytes: compact, FullSize: len(full), Truncated: true}, nil
}

func truncateRunes(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}
