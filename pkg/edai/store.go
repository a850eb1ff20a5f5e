package edai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// GuardianRecordFileName returns the file name for a minted guardian. Reusing
// a guardian ID produces a new file only when the serial differs.
func GuardianRecordFileName(guardianID string, serial int64) string {
	return fmt.Sprintf("guardian-%s-%d.json", strings.ToLower(guardianID), serial)
}

// WriteDeploymentRecord writes record to dir, replacing any earlier record.
func WriteDeploymentRecord(dir string, record DeploymentRecord) (string, error) {
	path := filepath.Join(dir, DeploymentRecordFileName)
	if err := writeJSONFile(path, record); err != nil {
		return "", err
	}
	return path, nil
}

// ReadDeploymentRecord loads the deployment record from dir. A missing file
// yields ErrDeploymentRecordMissing and an unusable one
// ErrDeploymentRecordInvalid.
func ReadDeploymentRecord(dir string) (DeploymentRecord, error) {
	path := filepath.Join(dir, DeploymentRecordFileName)
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DeploymentRecord{}, fmt.Errorf("%w: %s", ErrDeploymentRecordMissing, path)
		}
		return DeploymentRecord{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var record DeploymentRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return DeploymentRecord{}, fmt.Errorf("%w: %s: %v", ErrDeploymentRecordInvalid, path, err)
	}
	if strings.TrimSpace(record.GuardianToken) == "" {
		return DeploymentRecord{}, fmt.Errorf("%w: %s has no guardianToken", ErrDeploymentRecordInvalid, path)
	}

	return record, nil
}

// WriteGuardianRecord writes record to dir under GuardianRecordFileName.
func WriteGuardianRecord(dir string, record GuardianRecord, serial int64) (string, error) {
	path := filepath.Join(dir, GuardianRecordFileName(record.GuardianID, serial))
	if err := writeJSONFile(path, record); err != nil {
		return "", err
	}
	return path, nil
}

// ReadGuardianRecord loads a guardian record file.
func ReadGuardianRecord(path string) (GuardianRecord, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GuardianRecord{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var record GuardianRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return GuardianRecord{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return record, nil
}

func writeJSONFile(path string, value any) error {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, buffer.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
