package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func getBinaryPath(t *testing.T) string {
	binaryName := "mission_agent"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

func TestRenderCommand_MissingMissionFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "render")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestRenderCommand_MissingMissionFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "render", "--mission", "/nonexistent/mission.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to read mission file")
}

func TestExportCommand_MissingRangeFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	missionsFile := filepath.Join(tmpDir, "missions.json")
	writeTestFile(t, missionsFile, `[]`)

	cmd := exec.Command(binaryPath, "export", "--missions", missionsFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--start and --end are required")
}

func TestExportCommand_EmptySelection(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	missionsFile := filepath.Join(tmpDir, "missions.json")
	writeTestFile(t, missionsFile, `[{"id":"m1","title":"Pump check","date":"2024-06-01"}]`)

	cmd := exec.Command(binaryPath, "export",
		"--missions", missionsFile,
		"--start", "2024-01-01",
		"--end", "2024-01-31",
		"--out", tmpDir)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "no missions dated between")
}

func TestTemplatesCommand_UseUnknown(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	templatesFile := filepath.Join(tmpDir, "templates.json")

	cmd := exec.Command(binaryPath, "templates", "use", "nope", "--templates", templatesFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "template not found")
}

func TestVerifyCommand_Offline(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "verify")
	cmd.Env = append(os.Environ(), "ASSET_BASE_URL=")
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Contains(t, string(output), "Embedded fallback: OK")
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
