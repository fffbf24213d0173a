package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "DOTENV_TEST_WEBHOOK=https://n8n.example.com/webhook/chat\nDOTENV_TEST_PRESET=from-file\n"
	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	t.Setenv("DOTENV_TEST_WEBHOOK", "")
	os.Unsetenv("DOTENV_TEST_WEBHOOK")
	t.Setenv("DOTENV_TEST_PRESET", "from-process")

	loadEnvFiles(filepath.Join(dir, "missing.env"), envPath)

	if got := os.Getenv("DOTENV_TEST_WEBHOOK"); got != "https://n8n.example.com/webhook/chat" {
		t.Fatalf("DOTENV_TEST_WEBHOOK = %q", got)
	}
	// Variables already set in the process win over the file.
	if got := os.Getenv("DOTENV_TEST_PRESET"); got != "from-process" {
		t.Fatalf("DOTENV_TEST_PRESET = %q", got)
	}
}
