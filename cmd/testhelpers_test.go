package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

// writeConfig は一時ディレクトリに設定ファイルを書き出してパスを返す
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coincidence.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}
