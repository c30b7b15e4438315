package discovery

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScanner_Scan(t *testing.T) {
	tmpDir := t.TempDir()

	if err := os.MkdirAll(filepath.Join(tmpDir, "ut_nested.c"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	testFiles := []string{
		"ut_math.c",
		"ut_io.c",
		"ut_runner.c",
		"ut.h",
		"ut_math.h",
		"handle.c",
		"ut_.c",
		"ut_notes.cpp",
	}
	for _, file := range testFiles {
		if err := os.WriteFile(filepath.Join(tmpDir, file), []byte("test"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	scanner := NewScanner(regexp.MustCompile(`^ut_.+\.c$`), "ut_runner.c")

	t.Run("selects sources and skips the runner", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{
			filepath.Join(tmpDir, "ut_io.c"),
			filepath.Join(tmpDir, "ut_math.c"),
		}
		if diff := cmp.Diff(want, results); diff != "" {
			t.Errorf("Scan() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan("/non/existent/path")
		if err == nil {
			t.Error("expected error for non-existent directory")
		}
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		_, err := scanner.Scan(filepath.Join(tmpDir, "ut_math.c"))
		if err == nil {
			t.Error("expected error for file path")
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		results, err := scanner.Scan(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected no files, got %v", results)
		}
	})
}
