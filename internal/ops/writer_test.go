package ops

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/greenrows/currex/internal/curriculum"
	"github.com/greenrows/currex/internal/errors"
)

func TestWriteChunks_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.json")

	if err := writeChunks(path, nil); err != nil {
		t.Fatalf("writeChunks failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestWriteChunks_EmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	if err := writeChunks(path, []curriculum.Chunk{}); err != nil {
		t.Fatalf("writeChunks failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "[]\n" {
		t.Errorf("content = %q, want %q", string(data), "[]\n")
	}
}

func TestWriteChunks_PreservesNonASCII(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	theme := "Wärmedämmung — день 3"
	chunks := []curriculum.Chunk{{
		ID:                "curr-1",
		ContentType:       curriculum.ContentType,
		Module:            "Insulation",
		Day:               3,
		DayTheme:          &theme,
		SessionNumber:     1,
		ActivityName:      "Übung <A> & B",
		SearchableContent: "Module: Insulation",
	}}

	if err := writeChunks(path, chunks); err != nil {
		t.Fatalf("writeChunks failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "Wärmedämmung — день 3") {
		t.Errorf("non-ASCII text was escaped:\n%s", content)
	}
	if !strings.Contains(content, "Übung <A> & B") {
		t.Errorf("HTML-sensitive characters were escaped:\n%s", content)
	}
	if strings.Contains(content, `\u`) {
		t.Errorf("found unicode escapes in output:\n%s", content)
	}
}

func TestWriteChunks_Indented(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	chunks := []curriculum.Chunk{{ID: "curr-1", ContentType: curriculum.ContentType, Module: "Solar"}}

	if err := writeChunks(path, chunks); err != nil {
		t.Fatalf("writeChunks failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "\n    \"id\": \"curr-1\"") {
		t.Errorf("output not indented:\n%s", string(data))
	}
}

func TestWriteChunks_NullsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	chunks := []curriculum.Chunk{{ID: "curr-1", ContentType: curriculum.ContentType, Module: "Solar"}}

	if err := writeChunks(path, chunks); err != nil {
		t.Fatalf("writeChunks failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "\"day_theme\": null") {
		t.Errorf("nil optional field should serialize as null:\n%s", string(data))
	}
}

func TestWriteChunks_UnwritableDir(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("permission bits not enforced")
	}

	dir := t.TempDir()
	if err := os.Chmod(dir, 0500); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0700) })

	err := writeChunks(filepath.Join(dir, "sub", "out.json"), nil)
	if err == nil {
		t.Fatal("writeChunks should fail in a read-only directory")
	}
	if !errors.Is(err, errors.ErrSinkUnwritable) {
		t.Errorf("error = %v, want SINK_UNWRITABLE", err)
	}
}

func TestWriteChunks_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	if err := writeChunks(path, nil); err != nil {
		t.Fatalf("writeChunks failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("dir contents = %v, want [out.json]", names)
	}
}
