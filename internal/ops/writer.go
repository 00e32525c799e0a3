package ops

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/greenrows/currex/internal/curriculum"
	"github.com/greenrows/currex/internal/errors"
)

// writeChunks serializes the full chunk sequence as one indented JSON
// array and replaces the destination file. The document is buffered in
// memory and written to a temp file in the destination directory, then
// renamed into place, so a reader never sees a half-written export.
// Non-ASCII text passes through unescaped.
func writeChunks(path string, chunks []curriculum.Chunk) error {
	if chunks == nil {
		chunks = []curriculum.Chunk{} // empty source still yields []
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(chunks); err != nil {
		return errors.NewInternal(err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewSinkUnwritable(path, err)
	}

	tempPath := fmt.Sprintf("%s.%s.tmp", path, newTempSuffix())
	file, err := os.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644)
	if err != nil {
		return errors.NewSinkUnwritable(path, err)
	}

	success := false
	defer func() {
		if file != nil {
			file.Close()
		}
		if !success {
			os.Remove(tempPath)
		}
	}()

	if _, err := file.Write(buf.Bytes()); err != nil {
		return errors.NewSinkUnwritable(path, err)
	}
	if err := file.Sync(); err != nil {
		return errors.NewSinkUnwritable(path, err)
	}
	if err := file.Close(); err != nil {
		file = nil
		return errors.NewSinkUnwritable(path, err)
	}
	file = nil

	if err := os.Rename(tempPath, path); err != nil {
		return errors.NewSinkUnwritable(path, err)
	}

	success = true
	return nil
}

// newTempSuffix returns a unique suffix for the temp file so concurrent
// runs against the same destination never collide.
func newTempSuffix() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		// ulid.New only fails if entropy is exhausted; fall back to the
		// timestamp alone rather than aborting the export.
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return id.String()
}
