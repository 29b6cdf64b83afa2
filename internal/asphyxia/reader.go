package asphyxia

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Sentinel errors for database read failures. Callers classify with
// errors.Is; the wrapped error keeps the underlying cause in the message.
var (
	// ErrNotFound means the database file does not exist at the given path.
	ErrNotFound = errors.New("database file not found")

	// ErrMalformed means the file is not a NeDB database of the expected
	// structure (a line failed to parse as a JSON document).
	ErrMalformed = errors.New("database file malformed")

	// ErrLocked means the file exists but could not be read because the
	// game or the Asphyxia plugin currently holds it. Never retried here;
	// the user re-runs once the lock clears.
	ErrLocked = errors.New("database file locked by another process")
)

// maxLineSize caps a single NeDB document line. Music-score documents are a
// few hundred bytes; 1 MiB leaves generous headroom for other collections.
const maxLineSize = 1 << 20

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadScores opens the database at path read-only, reads it fully, and
// returns all documents from the "music" collection in file order. The file
// is closed before ReadScores returns, so no cursor is held while the rest
// of the pipeline runs.
func ReadScores(path string) ([]ScoreDoc, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, classifyOpenErr(path, err)
	}
	defer f.Close()

	docs, err := decodeScores(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return docs, nil
}

// decodeScores scans line-delimited JSON documents, keeping music rows.
func decodeScores(r io.Reader) ([]ScoreDoc, error) {
	sc := bufio.NewScanner(skipBOM(r))
	sc.Buffer(make([]byte, 64*1024), maxLineSize)

	var docs []ScoreDoc
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}

		var doc ScoreDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		if doc.Collection != "music" {
			continue
		}
		docs = append(docs, doc)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return docs, nil
}

// skipBOM drops a leading UTF-8 BOM. Asphyxia runs on Windows, where tools
// that touch the save file sometimes leave one behind.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}
	return br
}

// classifyOpenErr maps an os.Open failure onto the package sentinels.
func classifyOpenErr(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if isLockErr(err) {
		return fmt.Errorf("%w: %s", ErrLocked, path)
	}
	return fmt.Errorf("open database %s: %w", path, err)
}

// isLockErr detects the open failures a live Asphyxia process produces.
// Windows reports a sharing violation; some setups surface EAGAIN through
// overlay filesystems.
func isLockErr(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "being used by another process") ||
		strings.Contains(msg, "sharing violation") ||
		strings.Contains(msg, "resource temporarily unavailable")
}
