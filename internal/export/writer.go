// Package export serializes a batch-manual document to disk.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/asphyxia-tools/tachi-export/internal/schema"
)

// ErrWrite means the output file could not be created or written.
var ErrWrite = errors.New("write output file")

// WriteBatch encodes the batch as UTF-8 JSON and writes it to path,
// replacing any existing file. Encoding is deterministic for a given
// batch, so unchanged input produces byte-identical output.
func WriteBatch(path string, batch schema.BatchManual) error {
	data, err := json.Marshal(batch)
	if err != nil {
		// Only reachable if the schema types gain an unencodable field.
		return fmt.Errorf("encode batch: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
