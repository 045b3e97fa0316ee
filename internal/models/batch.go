package models

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dryarchive/worldimport/internal/shared"
)

// ImportBatch is the top-level shape of import.json: four entity collections
// produced by the archive dumper. Unknown fields are ignored and field names
// match case-insensitively, so both camelCase and PascalCase dumps decode.
type ImportBatch struct {
	Users     []GameUser                `json:"users"`
	Levels    []GameLevel               `json:"levels"`
	Relations []AssetDependencyRelation `json:"relations"`
	Assets    []GameAsset               `json:"assets"`
}

// DecodeBatch parses an import batch from r.
func DecodeBatch(r io.Reader) (*ImportBatch, error) {
	var batch ImportBatch
	if err := json.NewDecoder(r).Decode(&batch); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrBatchDecode, err)
	}
	return &batch, nil
}

// LoadBatch reads and parses an import batch from the file at path.
func LoadBatch(path string) (*ImportBatch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrBatchRead, err)
	}
	defer f.Close()

	return DecodeBatch(f)
}
