package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mesh-intelligence/surveyor/pkg/model"
)

// JSONSource reads the root graph from a single JSON model document.
// Definitions in an inline document are owned by their instance; a document
// cannot express shared subtrees. Use the SQLite object store when the
// graph is a DAG.
type JSONSource struct {
	path string
}

// NewJSONSource creates a source reading from the given file path.
func NewJSONSource(path string) *JSONSource {
	return &JSONSource{path: path}
}

// FetchRoot decodes the model document into a node tree.
func (s *JSONSource) FetchRoot(ctx context.Context) (*model.Node, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read model document: %w", err)
	}

	root := &model.Node{}
	if err := json.Unmarshal(data, root); err != nil {
		return nil, fmt.Errorf("decode model document: %w", err)
	}
	return root, nil
}
