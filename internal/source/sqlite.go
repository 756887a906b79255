package source

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/surveyor/pkg/model"
)

//go:embed schema.sql
var schemaSQL string

// SQLite source errors.
var (
	ErrNoRoot = errors.New("object store has no root object")
)

// SQLiteSource reads the root graph from a SQLite object store. Each row
// holds one node body; elements and definitions reference other rows by
// object id. The loader resolves a referenced id to a single shared *Node,
// preserving the DAG: a definition placed by several instances is not
// duplicated.
type SQLiteSource struct {
	path string
}

// NewSQLiteSource creates a source reading from the given database path.
func NewSQLiteSource(path string) *SQLiteSource {
	return &SQLiteSource{path: path}
}

// InitStore opens the object store at path, creating the schema when
// missing. The caller owns the returned handle.
func InitStore(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open object store: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create object store schema: %w", err)
	}
	return db, nil
}

// storedNode is the JSON body of one object row. Elements and Definition
// carry object ids; Parameters and sigil-prefixed members are inline
// subtrees.
type storedNode struct {
	Kind       string                 `json:"kind,omitempty"`
	Name       string                 `json:"name,omitempty"`
	Category   string                 `json:"category,omitempty"`
	Type       string                 `json:"type,omitempty"`
	Family     string                 `json:"family,omitempty"`
	Value      any                    `json:"value,omitempty"`
	Parameters map[string]*model.Node `json:"parameters,omitempty"`
	Elements   []string               `json:"elements,omitempty"`
	Transform  *model.Transform       `json:"transform,omitempty"`
	Definition string                 `json:"definition,omitempty"`
	Extra      map[string]any         `json:"-"`
}

// UnmarshalJSON decodes a row body the same way the model decoder reads a
// document: known members into their fields, sigil members through
// model.DecodeDynamic so legacy container patterns stay visible to
// traversal.
func (s *storedNode) UnmarshalJSON(data []byte) error {
	type plain storedNode
	var body plain
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, val := range raw {
		if !strings.HasPrefix(key, model.SigilPrefix) {
			continue
		}
		if body.Extra == nil {
			body.Extra = make(map[string]any)
		}
		body.Extra[key] = model.DecodeDynamic(val)
	}

	*s = storedNode(body)
	return nil
}

// FetchRoot loads every object row, links references into a single shared
// graph, and returns the row marked as root. Malformed rows and dangling
// references are skipped, not fatal; a store without a root fails with
// ErrNoRoot.
func (s *SQLiteSource) FetchRoot(ctx context.Context) (*model.Node, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open object store: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT object_id, is_root, data FROM objects")
	if err != nil {
		return nil, fmt.Errorf("query objects: %w", err)
	}
	defer rows.Close()

	nodes := make(map[string]*model.Node)
	bodies := make(map[string]storedNode)
	var rootID string

	for rows.Next() {
		var (
			objectID string
			isRoot   int
			data     string
		)
		if err := rows.Scan(&objectID, &isRoot, &data); err != nil {
			return nil, fmt.Errorf("scan object row: %w", err)
		}

		var body storedNode
		if err := json.Unmarshal([]byte(data), &body); err != nil {
			// Malformed rows are skipped.
			continue
		}

		nodes[objectID] = &model.Node{
			ID:         objectID,
			Kind:       body.Kind,
			Name:       body.Name,
			Category:   body.Category,
			Type:       body.Type,
			Family:     body.Family,
			Value:      body.Value,
			Parameters: body.Parameters,
			Transform:  body.Transform,
			Extra:      body.Extra,
		}
		bodies[objectID] = body
		if isRoot != 0 && rootID == "" {
			rootID = objectID
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate object rows: %w", err)
	}

	// Second pass: resolve references now that every node exists.
	for id, body := range bodies {
		node := nodes[id]
		for _, childID := range body.Elements {
			if child, ok := nodes[childID]; ok {
				node.Elements = append(node.Elements, child)
			}
		}
		if body.Definition != "" {
			// Shared reference; several instances may resolve to the
			// same node.
			node.Definition = nodes[body.Definition]
		}
	}

	root, ok := nodes[rootID]
	if rootID == "" || !ok {
		return nil, ErrNoRoot
	}
	return root, nil
}
