package source

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/surveyor/pkg/model"
	"github.com/mesh-intelligence/surveyor/pkg/traversal"
)

func newStore(t *testing.T) (string, *sql.DB) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.db")
	db, err := InitStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return path, db
}

func insertObject(t *testing.T, db *sql.DB, id string, isRoot bool, data string) {
	t.Helper()
	root := 0
	if isRoot {
		root = 1
	}
	_, err := db.Exec(
		"INSERT INTO objects (object_id, is_root, data) VALUES (?, ?, ?)",
		id, root, data,
	)
	require.NoError(t, err)
}

func TestSQLiteSourceFetchRoot(t *testing.T) {
	path, db := newStore(t)

	insertObject(t, db, "root", true, `{
        "kind": "Objects.Organization.Model",
        "elements": ["i-1", "i-2"]
    }`)
	insertObject(t, db, "def-1", false, `{
        "name": "Shared Window",
        "category": "Windows",
        "type": "Casement",
        "family": "Basic",
        "parameters": {
            "p1": {
                "kind": "Objects.BuiltElements.Revit.Parameter",
                "name": "OmniClass Number",
                "value": "23.30.20.11"
            }
        }
    }`)
	insertObject(t, db, "i-1", false, `{
        "transform": {"matrix": [1,0,0,5, 0,1,0,0, 0,0,1,0, 0,0,0,1], "units": "mm"},
        "definition": "def-1"
    }`)
	insertObject(t, db, "i-2", false, `{
        "transform": {"matrix": [1,0,0,0, 0,1,0,9, 0,0,1,0, 0,0,0,1], "units": "mm"},
        "definition": "def-1"
    }`)

	root, err := NewSQLiteSource(path).FetchRoot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "root", root.ID)
	require.Len(t, root.Elements, 2)

	i1, i2 := root.Elements[0], root.Elements[1]
	assert.Equal(t, "i-1", i1.ID)
	assert.Equal(t, "i-2", i2.ID)
	assert.True(t, i1.IsInstance())
	assert.Equal(t, 5.0, i1.Transform.Matrix[3])

	// Both instances resolve to the same definition node.
	require.NotNil(t, i1.Definition)
	assert.Same(t, i1.Definition, i2.Definition)
	assert.Equal(t, "Shared Window", i1.Definition.Name)
	require.Contains(t, i1.Definition.Parameters, "p1")
	assert.Equal(t, "23.30.20.11", i1.Definition.Parameters["p1"].Value)
}

func TestSQLiteSourceLegacyMembers(t *testing.T) {
	body := `{
        "kind": "Legacy.Model",
        "@Walls": [{"kind": "Kinds.Walls", "elements": [{"id": "wall-1"}]}]
    }`
	path, db := newStore(t)
	insertObject(t, db, "root", true, body)

	root, err := NewSQLiteSource(path).FetchRoot(context.Background())
	require.NoError(t, err)

	// The legacy container is a real node, so the store agrees with the
	// document decoder on the same body.
	cats := root.LegacyCategories()
	require.Len(t, cats, 1)
	assert.Equal(t, "Kinds.Walls", cats[0].Kind)

	var fromStore []string
	for leaf := range traversal.Flatten(root, nil) {
		fromStore = append(fromStore, leaf.ID)
	}
	assert.Equal(t, []string{"wall-1"}, fromStore)

	decoded := &model.Node{}
	require.NoError(t, json.Unmarshal([]byte(body), decoded))
	var fromDocument []string
	for leaf := range traversal.Flatten(decoded, nil) {
		fromDocument = append(fromDocument, leaf.ID)
	}
	assert.Equal(t, fromDocument, fromStore)
}

func TestSQLiteSourceNoRoot(t *testing.T) {
	path, db := newStore(t)
	insertObject(t, db, "orphan", false, `{"name": "Orphan"}`)

	_, err := NewSQLiteSource(path).FetchRoot(context.Background())
	assert.ErrorIs(t, err, ErrNoRoot)
}

func TestSQLiteSourceEmptyStore(t *testing.T) {
	path, _ := newStore(t)

	_, err := NewSQLiteSource(path).FetchRoot(context.Background())
	assert.ErrorIs(t, err, ErrNoRoot)
}

func TestSQLiteSourceSkipsMalformedRows(t *testing.T) {
	path, db := newStore(t)

	insertObject(t, db, "root", true, `{"elements": ["good", "bad", "absent"]}`)
	insertObject(t, db, "good", false, `{"name": "Good"}`)
	insertObject(t, db, "bad", false, `{not json`)

	root, err := NewSQLiteSource(path).FetchRoot(context.Background())
	require.NoError(t, err)

	// The malformed row and the dangling reference drop out of the graph.
	require.Len(t, root.Elements, 1)
	assert.Equal(t, "Good", root.Elements[0].Name)
}

func TestInitStoreIsIdempotent(t *testing.T) {
	path, db := newStore(t)
	insertObject(t, db, "root", true, `{"name": "Root"}`)
	require.NoError(t, db.Close())

	db2, err := InitStore(path)
	require.NoError(t, err)
	defer db2.Close()

	var count int
	require.NoError(t, db2.QueryRow("SELECT COUNT(*) FROM objects").Scan(&count))
	assert.Equal(t, 1, count)
}
