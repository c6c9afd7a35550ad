package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyCatalog   = errors.New("catalog is empty")
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// Load reads a catalog file. YAML and JSON are both accepted since
// JSON documents are valid YAML.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a catalog document: a mapping from track id
// to {label, brief, intro, questions}. Track order follows the document.
func Parse(data []byte) (*Catalog, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrEmptyCatalog
	}
	doc := root.Content[0]

	var generic any
	if err := doc.Decode(&generic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := validateDocument(generic); err != nil {
		return nil, err
	}

	// The schema guarantees a mapping; walk the node pairs to keep order.
	tracks := make([]Track, 0, len(doc.Content)/2)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		id := doc.Content[i].Value
		var t Track
		if err := doc.Content[i+1].Decode(&t); err != nil {
			return nil, fmt.Errorf("%w: track %q: %v", ErrInvalidCatalog, id, err)
		}
		t.ID = id
		tracks = append(tracks, t)
	}
	return New(tracks...)
}
