// Package yamldoc loads documents from YAML files, the interchange
// format used by the CLI and the test fixtures.
package yamldoc

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/atelier-tools/sift/pkg/domain"
)

// Load reads a document from a YAML stream and repairs the parent links
// the serialized form cannot carry.
func Load(r io.Reader) (*domain.Document, error) {
	var doc domain.Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("yamldoc: decode document: %w", err)
	}
	if len(doc.Pages) == 0 {
		return nil, fmt.Errorf("yamldoc: document has no pages")
	}
	doc.Link()
	return &doc, nil
}

// LoadFile loads a document from a YAML file on disk.
func LoadFile(path string) (*domain.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("yamldoc: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// DecodeQuery reads a query description from a YAML stream.
func DecodeQuery(r io.Reader) (*domain.Query, error) {
	var q domain.Query
	if err := yaml.NewDecoder(r).Decode(&q); err != nil {
		return nil, fmt.Errorf("yamldoc: decode query: %w", err)
	}
	return &q, nil
}

// Save writes the document as YAML.
func Save(w io.Writer, doc *domain.Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("yamldoc: encode document: %w", err)
	}
	return enc.Close()
}
