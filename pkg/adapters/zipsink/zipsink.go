// Package zipsink packages export artifacts for delivery. One file
// passes through untouched; several are bundled into a single zip
// archive.
package zipsink

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"

	"github.com/atelier-tools/sift/pkg/domain"
)

// Sink implements ports.ExportSink with archive/zip.
type Sink struct {
	// ArchiveName is the filename of multi-file bundles.
	ArchiveName string
}

// New returns a Sink with the default archive name.
func New() *Sink {
	return &Sink{ArchiveName: "export.zip"}
}

// Package returns the single file unchanged, or a zip archive of all of
// them. Member names are kept exactly as given, so a duplicate name
// shadows the earlier entry when extracted.
func (s *Sink) Package(ctx context.Context, files []domain.ExportFile) (*domain.ExportFile, error) {
	switch len(files) {
	case 0:
		return nil, fmt.Errorf("zipsink: no files to package")
	case 1:
		f := files[0]
		return &f, nil
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		member, err := w.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("zipsink: create member %s: %w", f.Name, err)
		}
		if _, err := member.Write(f.Data); err != nil {
			return nil, fmt.Errorf("zipsink: write member %s: %w", f.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zipsink: finalize archive: %w", err)
	}
	return &domain.ExportFile{Name: s.ArchiveName, Data: buf.Bytes()}, nil
}
