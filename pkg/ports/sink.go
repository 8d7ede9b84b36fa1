package ports

import (
	"context"

	"github.com/atelier-tools/sift/pkg/domain"
)

// ExportSink packages finished export artifacts for delivery. A single
// file passes through unchanged; multiple files become one archive with
// the member names exactly as computed by the dispatcher (name collisions
// are left unresolved, last write wins).
type ExportSink interface {
	Package(ctx context.Context, files []domain.ExportFile) (*domain.ExportFile, error)
}
