package ports

import "github.com/atelier-tools/sift/pkg/domain"

// Presenter is the outbound boundary with the presentation layer.
// Implementations deliver progress and result messages; a later query
// simply overwrites prior progress, there is no abort protocol.
type Presenter interface {
	// Loading flushes a progress snapshot at a traversal checkpoint.
	Loading(state domain.LoadingState)

	// Result delivers the element counts and match summaries.
	Result(res *domain.QueryResult)

	// ResultsInvalidated tells the presentation layer to refresh its
	// results list after a mutating action.
	ResultsInvalidated()

	// Notify shows a short transient notice (selection-cardinality
	// errors and similar).
	Notify(message string)

	// Download hands the user a finished file or archive.
	Download(file domain.ExportFile)
}

// NopPresenter discards all messages. Useful for library embedding and
// tests that only care about returned results.
type NopPresenter struct{}

func (NopPresenter) Loading(domain.LoadingState) {}
func (NopPresenter) Result(*domain.QueryResult)  {}
func (NopPresenter) ResultsInvalidated()         {}
func (NopPresenter) Notify(string)               {}
func (NopPresenter) Download(domain.ExportFile)  {}
