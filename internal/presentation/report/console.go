package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"

	"github.com/atelier-tools/sift/pkg/domain"
	"github.com/atelier-tools/sift/pkg/ports"
)

// ConsolePresenter writes human-readable results to a terminal. Results
// render as glamour markdown; progress and notices as dim/colored lines.
type ConsolePresenter struct {
	out     io.Writer
	render  func(string) (string, error)
	profile termenv.Profile

	// OutputDir is where download artifacts are written. Defaults to the
	// working directory.
	OutputDir string
}

// NewConsolePresenter builds a presenter for the writer. Pass the
// terminal's color profile, or termenv.Ascii for plain output.
func NewConsolePresenter(out io.Writer, profile termenv.Profile) *ConsolePresenter {
	return &ConsolePresenter{
		out:     out,
		render:  NewRenderer(),
		profile: profile,
	}
}

func (p *ConsolePresenter) Loading(state domain.LoadingState) {
	if !state.Active {
		return
	}
	line := fmt.Sprintf("scanning... %d nodes, %d pages", state.NodeCount, state.PageCount)
	fmt.Fprintln(p.out, termenv.String(line).Foreground(p.profile.Color("8")))
}

func (p *ConsolePresenter) Result(res *domain.QueryResult) {
	md := Markdown(res)
	if rendered, err := p.render(md); err == nil {
		fmt.Fprint(p.out, rendered)
		return
	}
	fmt.Fprint(p.out, md)
}

func (p *ConsolePresenter) ResultsInvalidated() {
	fmt.Fprintln(p.out, termenv.String("document changed, results refreshed").Foreground(p.profile.Color("3")))
}

func (p *ConsolePresenter) Notify(message string) {
	fmt.Fprintln(p.out, termenv.String(message).Foreground(p.profile.Color("1")))
}

// Download writes the artifact to OutputDir.
func (p *ConsolePresenter) Download(file domain.ExportFile) {
	dir := p.OutputDir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, file.Name)
	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		p.Notify(fmt.Sprintf("writing %s failed: %v", path, err))
		return
	}
	fmt.Fprintf(p.out, "wrote %s (%d bytes)\n", path, len(file.Data))
}

var _ ports.Presenter = (*ConsolePresenter)(nil)
