package runner

import (
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"github.com/atelier-tools/sift/pkg/domain"
	"github.com/atelier-tools/sift/pkg/ports"
)

// jsonPresenter emits outbound envelopes as JSON lines. Writes are
// serialized so engine callbacks and loop replies never interleave.
type jsonPresenter struct {
	mu     sync.Mutex
	out    io.Writer
	logger *slog.Logger
}

func newJSONPresenter(out io.Writer, logger *slog.Logger) *jsonPresenter {
	return &jsonPresenter{out: out, logger: logger}
}

func (p *jsonPresenter) emit(msgType string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var body map[string]any
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			p.logger.Error("encoding payload failed", "type", msgType, "error", err)
			return
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			p.logger.Error("encoding payload failed", "type", msgType, "error", err)
			return
		}
	}
	if err := json.NewEncoder(p.out).Encode(Envelope{Type: msgType, Payload: body}); err != nil {
		p.logger.Error("writing message failed", "type", msgType, "error", err)
	}
}

func (p *jsonPresenter) Loading(state domain.LoadingState) {
	p.emit(MsgLoading, state)
}

func (p *jsonPresenter) Result(res *domain.QueryResult) {
	p.emit(MsgUpdateElementCount, map[string]any{
		"count":              res.Count,
		"current_page_count": res.CurrentPageCount,
	})
	p.emit(MsgUpdateResults, res)
}

func (p *jsonPresenter) ResultsInvalidated() {
	p.emit(MsgResultsInvalidated, nil)
}

func (p *jsonPresenter) Notify(message string) {
	p.emit(MsgNotify, map[string]any{"message": message})
}

func (p *jsonPresenter) Download(file domain.ExportFile) {
	p.emit(MsgDownloadFile, file)
}

var _ ports.Presenter = (*jsonPresenter)(nil)
