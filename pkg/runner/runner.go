// Package runner drives the engine from a line-delimited JSON message
// stream, the transport used by plugin-style front ends. Each inbound
// line is one request envelope; responses and progress flow back on the
// output stream through the same envelope shape.
package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/atelier-tools/sift"
	"github.com/atelier-tools/sift/pkg/domain"
	"github.com/atelier-tools/sift/pkg/ports"
)

// defaultYield is the checkpoint pause for runner-driven traversals,
// matching the pacing plugin front ends expect.
const defaultYield = 40 * time.Millisecond

// Runner owns the engine loop over a message stream.
type Runner struct {
	input     io.Reader
	output    io.Writer
	logger    *slog.Logger
	prefs     ports.PreferenceStore
	hooks     domain.LifecycleHooks
	tree      ports.DocumentTree
	yield     time.Duration
	engine    *sift.Engine
	presenter *jsonPresenter
}

// Option configures a Runner.
type Option func(*Runner)

// WithIO replaces the default Stdin/Stdout streams.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(r *Runner) {
		r.input = in
		r.output = out
	}
}

// WithLogger sets the internal debug logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// WithPreferenceStore wires scope persistence into the engine.
func WithPreferenceStore(s ports.PreferenceStore) Option {
	return func(r *Runner) { r.prefs = s }
}

// WithLifecycleHooks forwards observability hooks to the engine.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Runner) { r.hooks = hooks }
}

// WithYieldInterval overrides the checkpoint pause. Zero yields the
// scheduler without sleeping.
func WithYieldInterval(d time.Duration) Option {
	return func(r *Runner) { r.yield = d }
}

// New builds a Runner and its engine over the document tree.
func New(tree ports.DocumentTree, opts ...Option) (*Runner, error) {
	r := &Runner{
		input:  os.Stdin,
		output: os.Stdout,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tree:   tree,
		yield:  defaultYield,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.presenter = newJSONPresenter(r.output, r.logger)

	engineOpts := []sift.Option{
		sift.WithPresenter(r.presenter),
		sift.WithLogger(r.logger),
		sift.WithLifecycleHooks(r.hooks),
		sift.WithYieldInterval(r.yield),
	}
	if r.prefs != nil {
		engineOpts = append(engineOpts, sift.WithPreferenceStore(r.prefs))
	}
	eng, err := sift.New(tree, engineOpts...)
	if err != nil {
		return nil, err
	}
	r.engine = eng
	return r, nil
}

// Engine exposes the underlying engine for embedding scenarios.
func (r *Runner) Engine() *sift.Engine { return r.engine }

// Run restores preferences, announces the active scope, then processes
// messages until the input stream closes or the context is canceled.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.engine.LoadPreferences(ctx); err != nil {
		r.logger.Warn("loading preferences failed", "error", err)
	}
	r.presenter.emit(MsgScopeStart, map[string]any{"scope": r.engine.Scope()})

	scanner := bufio.NewScanner(r.input)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var env Envelope
		if err := decodeLine(line, &env); err != nil {
			r.presenter.emit(MsgError, map[string]any{"message": err.Error()})
			continue
		}
		r.dispatch(ctx, env)
	}
	return scanner.Err()
}

func (r *Runner) dispatch(ctx context.Context, env Envelope) {
	r.logger.Debug("message received", "type", env.Type)
	switch env.Type {
	case MsgFilterElements:
		var q domain.Query
		if err := decodePayload(env.Payload, &q); err != nil {
			r.presenter.emit(MsgError, map[string]any{"message": err.Error()})
			return
		}
		// Run reports errors through the presenter itself.
		if _, err := r.engine.Run(ctx, &q); err != nil {
			r.logger.Warn("query failed", "error", err)
		}

	case MsgInitializeCount:
		// An unfiltered enumeration of the active scope, used by front
		// ends to seed their element counter on startup.
		if _, err := r.engine.Run(ctx, &domain.Query{ElementKind: domain.ElementAny}); err != nil {
			r.logger.Warn("count failed", "error", err)
		}

	case MsgUpdateScope:
		var p UpdateScopePayload
		if err := decodePayload(env.Payload, &p); err != nil {
			r.presenter.emit(MsgError, map[string]any{"message": err.Error()})
			return
		}
		if err := r.engine.SetScope(ctx, p.Scope); err != nil {
			r.presenter.Notify(err.Error())
			return
		}
		r.presenter.emit(MsgScopeStart, map[string]any{"scope": p.Scope})

	case MsgIdentify:
		var p IdentifyPayload
		if err := decodePayload(env.Payload, &p); err != nil {
			r.presenter.emit(MsgError, map[string]any{"message": err.Error()})
			return
		}
		value, err := r.engine.Inspect(ctx, p.Key)
		if err != nil {
			return // engine already notified
		}
		r.presenter.emit(MsgIdentifyResult, map[string]any{"key": p.Key, "value": value})

	case MsgLoadSelection:
		attrs, err := r.engine.Snapshot(ctx)
		if err != nil {
			return
		}
		r.presenter.emit(MsgSelection, map[string]any{"attributes": attrs})

	case MsgSelectElement:
		var p SelectElementPayload
		if err := decodePayload(env.Payload, &p); err != nil {
			r.presenter.emit(MsgError, map[string]any{"message": err.Error()})
			return
		}
		if err := r.engine.SelectElement(ctx, p.ID); err != nil {
			r.presenter.Notify(err.Error())
		}

	case MsgGetFilename:
		r.presenter.emit(MsgFilename, map[string]any{"name": r.tree.Root().Name})

	case MsgResizeWindow:
		var p ResizeWindowPayload
		if err := decodePayload(env.Payload, &p); err != nil {
			r.presenter.emit(MsgError, map[string]any{"message": err.Error()})
			return
		}
		// No window to resize in this host; acknowledged for protocol
		// parity with plugin front ends.
		r.logger.Debug("resize ignored", "width", p.Width, "height", p.Height)

	default:
		r.presenter.emit(MsgError, map[string]any{
			"message": fmt.Sprintf("unknown message type %q", env.Type),
		})
	}
}

func decodeLine(line []byte, env *Envelope) error {
	if err := json.Unmarshal(line, env); err != nil {
		return fmt.Errorf("invalid message: %w", err)
	}
	if env.Type == "" {
		return fmt.Errorf("invalid message: missing type")
	}
	return nil
}

// decodePayload maps an envelope payload onto a typed struct, tolerating
// numeric looseness from JSON front ends.
func decodePayload(payload map[string]any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(payload); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	return nil
}
