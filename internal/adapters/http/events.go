package http

import (
	"encoding/json"
	"sync"

	"github.com/atelier-tools/sift/pkg/domain"
	"github.com/atelier-tools/sift/pkg/ports"
)

// event is one server-sent message.
type event struct {
	Name string
	Data any
}

// Broker implements ports.Presenter by fanning engine messages out to
// every connected SSE subscriber. Slow subscribers drop messages rather
// than stalling the engine.
type Broker struct {
	mu   sync.Mutex
	subs map[chan event]struct{}
}

// NewBroker creates an empty broker. Wire it into the engine with
// sift.WithPresenter and into the router with NewHandler.
func NewBroker() *Broker {
	return &Broker{subs: make(map[chan event]struct{})}
}

func (b *Broker) subscribe() chan event {
	ch := make(chan event, 64)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *Broker) unsubscribe(ch chan event) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
	close(ch)
}

func (b *Broker) publish(name string, data any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- event{Name: name, Data: data}:
		default:
		}
	}
}

func (b *Broker) Loading(state domain.LoadingState) { b.publish("loading", state) }
func (b *Broker) Result(res *domain.QueryResult)    { b.publish("result", res) }
func (b *Broker) ResultsInvalidated()               { b.publish("results-invalidated", nil) }
func (b *Broker) Notify(message string) {
	b.publish("notify", map[string]string{"message": message})
}

// Download is streamed as metadata only; the payload is fetched over the
// query response, not the event channel.
func (b *Broker) Download(file domain.ExportFile) {
	b.publish("download", map[string]any{"name": file.Name, "size": len(file.Data)})
}

func encodeEvent(ev event) ([]byte, error) {
	if ev.Data == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(ev.Data)
}

var _ ports.Presenter = (*Broker)(nil)
