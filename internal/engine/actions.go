package engine

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/atelier-tools/sift/pkg/domain"
)

// selectionSet indexes the user's checkbox sub-selection. Nil means
// every match is in play.
func selectionSet(selectedIDs []string) map[string]struct{} {
	if selectedIDs == nil {
		return nil
	}
	keep := make(map[string]struct{}, len(selectedIDs))
	for _, id := range selectedIDs {
		keep[id] = struct{}{}
	}
	return keep
}

// applied narrows the matched set to the sub-selection, keeping the
// matched order.
func applied(matched []*domain.Node, selectedIDs []string) []*domain.Node {
	keep := selectionSet(selectedIDs)
	if keep == nil {
		return matched
	}
	out := make([]*domain.Node, 0, len(matched))
	for _, n := range matched {
		if _, ok := keep[n.ID]; ok {
			out = append(out, n)
		}
	}
	return out
}

// applyAction runs the query's bulk action over the matched set and
// returns the number of nodes acted on plus the download artifact for
// export actions.
func (e *Engine) applyAction(ctx context.Context, q *domain.Query, runID string, matched []*domain.Node) (int, *domain.ExportFile, error) {
	targets := applied(matched, q.SelectedIDs)
	if len(targets) == 0 {
		return 0, nil, nil
	}

	switch q.Action {
	case domain.ActionSelect:
		return e.actionSelect(ctx, q.Scope, targets)
	case domain.ActionRename:
		return e.actionRename(ctx, q, matched)
	case domain.ActionDuplicate:
		return e.actionDuplicate(ctx, targets)
	case domain.ActionDelete:
		return e.actionDelete(ctx, targets)
	case domain.ActionExport:
		return e.actionExport(ctx, q, runID, targets)
	}
	return 0, nil, nil
}

// actionSelect replaces the host selection with the targets. The host
// cannot select across pages, so under the all-pages scope only targets
// on the current page survive; the assignment happens even when that
// leaves the selection empty.
func (e *Engine) actionSelect(ctx context.Context, scope domain.Scope, targets []*domain.Node) (int, *domain.ExportFile, error) {
	nodes := targets
	if scope == domain.ScopeAllPages {
		page := e.tree.CurrentPage()
		nodes = make([]*domain.Node, 0, len(targets))
		for _, n := range targets {
			if n.Page() == page {
				nodes = append(nodes, n)
			}
		}
	}
	if err := e.tree.SetSelection(ctx, nodes); err != nil {
		return 0, nil, err
	}
	return len(nodes), nil, nil
}

// actionRename renames each selected node from the placeholder template.
// Index tokens are keyed by the node's position in the full matched
// list, so numbering stays stable under a partial sub-selection. With a
// replace pattern the template result substitutes only the pattern's
// matches inside the existing name; otherwise it replaces the whole name.
func (e *Engine) actionRename(ctx context.Context, q *domain.Query, matched []*domain.Node) (int, *domain.ExportFile, error) {
	var replaceRE *regexp.Regexp
	if q.RenameReplace != "" {
		re, err := regexp.Compile(q.RenameReplace)
		if err != nil {
			return 0, nil, fmt.Errorf("invalid replace pattern: %w", err)
		}
		replaceRE = re
	}
	keep := selectionSet(q.SelectedIDs)
	renamed := 0
	for i, n := range matched {
		if keep != nil {
			if _, ok := keep[n.ID]; !ok {
				continue
			}
		}
		next := e.expandTemplate(q.RenameTemplate, n, i)
		if replaceRE != nil {
			next = replaceRE.ReplaceAllString(n.Name, next)
		}
		if err := e.tree.Rename(ctx, n, next); err != nil {
			return renamed, nil, err
		}
		renamed++
	}
	return renamed, nil, nil
}

// expandTemplate resolves the rename placeholders for one target.
// {alphabet} cycles a..z by the target's position in the matched list.
func (e *Engine) expandTemplate(tmpl string, n *domain.Node, index int) string {
	out := tmpl
	out = strings.ReplaceAll(out, "{id}", strconv.Itoa(index+1))
	out = strings.ReplaceAll(out, "{name}", n.Name)
	out = strings.ReplaceAll(out, "{page}", n.PageName())
	out = strings.ReplaceAll(out, "{date}", e.clock().Format("2006-01-02"))
	out = strings.ReplaceAll(out, "{alphabet}", string(rune('a'+index%26)))
	return out
}

// actionDuplicate clones each target onto the current page, then selects
// and reveals the clones.
func (e *Engine) actionDuplicate(ctx context.Context, targets []*domain.Node) (int, *domain.ExportFile, error) {
	clones := make([]*domain.Node, 0, len(targets))
	for _, n := range targets {
		clone, err := e.tree.Clone(ctx, n)
		if err != nil {
			return len(clones), nil, err
		}
		clones = append(clones, clone)
	}
	if err := e.tree.SetSelection(ctx, clones); err != nil {
		return len(clones), nil, err
	}
	e.tree.ScrollAndZoomIntoView(clones)
	return len(clones), nil, nil
}

func (e *Engine) actionDelete(ctx context.Context, targets []*domain.Node) (int, *domain.ExportFile, error) {
	removed := 0
	for _, n := range targets {
		if err := e.tree.Remove(ctx, n); err != nil {
			return removed, nil, err
		}
		removed++
	}
	return removed, nil, nil
}

// actionExport renders every preset of every target, applies the query's
// per-field overrides, and hands the collected files to the sink. A
// failing render is logged and skipped; the batch continues.
func (e *Engine) actionExport(ctx context.Context, q *domain.Query, runID string, targets []*domain.Node) (int, *domain.ExportFile, error) {
	var files []domain.ExportFile
	exported := 0
	for _, n := range targets {
		presets := n.ExportPresets
		if len(presets) == 0 {
			presets = []domain.ExportPreset{domain.DefaultExportPreset()}
		}
		ok := false
		for _, preset := range presets {
			preset = q.Export.Apply(preset)
			data, err := e.tree.Export(ctx, n, preset)
			if err != nil {
				e.logger.Warn("export failed, skipping node",
					"node_id", n.ID, "name", n.Name, "error", err)
				if e.hooks.OnExportError != nil {
					e.hooks.OnExportError(ctx, &domain.ExportErrorEvent{
						Timestamp: time.Now(), RunID: runID, NodeID: n.ID, Err: err,
					})
				}
				continue
			}
			files = append(files, domain.ExportFile{Name: preset.Filename(n.Name), Data: data})
			ok = true
		}
		if ok {
			exported++
		}
	}
	if len(files) == 0 {
		return 0, nil, nil
	}

	// A single node delivers its renders directly, one per preset; a
	// multi-node batch always ships as one archive.
	if len(targets) == 1 {
		for i := range files {
			e.presenter.Download(files[i])
		}
		last := files[len(files)-1]
		return exported, &last, nil
	}

	download, err := e.sink.Package(ctx, files)
	if err != nil {
		return exported, nil, err
	}
	e.presenter.Download(*download)
	return exported, download, nil
}
