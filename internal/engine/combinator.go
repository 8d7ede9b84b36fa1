package engine

import (
	"github.com/atelier-tools/sift/pkg/domain"
)

// FilterSet is a compiled, order-preserving list of filters. Compiling
// up front surfaces malformed regex literals before any node is visited.
type FilterSet struct {
	filters []*compiledFilter
}

// CompileFilters validates and pre-processes a filter list.
func CompileFilters(filters []domain.Filter) (*FilterSet, error) {
	set := &FilterSet{filters: make([]*compiledFilter, 0, len(filters))}
	for _, f := range filters {
		cf, err := compileFilter(f)
		if err != nil {
			return nil, err
		}
		set.filters = append(set.filters, cf)
	}
	return set, nil
}

// Empty reports whether the set carries no conditions.
func (s *FilterSet) Empty() bool { return len(s.filters) == 0 }

// Verdict folds the filters left to right. The first filter seeds the
// accumulator and its logic tag is ignored; each later filter combines
// its own result with the accumulator under its own logic tag. An empty
// set matches everything. The fold is strictly sequential, so
// (A OR B AND C) reads as ((A OR B) AND C).
func (s *FilterSet) Verdict(n *domain.Node) bool {
	if len(s.filters) == 0 {
		return true
	}
	acc := evaluate(n, s.filters[0])
	for _, f := range s.filters[1:] {
		hit := evaluate(n, f)
		if f.Logic == domain.LogicAnd {
			acc = acc && hit
		} else {
			acc = acc || hit
		}
	}
	return acc
}
