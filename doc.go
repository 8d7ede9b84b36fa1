/*
Package sift is a filter and bulk-action engine for design document
trees: evaluate attribute conditions over the nodes of a scene graph and
select, rename, duplicate, delete or export every match in one pass.

It follows a hexagonal architecture. The core engine owns the query
semantics (filter compilation, the ordered left-to-right combinator,
cooperative traversal, action dispatch) while ports decouple it from the
host document, the presentation layer, preference persistence and export
packaging. This lets the same engine drive a CLI, an HTTP server, an MCP
server or an embedded library host.

# Concept

A query is a list of filters, each naming an attribute, a comparison and
a literal value. Filters combine left to right: the first filter seeds
the verdict and each following one ANDs or ORs its own result with the
running accumulator. The matched set is ephemeral; every run traverses
the live tree again.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/atelier-tools/sift"
		"github.com/atelier-tools/sift/pkg/adapters/memory"
		"github.com/atelier-tools/sift/pkg/adapters/yamldoc"
		"github.com/atelier-tools/sift/pkg/domain"
	)

	func main() {
		doc, err := yamldoc.LoadFile("document.yaml")
		if err != nil {
			log.Fatal(err)
		}
		tree, err := memory.NewDocumentTree(doc)
		if err != nil {
			log.Fatal(err)
		}

		eng, err := sift.New(tree)
		if err != nil {
			log.Fatal(err)
		}

		res, err := eng.Run(context.Background(), &domain.Query{
			Scope:       domain.ScopeCurrentPage,
			ElementKind: domain.ElementAny,
			Filters: []domain.Filter{
				{Key: domain.KeyWidth, Comparison: domain.CompareLargerThan, Value: "100"},
				{Key: domain.KeyLayerName, Comparison: domain.CompareContains, Value: "Icon", Logic: domain.LogicAnd},
			},
		})
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("matched %d elements", res.Count)
	}
*/
package sift
