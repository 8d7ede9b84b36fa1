package sift_test

import (
	"context"
	"fmt"
	"log"

	"github.com/atelier-tools/sift"
	"github.com/atelier-tools/sift/pkg/adapters/memory"
	"github.com/atelier-tools/sift/pkg/domain"
)

// ExampleNew demonstrates running a filter query over an in-memory
// document tree. This is the embedded usage; the CLI and server modes
// wrap the same engine.
func ExampleNew() {
	// 1. Build a document. In real hosts the tree comes from a loader
	// such as yamldoc.LoadFile.
	page := &domain.Node{ID: "p1", Name: "Home", Kind: domain.KindPage}
	page.AppendChild(&domain.Node{
		ID: "n1", Name: "Hero", Kind: domain.KindFrame,
		Layout: &domain.Layout{Width: 1440, Height: 600},
	})
	page.AppendChild(&domain.Node{
		ID: "n2", Name: "Icon/Search", Kind: domain.KindVector,
		Layout: &domain.Layout{Width: 24, Height: 24},
	})
	page.AppendChild(&domain.Node{
		ID: "n3", Name: "Icon/Close", Kind: domain.KindVector,
		Layout: &domain.Layout{Width: 24, Height: 24},
	})

	tree, err := memory.NewDocumentTree(&domain.Document{
		Name:  "Site",
		Pages: []*domain.Node{page},
	})
	if err != nil {
		log.Fatal(err)
	}

	// 2. Initialize the engine over the tree.
	engine, err := sift.New(tree)
	if err != nil {
		log.Fatal(err)
	}

	// 3. Run a query: every vector whose name contains "Icon".
	res, err := engine.Run(context.Background(), &domain.Query{
		ElementKind: domain.ElementKind(domain.KindVector),
		Filters: []domain.Filter{
			{Key: domain.KeyLayerName, Comparison: domain.CompareContains, Value: "Icon"},
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("matched %d of %d nodes on the current page\n", res.Count, res.CurrentPageCount)
	for _, el := range res.Elements {
		fmt.Println(el.Name)
	}
	// Output:
	// matched 2 of 3 nodes on the current page
	// Icon/Search
	// Icon/Close
}

// ExampleEngine_Run_rename shows a bulk rename driven by the placeholder
// template.
func ExampleEngine_Run_rename() {
	page := &domain.Node{ID: "p1", Name: "Assets", Kind: domain.KindPage}
	page.AppendChild(&domain.Node{ID: "n1", Name: "Rectangle 14", Kind: domain.KindRectangle})
	page.AppendChild(&domain.Node{ID: "n2", Name: "Rectangle 7", Kind: domain.KindRectangle})

	tree, err := memory.NewDocumentTree(&domain.Document{Name: "Lib", Pages: []*domain.Node{page}})
	if err != nil {
		log.Fatal(err)
	}
	engine, err := sift.New(tree)
	if err != nil {
		log.Fatal(err)
	}

	_, err = engine.Run(context.Background(), &domain.Query{
		ElementKind:    domain.ElementKind(domain.KindRectangle),
		Action:         domain.ActionRename,
		RenameTemplate: "tile-{id}",
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, n := range tree.CurrentPage().Children {
		fmt.Println(n.Name)
	}
	// Output:
	// tile-1
	// tile-2
}
