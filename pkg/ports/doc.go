// Package ports defines the boundary interfaces between the Sift engine
// and its external collaborators: the host document tree, the
// presentation layer, the export sink and preference persistence.
//
// The engine depends only on these interfaces; adapters provide the
// concrete implementations.
package ports
