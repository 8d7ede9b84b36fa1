// Package domain contains the value types shared across the Sift engine:
// scene nodes and their optional attribute groups, filters and comparison
// operators, queries, actions, export presets and lifecycle events.
//
// The host document tree owns every Node; the engine only reads them and
// requests mutations through the ports layer.
package domain
