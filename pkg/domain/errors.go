package domain

import "errors"

// ErrNoSelection is returned by single-node operations when nothing is
// selected.
var ErrNoSelection = errors.New("no selection found")

// ErrMultipleSelection is returned by single-node operations when more
// than one node is selected.
var ErrMultipleSelection = errors.New("select 1 element only")

// ErrPreferenceNotFound is returned by preference stores when no value
// has been persisted yet.
var ErrPreferenceNotFound = errors.New("preference not found")

// ErrUnknownNode is returned when a node ID cannot be resolved in the
// host tree.
var ErrUnknownNode = errors.New("unknown node")

// ErrUnknownPage is returned when a page ID cannot be resolved.
var ErrUnknownPage = errors.New("unknown page")
