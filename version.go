package sift

// Version is the library version. Overridable at build time with
// -ldflags "-X github.com/atelier-tools/sift.Version=v1.2.3".
var Version = "0.1.0"
