// Package pkg provides the libraries behind the mffmt formatter.
//
// # Overview
//
// mffmt rewrites MathFlow JSON graphs and .mfapp manifests into a fixed
// hybrid layout: top-level members indented four spaces, the "nodes" and
// "links" arrays written one compact element per line, and everything else
// pretty-printed. The pkg directory is organized as:
//
//  1. [jsondoc] - Ordered JSON document model (member order, number literals)
//  2. [layout] - The layout itself, a pure function from bytes to bytes
//  3. [discover] - Recursive file discovery with glob patterns and exclusions
//  4. [rewrite] - Per-file formatting and the sequential batch runner
//  5. [config] - Optional .mffmt.toml discovery settings
//
// Supporting packages: [errors] (coded errors), [io] (file read/write),
// [observability] (hooks), and [buildinfo] (version information).
//
// # Architecture
//
//	    directory tree
//	         ↓
//	    [discover] package (matching paths, exclusions applied)
//	         ↓
//	    [rewrite] package (read, format in memory, write back)
//	         ↓
//	    [layout] package ([jsondoc] parse + render)
//
// # Quick Start
//
// Format a document in memory:
//
//	out, err := layout.Format([]byte(`{"nodes":[{"id":1}],"name":"demo"}`))
//
// Format every file under a directory:
//
//	paths, err := discover.Find(ctx, "graphs", discover.Options{})
//	results, err := rewrite.NewRunner(nil, logger).Run(ctx, paths, rewrite.Options{})
//
// [jsondoc]: https://pkg.go.dev/github.com/matzehuels/mffmt/pkg/jsondoc
// [layout]: https://pkg.go.dev/github.com/matzehuels/mffmt/pkg/layout
// [discover]: https://pkg.go.dev/github.com/matzehuels/mffmt/pkg/discover
// [rewrite]: https://pkg.go.dev/github.com/matzehuels/mffmt/pkg/rewrite
// [config]: https://pkg.go.dev/github.com/matzehuels/mffmt/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/mffmt/pkg/errors
// [io]: https://pkg.go.dev/github.com/matzehuels/mffmt/pkg/io
// [observability]: https://pkg.go.dev/github.com/matzehuels/mffmt/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/mffmt/pkg/buildinfo
package pkg
