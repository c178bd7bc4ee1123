// Package manifest edits container manifests: it locates container image
// references in a workload document and rewrites them against a target
// registry, repository, and tag.
package manifest
