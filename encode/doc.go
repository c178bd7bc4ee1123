// Package encode renders trees as YAML or JSON and parses YAML or JSON
// documents into trees, preserving object field order in both directions.
package encode
