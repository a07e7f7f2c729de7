// Package batch reads seed files that pre-populate the in-memory store at
// startup: plain text with one "term = definition" pair per line, or YAML
// documents describing one or more named sets.
package batch
