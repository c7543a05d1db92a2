// Package respond shapes ranked results into the structures returned to
// callers: a JSON-serializable response for the HTTP surface and a plain
// text rendering for the CLI.
package respond
