// Package query turns free-form search requests into structured intent.
//
// Interpretation is heuristic and never fails: recognized signals (minimum
// experience, required skills, availability) become hard filters, and the
// full request text is kept as the semantic text for embedding, so anything
// not recognized still contributes to ranking.
package query
