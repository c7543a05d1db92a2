// Package rank orders indexed profiles against a query intent.
//
// The query's semantic text is embedded once per request; each candidate's
// score is the cosine similarity between that vector and the candidate's
// indexed vector. Structured filters (required skills, minimum experience,
// availability) act as gates before scoring, never as score adjustments.
// Ties are broken by ascending profile id so rankings are reproducible.
package rank
