// Package dataset loads employee profiles from JSON and CSV files.
//
// A dataset that fails to parse as a whole is a fatal error. Individual
// records that fail validation are rejected one by one and reported in the
// load result without aborting the rest of the file, so one malformed row
// never blocks an otherwise good dataset.
//
// Records without an explicit id get a deterministic one derived from their
// name. Merging two profile sets replaces records by id, with new records
// appended in input order.
package dataset
