// Package pipeline orchestrates the row classification pass over a decoded
// workbook: header detection per sheet, classifier dispatch per row, and
// aggregation of canonical rows and processing statistics.
//
// Row-level data quality problems never surface as errors; they are counted
// in the statistics and the row is omitted. Only structural failures fail
// the whole file: no billing header in any sheet, or an unresolvable file
// that needs a manual project code.
package pipeline
