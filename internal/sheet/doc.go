// Package sheet locates tabular structure inside arbitrary spreadsheet
// sheets. Exports rarely put the column labels on the first row, so the
// detector scans a bounded prefix of each sheet and scores candidate header
// rows by keyword match. Rows beneath the chosen header are materialized as
// case-insensitive label lookups for the classifiers.
package sheet
