// Package parsing provides locale-aware value parsers for the heterogeneous
// cell encodings found in billing spreadsheet exports: pt-BR currency
// strings, Excel serial dates, mixed date layouts, and free-form
// installation/distributor identifiers.
//
// All parsers are total: malformed input degrades to a safe zero value (0,
// nil, or "") and never panics. Admissibility decisions belong to the
// classifiers, not to this package.
package parsing
