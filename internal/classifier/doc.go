// Package classifier decides which project family owns a spreadsheet row
// and transforms it into the canonical billing record.
//
// Classifiers form a fixed priority chain: the specialized EGS vendor format
// first, the Era Verde regional family second, and the standard named
// projects last. The first classifier whose Matches accepts a row owns it;
// later classifiers are never consulted. Process either returns a canonical
// row or a Rejection carrying the reason used for statistics, never an
// error: bad data is an expected outcome here.
package classifier
