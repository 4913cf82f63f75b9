// Package export writes band structures and DOS histograms for external
// consumers: whitespace-separated text for plotting, CSV tables, and a
// SQLite archive of runs.
//
// CSV writers validate every column length before the file is created, so a
// shape mismatch never leaves a partial file behind.
package export
