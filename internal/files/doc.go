// Package files reads gradebook exports from disk and discovers them.
//
// This package contains two main components:
//
// Loaders: LoadCSV and LoadXLSX read one spreadsheet export into a raw
// table; LoadSources loads and normalizes every configured export
// concurrently while preserving configuration order.
//
// Discovery: Provides file discovery operations such as finding gradebook
// exports and report CSV files, and picking the most recent one.
//
// Example usage:
//
//	// Load every configured gradebook
//	tables, err := files.LoadSources(ctx, cfg.Course.Gradebooks, info, paths, diags)
//
//	// Find the most recent report
//	discovery := files.NewDiscovery(paths.ReportsDir)
//	reports, err := discovery.FindCSVFiles(".")
//	latest, ok := files.GetLatestFile(reports)
package files
