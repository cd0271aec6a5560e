// Package hr loads the practice schema and seed data.
//
// The seven HR tables (regions, countries, locations, departments, jobs,
// employees, dependents) are defined entirely by the external schema file;
// this package pipes that file and the seed inserts into DuckDB and
// verifies the result with per-table row counts.
//
//	loader := hr.Loader{Config: db.DefaultConfig()}
//	if err := loader.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// Schema and data files may live beside the binary, behind an HTTP or S3
// URL, or in a git repository fetched with FetchPack.
package hr
