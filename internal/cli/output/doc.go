// Package output renders batches, pages and counts in the formats the CLI
// supports: table, json, ndjson and yaml.
package output
