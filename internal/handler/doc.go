// Package handler implements the HTTP surface of harnesspair.
//
// PairHandler serves the results grid page with its Refresh button, the
// JSON API over pairs and drawings, and exports of the latest run.
//
// # Routes
//
//	GET  /                          results grid
//	POST /refresh                   regenerate, redirect to /
//	GET  /api/pairs                 latest run
//	POST /api/pairs/refresh         regenerate
//	GET  /api/drawings              all drawings
//	GET  /api/drawings/{id}         one drawing
//	GET  /api/drawings/{id}/wires   wires of one drawing
//	GET  /api/export/{format}       json, yaml or xlsx
//	GET  /events                    Server-Sent Events
//	GET  /metrics                   Prometheus
//
// # Response Format
//
// Errors are returned as JSON with {error, details}. Invalid arguments map
// to 422, insufficient distinct pairs to 409, unknown drawings to 404 and
// storage failures to 503.
package handler
