// Package service implements harness pair generation.
//
// Builder is the set builder: it samples drawings through the sampler,
// reads their wiring through the repository and keeps distinct pairs until
// the run's target size is reached or its attempt budget is spent.
//
// PairService wraps a Builder for the presentation adapters. It reads the
// drawing table, stamps each run with an ID and timestamp, keeps the latest
// run, publishes events on the EventBus and records Prometheus metrics.
//
// # Event System
//
// EventBus fans events out to subscribers without blocking; the HTTP server
// forwards them to Server-Sent Events clients so open grids refresh.
package service
