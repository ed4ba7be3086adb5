// Package group provides the derived grouping model: buckets of orders that
// share a resolved (customer name, stock code) key, classified into fixed
// quantity tiers for batch label printing.
//
// Groups are ephemeral. Every grouping pass rebuilds them from the full order
// snapshot and any previous pass's groups are discarded; nothing here is
// persisted or shared as mutable state.
package group
