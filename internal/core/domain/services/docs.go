// Package services contains the domain services of the batch labeling core:
//
//   - OrderGrouper: the deterministic grouping engine that partitions a flat
//     order snapshot into printable groups keyed by resolved customer name
//     and stock code
//   - TierClassifier: distributes groups into the five fixed quantity tiers
//   - LabelComposer: builds the printable one-page-per-order label document,
//     rendering barcodes through the external label-image collaborator
//
// Grouping and classification are pure functions; the composer's only side
// effect is invoking the rendering collaborator.
package services
