// Package kernel provides core domain primitives shared by the order model.
//
// The package includes:
//   - Money: an exact decimal amount used for product prices and order totals
//   - Sequence: a monotonic integer allocator for order identifiers
//
// Money wraps github.com/shopspring/decimal so that totals such as
// 999.99 × 1000 are computed without binary floating point drift.
package kernel
