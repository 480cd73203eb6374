// Package product defines the catalog item an order refers to.
//
// A Product is a read-only value: once built through NewProduct its id,
// name, price and description never change. Orders keep a copy of the
// product they were placed for, so later catalog edits do not alter
// historical totals.
package product
