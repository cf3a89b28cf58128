// Package batch fans identifier lists out over a bounded worker pool and
// exports the accepted games.
//
// Results are stored by input index, so flattening always follows the order
// of the input list regardless of completion order. Export shuffles nothing;
// callers shuffle explicitly with Shuffle before writing.
package batch
