// Package bitmap provides compressed sets of list positions.
//
// Positions wraps a Roaring bitmap. Bulk operations collect the positions they
// affect first and then test membership while compacting, so a removal of k
// out of n elements costs one pass over n instead of k cascades.
//
// # Usage
//
//	doomed := bitmap.New()
//	doomed.Add(3)
//	doomed.Add(7)
//	doomed.Contains(3)   // true
//	for i := range doomed.All() { ... }
package bitmap
