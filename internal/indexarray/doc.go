// Package indexarray provides the parallel integer arrays used to map positions
// between the master view of a partitioned list and its partitions.
//
// An Array is a growable []int with positional insert/delete, a lower-bound
// search (valid when the array is sorted) and range shifts used by the index
// cascade.
package indexarray
