// Package testutil provides testing utilities for partlist.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source and a generator of random operation
// scripts for differential testing against a reference model.
//
// # Random Operation Scripts
//
//	rng := testutil.NewRNG(seed)
//	for _, op := range rng.Ops(1000, 4, 1.2) {
//	    switch op.Kind {
//	    case testutil.OpInsert:
//	        i := op.Pick % (list.Len() + 1)
//	        // ...
//	    }
//	}
//
// Keys are drawn from a Zipf distribution, so some partitions grow large while
// others stay empty or flip between empty and non-empty.
package testutil
