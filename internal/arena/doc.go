// Package arena stores list elements addressed by stable handles.
//
// The master view and the partition view of a partitioned list hold the same
// Handle for an element, so the element itself is stored once. Clone copies the
// arena handle by handle, which keeps that sharing intact in the copy without
// any reference-identity bookkeeping.
//
// # Handles
//
// Handles are dense uint32 slots. Freed slots are reused (LIFO), so a handle is
// only meaningful while it is live.
package arena
