// Package conv provides safe integer type conversion utilities.
//
// Arena handles are uint32 while list sizes are int; converting a slot count
// into a handle goes through IntToUint32 so an oversized arena fails instead
// of wrapping around.
package conv
