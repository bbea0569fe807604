// Package checksum computes the source-file checksum stamped in a compiled
// bytecode file's header. It is a driver-level policy, not a core VM,
// parser, or bytecode concern: the core packages only care that a checksum
// is a 32-bit unsigned value, not how one is derived from source bytes.
package checksum

// Sum returns the checksum of source: the sum of its bytes, modulo 100000.
func Sum(source []byte) uint32 {
	var total uint64
	for _, b := range source {
		total += uint64(b)
	}
	return uint32(total % 100000)
}
