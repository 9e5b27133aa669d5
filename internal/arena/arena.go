// Package arena implements the bump-allocated scratch memory that freezes
// recorded GPU object descriptions for the lifetime of a Recorder or
// Replayer.
//
// An Allocator never frees individual allocations; it hands out regions
// from a growing sequence of blocks and releases everything at once when
// the owner is done with it (the Recorder or Replayer that holds it is
// discarded). This matches the deep-copy discipline described in
// the archive format's design notes: arrays, nested sub-structures,
// strings, and byte buffers are all duplicated into the arena so the
// application's original description can be freed immediately after a
// record call returns.
package arena

import "unsafe"

// minBlockSize is the smallest block the Allocator ever carves off; larger
// blocks are allocated on demand for big single requests (e.g. shader
// bytecode).
const minBlockSize = 64 * 1024

// Allocator is a forward-only bump arena. The zero value is ready to use.
//
// Allocator is not safe for concurrent use — callers serialize access the
// way the recorder's worker goroutine owns its arena exclusively and the
// replayer's parse call owns its arena exclusively.
type Allocator struct {
	blocks  [][]byte
	current []byte
	offset  int
}

// New returns an empty Allocator with no blocks yet allocated; the first
// block is carved on the first allocation.
func New() *Allocator {
	return &Allocator{}
}

// allocRaw reserves size bytes aligned to alignment from the current
// block, growing the arena with a fresh block if necessary. The returned
// region is always zero-filled (Go's runtime zeros every allocation, so
// there is no "uninitialized" variant to offer — callers that want to
// read the memory immediately are fine doing so).
func (a *Allocator) allocRaw(size, alignment int) []byte {
	if size == 0 {
		return nil
	}
	if alignment <= 0 {
		alignment = 1
	}

	aligned := alignUp(a.offset, alignment)
	if aligned+size > len(a.current) {
		a.growFor(size, alignment)
		aligned = alignUp(a.offset, alignment)
	}

	region := a.current[aligned : aligned+size : aligned+size]
	a.offset = aligned + size
	return region
}

// growFor appends a fresh block sized to satisfy at least one allocation
// of size bytes at the given alignment, and at least minBlockSize.
func (a *Allocator) growFor(size, alignment int) {
	blockSize := size + alignment
	if blockSize < minBlockSize {
		blockSize = minBlockSize
	}
	block := make([]byte, blockSize)
	a.blocks = append(a.blocks, block)
	a.current = block
	a.offset = 0
}

// alignUp rounds offset up to the next multiple of alignment.
func alignUp(offset, alignment int) int {
	return (offset + alignment - 1) &^ (alignment - 1)
}

// Bytes reserves and returns a zero-filled byte region of length n.
func (a *Allocator) Bytes(n int) []byte {
	if n == 0 {
		return nil
	}
	return a.allocRaw(n, 1)
}

// DupBytes duplicates src into the arena and returns the copy. A nil or
// empty src returns nil.
func (a *Allocator) DupBytes(src []byte) []byte {
	if len(src) == 0 {
		return nil
	}
	dst := a.Bytes(len(src))
	copy(dst, src)
	return dst
}

// DupString duplicates s into the arena, returning a string backed by
// arena memory (mirroring the source's "string with terminating null"
// deep copy — Go strings carry their own length, so no terminator is
// stored, but the byte content is independently owned by the arena the
// same way the null-terminated copy would be).
func (a *Allocator) DupString(s string) string {
	if s == "" {
		return ""
	}
	dst := a.Bytes(len(s))
	copy(dst, s)
	return unsafe.String(&dst[0], len(dst))
}

// Alloc reserves space for one T, zero-filled, and returns a pointer to it
// inside the arena.
func Alloc[T any](a *Allocator) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	align := int(unsafe.Alignof(zero))
	region := a.allocRaw(size, align)
	if region == nil {
		return new(T)
	}
	return (*T)(unsafe.Pointer(&region[0]))
}

// AllocSlice reserves space for n zero-filled Ts and returns them as a
// slice backed by arena memory.
func AllocSlice[T any](a *Allocator, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero)) * n
	align := int(unsafe.Alignof(zero))
	region := a.allocRaw(size, align)
	return unsafe.Slice((*T)(unsafe.Pointer(&region[0])), n)
}

// DupSlice duplicates src into the arena and returns the copy.
func DupSlice[T any](a *Allocator, src []T) []T {
	if len(src) == 0 {
		return nil
	}
	dst := AllocSlice[T](a, len(src))
	copy(dst, src)
	return dst
}

// Stats reports how much memory the arena has handed out, for diagnostics
// and tests.
type Stats struct {
	Blocks int
	Used   int
	Total  int
}

// Stats returns the current allocator statistics.
func (a *Allocator) Stats() Stats {
	total := 0
	for _, b := range a.blocks {
		total += len(b)
	}
	used := 0
	if len(a.blocks) > 0 {
		used = a.offset
		for _, b := range a.blocks[:len(a.blocks)-1] {
			used += len(b)
		}
	}
	return Stats{Blocks: len(a.blocks), Used: used, Total: total}
}
