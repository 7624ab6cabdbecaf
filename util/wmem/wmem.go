/*
 * tostr - Scoped memory for rendered strings.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package wmem

import (
	"unsafe"
)

// Scope hands out memory whose lifetime belongs to the caller of the
// routine that received the scope, not to the routine itself.
type Scope interface {
	Alloc(size int) []byte
}

// DefaultBlockSize is used when NewArena is given a non-positive size.
const DefaultBlockSize = 8 * 1024

type heap struct{}

func (heap) Alloc(size int) []byte {
	return make([]byte, size)
}

// Heap returns a scope which allocates every request separately.
func Heap() Scope {
	return heap{}
}

// Arena is a bump allocator over fixed size blocks.
// Freed blocks are dropped, never recycled, so strings handed out from an
// arena stay valid for as long as they are referenced.
// An Arena is not safe for concurrent use.
type Arena struct {
	cur       []byte // Remaining space of current block.
	blockSize int    // Size of new blocks.
	blocks    int    // Number of blocks handed out since last Free.
	used      int    // Bytes handed out since last Free.
}

// Create a new arena.
func NewArena(blockSize int) *Arena {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &Arena{blockSize: blockSize}
}

// Alloc returns size zeroed bytes. Requests larger than a block get a
// block of their own.
func (a *Arena) Alloc(size int) []byte {
	if size < 0 {
		panic("wmem: negative allocation size")
	}
	a.used += size
	if size > a.blockSize {
		a.blocks++
		return make([]byte, size)
	}
	if size > len(a.cur) {
		a.cur = make([]byte, a.blockSize)
		a.blocks++
	}
	buf := a.cur[:size:size]
	a.cur = a.cur[size:]
	return buf
}

// Free ends the scope.
func (a *Arena) Free() {
	a.cur = nil
	a.blocks = 0
	a.used = 0
}

// Used returns bytes allocated since the last Free.
func (a *Arena) Used() int {
	return a.used
}

// Blocks returns the number of blocks allocated since the last Free.
func (a *Arena) Blocks() int {
	return a.blocks
}

// Alloc allocates from scope, a nil scope allocates from the heap.
func Alloc(scope Scope, size int) []byte {
	if scope == nil {
		return make([]byte, size)
	}
	return scope.Alloc(size)
}

// String returns buf as a string without copying.
// buf must not be written after the call.
func String(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	return unsafe.String(&buf[0], len(buf))
}

// Strdup copies str into scope.
func Strdup(scope Scope, str string) string {
	buf := Alloc(scope, len(str))
	copy(buf, str)
	return String(buf)
}
