// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package wire builds the element-size algebra, generic sequence/option/
// result containers, and Unsized-scope helpers codec-able aggregate
// types use on top of bitio's cursors. Apart from RefVec.Owned, which
// copies the decoded elements into a new slice, it works over the
// buffers and slices callers hand it.
package wire

import "errors"

// A RefVec's element count exceeded what a reverse 16-bit slot can hold
// prior to compaction (the same 0xFFFF ceiling bitio.ErrItemTooLong
// applies to).
var ErrVecTooLong = errors.New("wire: vector longer than 0xffff elements")

// An enum discriminant read from the wire names no known variant: either
// the data is malformed, or it was written by a future encoder that
// added variants this decoder does not know about.
var ErrEnumFutureVersionOrMalformedData = errors.New("wire: enum discriminant is a future version or malformed data")
