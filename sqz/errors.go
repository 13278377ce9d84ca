// Package sqz implements the SQZ byte-scalable image codec: a reversible
// integer wavelet transform with WDR bitplane coding, producing streams
// where every prefix decodes to a progressively better reconstruction of
// the same image.
package sqz

import "errors"

var (
	// ErrInvalidParameter indicates an out-of-range descriptor on encode,
	// or a stream whose magic byte or header cannot be parsed on decode.
	ErrInvalidParameter = errors.New("sqz: invalid parameter")

	// ErrBufferTooSmall is the size-query protocol: DecodeInto with an empty
	// or undersized destination returns it together with the stream
	// descriptor, whose PixelBytes is the required size.
	ErrBufferTooSmall = errors.New("sqz: buffer too small")

	// ErrDataCorrupted indicates a header that parses but violates the
	// codec constraints (dimensions, levels, scan order, color mode).
	ErrDataCorrupted = errors.New("sqz: data corrupted")

	// ErrOutOfMemory indicates the image geometry exceeds what this
	// platform can address.
	ErrOutOfMemory = errors.New("sqz: out of memory")
)
