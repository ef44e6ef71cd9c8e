// Package zstdbuf provides a zstd compression transformer for the
// neobuffer transform driver. Each fully consumed input chunk becomes
// one zstd frame; a frame larger than the destination is flushed
// across steps.
package zstdbuf

import (
	"github.com/klauspost/compress/zstd"

	neobuffer "github.com/zokrezyl/neo-buffer"
)

// Compressor is a stateful Transformer. It is not reentrant: one
// driven operation must finish before the instance is driven again.
type Compressor struct {
	enc   *zstd.Encoder
	frame []byte
	off   int
}

// NewCompressor returns a Compressor tuned for better compression, the
// same level the wire engines use.
func NewCompressor() (*Compressor, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return nil, err
	}
	return &Compressor{enc: enc}, nil
}

// Transform ingests src as one frame when no frame is pending, then
// writes as much of the pending frame as dst allows. Done is reported
// once the pending frame is fully flushed.
func (c *Compressor) Transform(dst neobuffer.MutableBuffer, src neobuffer.Buffer) neobuffer.Result {
	var res neobuffer.Result
	if c.off == len(c.frame) && !src.Empty() {
		c.frame = c.enc.EncodeAll(src.Bytes(), c.frame[:0])
		c.off = 0
		res.BytesRead = src.Size()
	}
	n := copy(dst.Bytes(), c.frame[c.off:])
	c.off += n
	res.BytesWritten = n
	res.Done = c.off == len(c.frame)
	return res
}
