package neobuffer

// CopyBuffer copies bytes from the front of src to the front of dst,
// at most max. The number copied is min(dst.Size(), src.Size(), max)
// and is returned. The regions must not overlap; overlapping views are
// an unchecked precondition violation, not a detected error.
func CopyBuffer(dst MutableBuffer, src Buffer, max int) int {
	n := src.Size()
	if dst.Size() < n {
		n = dst.Size()
	}
	if max < n {
		n = max
	}
	copy(dst.b[:n], src.b[:n])
	return n
}

// CopyN copies up to max bytes from the src sequence into the dst
// sequence, crossing chunk boundaries on each side independently. The
// total number of bytes copied is returned. The result is identical
// regardless of how the same logical bytes are chunked on either side.
func CopyN(dst MutableSequence, src ConstSequence, max int) int {
	remaining := max
	total := 0

	dstIter := dst.MutChunks()
	srcIter := src.Chunks()

	// Chunk boundaries rarely line up, so each side carries an
	// intra-chunk offset alongside its cursor.
	dstOff := 0
	srcOff := 0

	for !dstIter.AtEnd() && !srcIter.AtEnd() && remaining > 0 {
		srcBuf := srcIter.Buffer().Drop(srcOff)
		dstBuf := dstIter.Buffer().Drop(dstOff)

		n := CopyBuffer(dstBuf, srcBuf, remaining)
		total += n
		remaining -= n
		srcOff += n
		dstOff += n

		// A fully consumed chunk advances its own cursor only; the
		// other side keeps its position.
		if srcBuf.Size() == n {
			srcIter.Advance()
			srcOff = 0
		}
		if dstBuf.Size() == n {
			dstIter.Advance()
			dstOff = 0
		}
	}
	return total
}

// Copy copies from src into dst with a budget of
// min(Size(dst), Size(src)), guaranteeing that at least one side is
// exhausted. The total number of bytes copied is returned.
func Copy(dst MutableSequence, src ConstSequence) int {
	budget := Size(src)
	if d := Size(dst); d < budget {
		budget = d
	}
	return CopyN(dst, src, budget)
}
