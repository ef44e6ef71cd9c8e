package neobuffer

// Result reports the progress of one transform step, or the accumulated
// totals of a driven operation.
type Result struct {
	BytesRead    int
	BytesWritten int
	// Done signals that the transformer reached a natural stopping
	// point. For the plain copy transformer this is every step; for a
	// framed codec it is the end of a frame.
	Done bool
}

// A Transformer maps bytes from a source view into a destination view,
// possibly carrying state across steps (partially consumed input,
// buffered output). A step must not read past src.Size() nor write past
// dst.Size(); how much it consumes and produces is its own decision.
// Instances are not reentrant: one driven operation must finish before
// the same instance is driven again.
type Transformer interface {
	Transform(dst MutableBuffer, src Buffer) Result
}

// CopyTransformer is the stateless reference transformer: each step is
// the pairwise copy bounded by both views, and every step is Done.
type CopyTransformer struct{}

// Transform copies min(dst.Size(), src.Size()) bytes.
func (CopyTransformer) Transform(dst MutableBuffer, src Buffer) Result {
	n := CopyBuffer(dst, src, src.Size())
	return Result{BytesRead: n, BytesWritten: n, Done: true}
}

// Transform runs a single step against a fixed destination. A
// destination with insufficient room yields a short BytesWritten; that
// is a normal partial result, and the driver never retries here — the
// caller decides whether to call again with more room.
func Transform(t Transformer, dst MutableBuffer, src Buffer) Result {
	return t.Transform(dst, src)
}

// minPrepare floors the capacity requested from a sink per step, so a
// transformer flushing buffered output after its input chunk is
// consumed still receives room to write into.
const minPrepare = 512

// Drive feeds src through t into out, chunk by chunk. Each source chunk
// is stepped until it is fully consumed and the transformer reports
// Done; the whole operation stops early when the sink grants no more
// room or the transformer reports Done while refusing further progress.
// The returned totals sum BytesRead/BytesWritten across all steps. An
// empty source performs zero steps and never calls into the sink.
func Drive(t Transformer, out Sink, src ConstSequence) Result {
	var total Result
	for it := src.Chunks(); !it.AtEnd(); it.Advance() {
		chunk := it.Buffer()
		if chunk.Empty() {
			continue
		}
		for {
			hint := chunk.Size()
			if hint < minPrepare {
				hint = minPrepare
			}
			dst := out.Prepare(hint)

			step := t.Transform(dst, chunk)
			out.Commit(step.BytesWritten)
			total.BytesRead += step.BytesRead
			total.BytesWritten += step.BytesWritten
			total.Done = step.Done

			chunk = chunk.Drop(step.BytesRead)
			if chunk.Empty() && step.Done {
				break
			}
			if step.BytesRead == 0 && step.BytesWritten == 0 {
				// Destination exhausted, or the transformer is
				// finished and refuses the remaining input.
				return total
			}
		}
	}
	return total
}

// TransformSeq drives t with a fixed multi-chunk destination. The
// destination does not grow; the operation stops once it is full.
func TransformSeq(t Transformer, dst MutableSequence, src ConstSequence) Result {
	return Drive(t, NewFixedSink(dst), src)
}
