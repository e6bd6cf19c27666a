package sense

// Points is a set of event coordinates, one []float64 per event, all of the
// same dimension.
//
// nil and empty are distinct by contract and every consumer preserves the
// distinction: a nil Points means "no observation produced", while a non-nil
// zero-length Points means "sensing occurred and yielded zero events".
// Checks must therefore use `pts == nil`, never `len(pts) == 0` alone.
type Points [][]float64

// mergePoints concatenates src onto dst, skipping absent observations.
// The first non-nil src initializes the buffer with a copy, so the caller's
// points are never aliased by later appends. A nil dst stays nil when src
// is nil, keeping "nothing observed this round" representable.
func mergePoints(dst, src Points) Points {
	if src == nil {
		return dst
	}
	if dst == nil {
		return append(Points{}, src...)
	}
	return append(dst, src...)
}
