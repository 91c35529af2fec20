package password

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLayout     = errors.New("invalid layout")
	ErrConflictingLayout = errors.New("conflicting layout parameters")
)

// LayoutRequest carries a caller's optional layout overrides. Nil means the
// parameter was not supplied. An explicit zero or negative value is an
// error, never a fallback to the default.
type LayoutRequest struct {
	Length        *int
	Segments      *int
	SegmentLength *int
}

// SegmentPlan is a fully resolved layout: everything Generate needs to
// assemble one password. Plans come from ResolveLayout and are recomputed
// per request, never stored.
type SegmentPlan struct {
	Segments      int
	SegmentLength int

	separators string
}

// TotalLength returns the realized password length, separators included.
func (p SegmentPlan) TotalLength() int {
	return p.Segments*p.SegmentLength + (p.Segments-1)*p.separatorWidth()
}

// RandomPositions returns how many characters are drawn at random.
// Separators are fixed by the layout and do not count.
func (p SegmentPlan) RandomPositions() int {
	return p.Segments * p.SegmentLength
}

// Separators returns the separator rotation the plan applies.
func (p SegmentPlan) Separators() string {
	return p.separators
}

func (p SegmentPlan) separatorWidth() int {
	if p.separators == "" {
		return 0
	}
	return 1
}

// separatorAt returns the separator following segment i, cycling through
// the rotation when there are more gaps than symbols.
func (p SegmentPlan) separatorAt(i int) byte {
	return p.separators[i%len(p.separators)]
}

// ResolveLayout reconciles the request with the profile defaults into a
// concrete plan. A total length alone rounds up to the next whole segment,
// so the realized length may exceed it by up to one segment. When two of
// length, segments and segment length are given the third is derived, and
// all three together must agree exactly with
// segments*segmentLength + (segments-1)*separatorWidth.
func ResolveLayout(p Profile, req LayoutRequest) (SegmentPlan, error) {
	if req.Length != nil && *req.Length < 1 {
		return SegmentPlan{}, fmt.Errorf("%w: length %d must be positive", ErrInvalidLayout, *req.Length)
	}
	if req.Segments != nil && *req.Segments < 1 {
		return SegmentPlan{}, fmt.Errorf("%w: segments %d must be positive", ErrInvalidLayout, *req.Segments)
	}
	if req.SegmentLength != nil && *req.SegmentLength < 1 {
		return SegmentPlan{}, fmt.Errorf("%w: segment length %d must be positive", ErrInvalidLayout, *req.SegmentLength)
	}

	w := 0
	if p.separators != "" {
		w = 1
	}

	n, s := p.segments, p.segmentLength
	haveL := req.Length != nil
	haveN := req.Segments != nil
	haveS := req.SegmentLength != nil
	if haveN {
		n = *req.Segments
	}
	if haveS {
		s = *req.SegmentLength
	}

	switch {
	case !haveL:
		// Defaults fill whatever was not supplied. Nothing to reconcile.
	case haveN && haveS:
		if want := n*s + (n-1)*w; want != *req.Length {
			return SegmentPlan{}, fmt.Errorf("%w: %d segments of %d make a %d-character password, not %d",
				ErrConflictingLayout, n, s, want, *req.Length)
		}
	case haveN:
		body := *req.Length - (n-1)*w
		if body < n || body%n != 0 {
			return SegmentPlan{}, fmt.Errorf("%w: length %d does not divide into %d equal segments",
				ErrConflictingLayout, *req.Length, n)
		}
		s = body / n
	case haveS:
		if (*req.Length+w)%(s+w) != 0 {
			return SegmentPlan{}, fmt.Errorf("%w: length %d does not divide into %d-character segments",
				ErrConflictingLayout, *req.Length, s)
		}
		n = (*req.Length + w) / (s + w)
	default:
		// Length alone: enough whole segments to reach it.
		n = ceilDiv(*req.Length+w, s+w)
	}

	if n < 1 || s < 1 {
		return SegmentPlan{}, fmt.Errorf("%w: profile has no default layout", ErrInvalidLayout)
	}

	return SegmentPlan{Segments: n, SegmentLength: s, separators: p.separators}, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
