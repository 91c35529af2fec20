package password

import (
	"fmt"
	"strings"
)

// GeneratedPassword is one synthesized password plus the figures callers
// display alongside it.
type GeneratedPassword struct {
	Text        string
	EntropyBits float64
	ProfileID   string
}

// Generate assembles one password for the plan, drawing each random
// position independently from src and interleaving the plan's separators.
// A draw failure aborts the whole password: the caller gets the error and
// no partial text.
func Generate(p Profile, plan SegmentPlan, src RandomSource) (GeneratedPassword, error) {
	if src == nil {
		return GeneratedPassword{}, fmt.Errorf("%w: no source configured", ErrRandomSource)
	}
	if plan.Segments < 1 || plan.SegmentLength < 1 {
		return GeneratedPassword{}, fmt.Errorf("%w: plan has no positions to fill", ErrInvalidLayout)
	}
	for i := 0; i < plan.SegmentLength; i++ {
		if p.CharsetAt(i).Len() == 0 {
			return GeneratedPassword{}, fmt.Errorf("%w: empty alphabet at segment position %d", ErrInvalidProfile, i)
		}
	}

	var b strings.Builder
	b.Grow(plan.TotalLength())
	for seg := 0; seg < plan.Segments; seg++ {
		if seg > 0 && plan.separators != "" {
			b.WriteByte(plan.separatorAt(seg - 1))
		}
		for i := 0; i < plan.SegmentLength; i++ {
			cs := p.CharsetAt(i)
			idx, err := src.Intn(cs.Len())
			if err != nil {
				return GeneratedPassword{}, fmt.Errorf("%w: %v", ErrRandomSource, err)
			}
			b.WriteByte(cs.chars[idx])
		}
	}

	return GeneratedPassword{
		Text:        b.String(),
		EntropyBits: Entropy(p, plan),
		ProfileID:   p.id,
	}, nil
}
