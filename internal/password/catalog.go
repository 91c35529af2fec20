package password

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownProfile = errors.New("unknown profile")

// Built-in profile names.
const (
	ProfileDefault  = "default"
	ProfileSimple   = "simple"
	ProfileParanoid = "paranoid"
)

// ProfileInfo summarizes a catalog entry for listing surfaces.
type ProfileInfo struct {
	ID            string
	Description   string
	ExampleLayout string
	EntropyBits   float64
}

// Catalog holds the built-in profiles. It is immutable after construction
// and safe for concurrent readers.
type Catalog struct {
	profiles map[string]Profile
	order    []string
}

// NewCatalog returns the standard catalog: default, simple and paranoid.
func NewCatalog() *Catalog {
	c := &Catalog{profiles: make(map[string]Profile)}
	for _, p := range builtinProfiles() {
		c.profiles[p.id] = p
		c.order = append(c.order, p.id)
	}
	return c
}

func builtinProfiles() []Profile {
	return []Profile{
		mustProfile(ProfileConfig{
			ID:            ProfileDefault,
			Description:   "mixed case + digits, double-click friendly",
			Body:          Union(Lower, Upper, Digit),
			Separators:    "_",
			Segments:      4,
			SegmentLength: 4,
			WordSafe:      true,
		}),
		mustProfile(ProfileConfig{
			ID:            ProfileSimple,
			Description:   "unambiguous lowercase + digits, easy to dictate",
			Body:          Union(LowerUnambiguous, DigitUnambiguous),
			Separators:    "_",
			Segments:      4,
			SegmentLength: 4,
			WordSafe:      true,
		}),
		mustProfile(ProfileConfig{
			ID:            ProfileParanoid,
			Description:   "rotating symbol separators, defeats double-click selection",
			Body:          Union(Lower, Upper, Digit),
			Separators:    ParanoidSymbols.String(),
			Segments:      4,
			SegmentLength: 4,
			WordSafe:      false,
		}),
	}
}

// Get returns the named profile. Unknown names produce an error listing
// the valid ones.
func (c *Catalog) Get(name string) (Profile, error) {
	p, ok := c.profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w %q, valid profiles: %s",
			ErrUnknownProfile, name, strings.Join(c.Names(), ", "))
	}
	return p, nil
}

// Names returns the profile names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// List describes every profile with its default layout shape and entropy.
func (c *Catalog) List() []ProfileInfo {
	infos := make([]ProfileInfo, 0, len(c.order))
	for _, name := range c.order {
		p := c.profiles[name]
		plan := SegmentPlan{Segments: p.segments, SegmentLength: p.segmentLength, separators: p.separators}
		infos = append(infos, ProfileInfo{
			ID:            p.id,
			Description:   p.description,
			ExampleLayout: exampleLayout(plan),
			EntropyBits:   Entropy(p, plan),
		})
	}
	return infos
}

// exampleLayout renders a plan's shape with x placeholders, for example
// "xxxx_xxxx_xxxx_xxxx" or "xxxx.xxxx-xxxx^xxxx".
func exampleLayout(plan SegmentPlan) string {
	var b strings.Builder
	for seg := 0; seg < plan.Segments; seg++ {
		if seg > 0 && plan.separators != "" {
			b.WriteByte(plan.separatorAt(seg - 1))
		}
		b.WriteString(strings.Repeat("x", plan.SegmentLength))
	}
	return b.String()
}
