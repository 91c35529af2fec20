package password

import (
	"errors"
	"fmt"
)

var ErrInvalidProfile = errors.New("invalid profile")

// ProfileConfig describes a profile for NewProfile to validate and build.
type ProfileConfig struct {
	ID          string
	Description string

	// Body is the alphabet for every segment position without an entry
	// in Positions. It must not be empty.
	Body Charset

	// Positions optionally overrides the alphabet for the first
	// len(Positions) characters of each segment.
	Positions []Charset

	// Separators is the rotation of single characters placed between
	// segments, in order. Empty means segments run together.
	Separators string

	// Segments and SegmentLength form the default layout used when a
	// request supplies no layout parameters.
	Segments      int
	SegmentLength int

	// WordSafe promises that no character of the profile, separators
	// included, stops a double-click selection.
	WordSafe bool
}

// Profile is an immutable generation policy: which alphabets fill which
// positions, how segments are joined, and the default layout. Build one
// with NewProfile or fetch a built-in from a Catalog.
type Profile struct {
	id            string
	description   string
	body          Charset
	positions     []Charset
	separators    string
	segments      int
	segmentLength int
	wordSafe      bool
}

// NewProfile validates cfg and returns the profile it describes.
func NewProfile(cfg ProfileConfig) (Profile, error) {
	if cfg.ID == "" {
		return Profile{}, fmt.Errorf("%w: id required", ErrInvalidProfile)
	}
	if cfg.Body.Len() == 0 {
		return Profile{}, fmt.Errorf("%w: body charset is empty", ErrInvalidProfile)
	}
	if cfg.Segments < 1 || cfg.SegmentLength < 1 {
		return Profile{}, fmt.Errorf("%w: default layout must have at least one segment of one character", ErrInvalidProfile)
	}
	for i, cs := range cfg.Positions {
		if cs.Len() == 0 {
			return Profile{}, fmt.Errorf("%w: position %d charset is empty", ErrInvalidProfile, i)
		}
	}
	for i := 0; i < len(cfg.Separators); i++ {
		if b := cfg.Separators[i]; !SafeSeparators.Contains(b) {
			return Profile{}, fmt.Errorf("%w: separator %q outside the safe set %q", ErrUnsafeCharset, string(b), SafeSeparators)
		}
	}
	if cfg.WordSafe {
		if err := checkWordSafe(cfg); err != nil {
			return Profile{}, err
		}
	}

	positions := make([]Charset, len(cfg.Positions))
	copy(positions, cfg.Positions)

	return Profile{
		id:            cfg.ID,
		description:   cfg.Description,
		body:          cfg.Body,
		positions:     positions,
		separators:    cfg.Separators,
		segments:      cfg.Segments,
		segmentLength: cfg.SegmentLength,
		wordSafe:      cfg.WordSafe,
	}, nil
}

func checkWordSafe(cfg ProfileConfig) error {
	sets := append([]Charset{cfg.Body}, cfg.Positions...)
	for _, cs := range sets {
		for i := 0; i < cs.Len(); i++ {
			if b := cs.chars[i]; IsWordBoundary(b) {
				return fmt.Errorf("%w: word-safe profile contains boundary character %q", ErrUnsafeCharset, string(b))
			}
		}
	}
	for i := 0; i < len(cfg.Separators); i++ {
		if b := cfg.Separators[i]; IsWordBoundary(b) {
			return fmt.Errorf("%w: word-safe profile uses boundary separator %q", ErrUnsafeCharset, string(b))
		}
	}
	return nil
}

// ID returns the profile name used to select it.
func (p Profile) ID() string {
	return p.id
}

// Description returns the one-line human description.
func (p Profile) Description() string {
	return p.description
}

// Segments returns the default segment count.
func (p Profile) Segments() int {
	return p.segments
}

// SegmentLength returns the default characters per segment.
func (p Profile) SegmentLength() int {
	return p.segmentLength
}

// Separators returns the separator rotation, empty when segments join
// directly.
func (p Profile) Separators() string {
	return p.separators
}

// WordSafe reports whether a double-click selects the whole password.
func (p Profile) WordSafe() bool {
	return p.wordSafe
}

// CharsetAt returns the alphabet for position i within a segment: the
// positional override when one exists, otherwise the body.
func (p Profile) CharsetAt(i int) Charset {
	if i >= 0 && i < len(p.positions) {
		return p.positions[i]
	}
	return p.body
}

func mustProfile(cfg ProfileConfig) Profile {
	p, err := NewProfile(cfg)
	if err != nil {
		panic(err)
	}
	return p
}
