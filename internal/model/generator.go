package model

// GenerateRequest represents a password generation request.
// Pointer ints allow distinguishing between missing (nil -> profile
// default) and an explicit zero, which is rejected rather than defaulted.
type GenerateRequest struct {
	Profile       string `json:"profile"`
	Length        *int   `json:"length"`
	Segments      *int   `json:"segments"`
	SegmentLength *int   `json:"segment_length"`
	Count         int    `json:"count"`
}

// GenerateResponse represents a password generation response. Length and
// EntropyBits describe the realized layout, which may exceed a requested
// length after rounding up to whole segments.
type GenerateResponse struct {
	Passwords   []string `json:"passwords"`
	Profile     string   `json:"profile"`
	Length      int      `json:"length"`
	EntropyBits float64  `json:"entropy_bits"`
}

// ProfileInfo describes one selectable generation profile.
type ProfileInfo struct {
	ID            string  `json:"id"`
	Description   string  `json:"description"`
	ExampleLayout string  `json:"example_layout"`
	EntropyBits   float64 `json:"entropy_bits"`
}

// ProfilesResponse lists the available profiles.
type ProfilesResponse struct {
	Profiles []ProfileInfo `json:"profiles"`
}
