package service

import (
	"errors"
	"fmt"

	"github.com/realgenekim/genpassword/internal/model"
	"github.com/realgenekim/genpassword/internal/password"
)

const (
	// DefaultCount is used when a request does not say how many
	// passwords it wants.
	DefaultCount = 1

	// MaxCount bounds a single request. Batch users script around it.
	MaxCount = 1000
)

var ErrInvalidCount = errors.New("invalid password count")

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	catalog *password.Catalog
	source  password.RandomSource
}

// NewGeneratorService creates a GeneratorService drawing from source.
func NewGeneratorService(catalog *password.Catalog, source password.RandomSource) *GeneratorService {
	return &GeneratorService{catalog: catalog, source: source}
}

// Generate produces passwords based on the given request. Every password
// in the batch shares one resolved layout, so layout errors surface before
// any text is drawn.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	name := req.Profile
	if name == "" {
		name = password.ProfileDefault
	}
	profile, err := s.catalog.Get(name)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	plan, err := password.ResolveLayout(profile, password.LayoutRequest{
		Length:        req.Length,
		Segments:      req.Segments,
		SegmentLength: req.SegmentLength,
	})
	if err != nil {
		return model.GenerateResponse{}, err
	}

	count := req.Count
	if count == 0 {
		count = DefaultCount
	}
	if count < 0 {
		return model.GenerateResponse{}, fmt.Errorf("%w: %d must be positive", ErrInvalidCount, req.Count)
	}
	if count > MaxCount {
		return model.GenerateResponse{}, fmt.Errorf("%w: %d exceeds the maximum of %d", ErrInvalidCount, req.Count, MaxCount)
	}

	resp := model.GenerateResponse{
		Passwords: make([]string, 0, count),
		Profile:   profile.ID(),
		Length:    plan.TotalLength(),
	}
	for i := 0; i < count; i++ {
		generated, err := password.Generate(profile, plan, s.source)
		if err != nil {
			return model.GenerateResponse{}, err
		}
		resp.Passwords = append(resp.Passwords, generated.Text)
		resp.EntropyBits = generated.EntropyBits
	}

	return resp, nil
}

// Profiles lists the selectable profiles in catalog order.
func (s *GeneratorService) Profiles() []model.ProfileInfo {
	infos := s.catalog.List()
	out := make([]model.ProfileInfo, 0, len(infos))
	for _, info := range infos {
		out = append(out, model.ProfileInfo{
			ID:            info.ID,
			Description:   info.Description,
			ExampleLayout: info.ExampleLayout,
			EntropyBits:   info.EntropyBits,
		})
	}
	return out
}
