package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/realgenekim/genpassword/internal/model"
	"github.com/realgenekim/genpassword/internal/password"
)

func intPtr(i int) *int { return &i }

func newTestService() *GeneratorService {
	return NewGeneratorService(password.NewCatalog(), password.CryptoSource{})
}

func TestGenerate_Defaults(t *testing.T) {
	svc := newTestService()
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Profile != password.ProfileDefault {
		t.Errorf("expected default profile, got %q", resp.Profile)
	}
	if resp.Length != 19 {
		t.Errorf("expected length 19, got %d", resp.Length)
	}
	if len(resp.Passwords) != 1 {
		t.Fatalf("expected 1 password, got %d", len(resp.Passwords))
	}
	if len(resp.Passwords[0]) != 19 {
		t.Errorf("expected password length 19, got %d", len(resp.Passwords[0]))
	}
	if resp.EntropyBits < 95 || resp.EntropyBits > 96 {
		t.Errorf("expected about 95 bits, got %.2f", resp.EntropyBits)
	}
}

func TestGenerate_SimpleProfileWithFiveSegments(t *testing.T) {
	svc := newTestService()
	resp, err := svc.Generate(model.GenerateRequest{
		Profile:  password.ProfileSimple,
		Segments: intPtr(5),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 24 {
		t.Errorf("expected length 24, got %d", resp.Length)
	}
	if resp.EntropyBits < 99 || resp.EntropyBits > 100 {
		t.Errorf("expected about 99 bits, got %.2f", resp.EntropyBits)
	}
}

func TestGenerate_LengthRoundsUpToWholeSegments(t *testing.T) {
	svc := newTestService()
	resp, err := svc.Generate(model.GenerateRequest{Length: intPtr(30)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 34 {
		t.Errorf("expected realized length 34, got %d", resp.Length)
	}
	if len(resp.Passwords[0]) != 34 {
		t.Errorf("expected password length 34, got %d", len(resp.Passwords[0]))
	}
}

func TestGenerate_Count(t *testing.T) {
	svc := newTestService()
	resp, err := svc.Generate(model.GenerateRequest{Count: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Passwords) != 3 {
		t.Fatalf("expected 3 passwords, got %d", len(resp.Passwords))
	}
	if resp.Passwords[0] == resp.Passwords[1] || resp.Passwords[1] == resp.Passwords[2] {
		t.Errorf("batch contains duplicates: %v", resp.Passwords)
	}
}

func TestGenerate_NegativeCount(t *testing.T) {
	svc := newTestService()
	_, err := svc.Generate(model.GenerateRequest{Count: -1})
	if !errors.Is(err, ErrInvalidCount) {
		t.Errorf("expected ErrInvalidCount, got %v", err)
	}
}

func TestGenerate_CountAboveMaximum(t *testing.T) {
	svc := newTestService()
	_, err := svc.Generate(model.GenerateRequest{Count: MaxCount + 1})
	if !errors.Is(err, ErrInvalidCount) {
		t.Errorf("expected ErrInvalidCount, got %v", err)
	}
}

func TestGenerate_UnknownProfile(t *testing.T) {
	svc := newTestService()
	_, err := svc.Generate(model.GenerateRequest{Profile: "birthday"})
	if !errors.Is(err, password.ErrUnknownProfile) {
		t.Fatalf("expected ErrUnknownProfile, got %v", err)
	}
	if !strings.Contains(err.Error(), password.ProfileSimple) {
		t.Errorf("error %q does not list the valid profiles", err.Error())
	}
}

func TestGenerate_ConflictingLayout(t *testing.T) {
	svc := newTestService()
	_, err := svc.Generate(model.GenerateRequest{
		Length:        intPtr(50),
		Segments:      intPtr(3),
		SegmentLength: intPtr(4),
	})
	if !errors.Is(err, password.ErrConflictingLayout) {
		t.Errorf("expected ErrConflictingLayout, got %v", err)
	}
}

func TestGenerate_ExplicitZeroLengthRejected(t *testing.T) {
	svc := newTestService()
	_, err := svc.Generate(model.GenerateRequest{Length: intPtr(0)})
	if !errors.Is(err, password.ErrInvalidLayout) {
		t.Errorf("expected ErrInvalidLayout, got %v", err)
	}
}

func TestGenerate_SeededSourceIsReproducible(t *testing.T) {
	catalog := password.NewCatalog()
	req := model.GenerateRequest{Count: 3}

	first, err := NewGeneratorService(catalog, password.NewSeededSource(5)).Generate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := NewGeneratorService(catalog, password.NewSeededSource(5)).Generate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range first.Passwords {
		if first.Passwords[i] != second.Passwords[i] {
			t.Errorf("password %d differs between identical seeds: %q vs %q",
				i, first.Passwords[i], second.Passwords[i])
		}
	}
}

func TestProfiles(t *testing.T) {
	infos := newTestService().Profiles()
	if len(infos) != 3 {
		t.Fatalf("expected 3 profiles, got %d", len(infos))
	}
	if infos[0].ID != password.ProfileDefault {
		t.Errorf("expected default first, got %q", infos[0].ID)
	}
	for _, info := range infos {
		if info.ExampleLayout == "" || info.Description == "" {
			t.Errorf("profile %q is missing listing fields: %+v", info.ID, info)
		}
		if info.EntropyBits <= 0 {
			t.Errorf("profile %q has non-positive entropy", info.ID)
		}
	}
}
