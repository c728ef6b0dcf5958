// Package file is a JSON-file ProfileStore used by the offline CLI: one
// <user>.json document per profile under a data directory.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/NARENN143/Career/internal/domain"
)

// DefaultDir returns the default profile directory location.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".elevate"), nil
}

type ProfileStore struct {
	dir string
}

// NewProfileStore opens (and creates if missing) the profile directory.
func NewProfileStore(dir string) (*ProfileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}
	return &ProfileStore{dir: dir}, nil
}

func (s *ProfileStore) path(userID domain.UserID) string {
	return filepath.Join(s.dir, string(userID)+".json")
}

func (s *ProfileStore) LoadProfile(ctx context.Context, userID domain.UserID) (*domain.CareerProfile, error) {
	data, err := os.ReadFile(s.path(userID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var p domain.CareerProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

func (s *ProfileStore) SaveProfile(ctx context.Context, userID domain.UserID, profile *domain.CareerProfile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	// Write-then-rename keeps the document whole if the process dies
	// mid-write.
	tmp := s.path(userID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	if err := os.Rename(tmp, s.path(userID)); err != nil {
		return fmt.Errorf("rename profile: %w", err)
	}
	return nil
}

func (s *ProfileStore) ListProfiles(ctx context.Context, limit int) ([]domain.ProfileSummary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read profile dir: %w", err)
	}

	var out []domain.ProfileSummary
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		userID := domain.UserID(strings.TrimSuffix(name, ".json"))
		p, err := s.LoadProfile(ctx, userID)
		if err != nil {
			continue
		}
		out = append(out, domain.ProfileSummary{
			UserID:         userID,
			Name:           p.Name,
			SelectedCareer: p.SelectedCareer,
			Streak:         p.Streak,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
