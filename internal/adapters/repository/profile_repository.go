package repository

import (
	"context"

	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
)

var _ domain.ProfileRepository = (*StaticProfileRepository)(nil)

// StaticProfileRepository serves the profile loaded at startup. A nil profile means none is configured.
type StaticProfileRepository struct {
	profile *domain.UserProfile
}

func NewStaticProfileRepository(profile *domain.UserProfile) *StaticProfileRepository {
	return &StaticProfileRepository{profile: profile}
}

func (r *StaticProfileRepository) Get(ctx context.Context) (*domain.UserProfile, error) {
	if r.profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	p := *r.profile
	return &p, nil
}
