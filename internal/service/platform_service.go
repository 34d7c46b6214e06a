package service

import (
	"log/slog"

	config "github.com/maheshrc27/postflow-tools/configs"
	"github.com/maheshrc27/postflow-tools/internal/models"
)

type PlatformService interface {
	Get(name models.Platform) (Platform, bool)
	List() []models.Platform
}

type platformService struct {
	platforms map[models.Platform]Platform
	order     []models.Platform
}

func NewPlatformService(platforms ...Platform) PlatformService {
	s := &platformService{platforms: make(map[models.Platform]Platform, len(platforms))}
	for _, p := range platforms {
		if _, exists := s.platforms[p.Name()]; !exists {
			s.order = append(s.order, p.Name())
		}
		s.platforms[p.Name()] = p
	}
	return s
}

// NewPlatformServiceFromConfig registers every platform whose credentials
// are fully present.
func NewPlatformServiceFromConfig(cfg config.Config) PlatformService {
	var platforms []Platform

	if cfg.Twitter.Configured() {
		platforms = append(platforms, NewTwitterService(cfg.Twitter, cfg.HTTPTimeout))
	}
	if cfg.LinkedIn.Configured() {
		platforms = append(platforms, NewLinkedInService(cfg.LinkedIn, cfg.HTTPTimeout))
	}
	if cfg.Instagram.Configured() {
		platforms = append(platforms, NewInstagramService(cfg.Instagram, cfg.HTTPTimeout))
	}
	if cfg.Facebook.Configured() {
		platforms = append(platforms, NewFacebookService(cfg.Facebook, cfg.HTTPTimeout))
	}

	s := NewPlatformService(platforms...)
	for _, p := range models.KnownPlatforms {
		if _, ok := s.Get(p); !ok {
			slog.Info("platform not configured", "platform", p)
		}
	}
	slog.Info("platforms registered", "platforms", s.List())

	return s
}

func (s *platformService) Get(name models.Platform) (Platform, bool) {
	p, ok := s.platforms[name]
	return p, ok
}

func (s *platformService) List() []models.Platform {
	out := make([]models.Platform, len(s.order))
	copy(out, s.order)
	return out
}
