package service

import (
	"context"
	"fmt"
	"sync"

	"videosurvey/internal/model"
	"videosurvey/internal/platform/logger"
	"videosurvey/internal/repository"
)

// ConfigService owns the authoritative question/video configuration.
// Replacements are atomic and only reach sessions that freeze the
// configuration afterwards.
type ConfigService struct {
	mu      sync.RWMutex
	current model.Configuration
}

// NewConfigService creates a config service holding a copy of initial
func NewConfigService(initial model.Configuration) *ConfigService {
	return &ConfigService{current: initial.Clone()}
}

// LoadConfigService starts from the catalog when one is available, else from
// the built-in defaults.
func LoadConfigService(ctx context.Context, catalog repository.CatalogRepo, log *logger.Logger) (*ConfigService, error) {
	if catalog == nil {
		log.Info("No catalog configured, using default configuration")
		return NewConfigService(model.DefaultConfiguration()), nil
	}

	cfg, err := catalog.Get(ctx, repository.DefaultCatalogID)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if cfg == nil {
		log.Warn("Catalog is empty, using default configuration", "catalog", repository.DefaultCatalogID)
		return NewConfigService(model.DefaultConfiguration()), nil
	}
	log.Info("Loaded configuration from catalog",
		"questions", len(cfg.Questions),
		"videos", len(cfg.Videos),
	)
	return NewConfigService(*cfg), nil
}

// Current returns a copy of the configuration
func (s *ConfigService) Current() model.Configuration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// ReplaceQuestions swaps in a new question list
func (s *ConfigService) ReplaceQuestions(qs []model.Question) {
	qs = model.CloneQuestions(qs)
	s.mu.Lock()
	s.current.Questions = qs
	s.mu.Unlock()
}

// ReplaceVideos swaps in a new video list
func (s *ConfigService) ReplaceVideos(vs []model.Video) {
	vs = model.CloneVideos(vs)
	s.mu.Lock()
	s.current.Videos = vs
	s.mu.Unlock()
}
