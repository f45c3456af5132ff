package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"videosurvey/internal/model"
	"videosurvey/internal/platform/logger"
	"videosurvey/internal/repository"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) Get(ctx context.Context, id string) (*model.Configuration, error) {
	args := m.Called(ctx, id)
	cfg, _ := args.Get(0).(*model.Configuration)
	return cfg, args.Error(1)
}

func (m *mockCatalog) Put(ctx context.Context, id string, cfg model.Configuration) error {
	return m.Called(ctx, id, cfg).Error(0)
}

func TestConfigServiceCurrentIsACopy(t *testing.T) {
	svc := NewConfigService(twoVideoConfig())

	cfg := svc.Current()
	cfg.Questions[0].Options[0] = "changed"
	cfg.Videos = nil

	again := svc.Current()
	assert.Equal(t, "Yes", again.Questions[0].Options[0])
	assert.Len(t, again.Videos, 2)
}

func TestConfigServiceReplace(t *testing.T) {
	svc := NewConfigService(twoVideoConfig())

	vs := []model.Video{{ID: "new", Title: "new"}}
	svc.ReplaceVideos(vs)
	vs[0].ID = "mutated"

	cfg := svc.Current()
	assert.Equal(t, []model.Video{{ID: "new", Title: "new"}}, cfg.Videos)
	assert.Len(t, cfg.Questions, 2)

	svc.ReplaceQuestions(nil)
	assert.Empty(t, svc.Current().Questions)
}

func TestLoadConfigServiceFromCatalog(t *testing.T) {
	catalog := &mockCatalog{}
	stored := twoVideoConfig()
	catalog.On("Get", mock.Anything, repository.DefaultCatalogID).Return(&stored, nil)

	svc, err := LoadConfigService(context.Background(), catalog, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, twoVideoConfig(), svc.Current())
	catalog.AssertExpectations(t)
}

func TestLoadConfigServiceFallsBackToDefaults(t *testing.T) {
	catalog := &mockCatalog{}
	catalog.On("Get", mock.Anything, repository.DefaultCatalogID).Return(nil, nil)

	svc, err := LoadConfigService(context.Background(), catalog, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfiguration(), svc.Current())

	svc, err = LoadConfigService(context.Background(), nil, logger.Nop())
	require.NoError(t, err)
	assert.Len(t, svc.Current().Videos, 3)
}

func TestLoadConfigServiceCatalogError(t *testing.T) {
	catalog := &mockCatalog{}
	catalog.On("Get", mock.Anything, repository.DefaultCatalogID).Return(nil, errors.New("unreachable"))

	_, err := LoadConfigService(context.Background(), catalog, logger.Nop())
	assert.Error(t, err)
}
