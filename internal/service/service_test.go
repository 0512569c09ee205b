package service_test

import (
	"time"

	"github.com/hr-management-api/internal/auth"
	"github.com/hr-management-api/internal/config"
	"github.com/hr-management-api/internal/mocks"
	"github.com/hr-management-api/internal/models"
	"github.com/hr-management-api/internal/repository"
	"github.com/hr-management-api/internal/service"
	"github.com/rs/zerolog"
)

// testEnv wires the services onto in-memory mock repositories
type testEnv struct {
	identities *mocks.MockIdentityRepository
	profiles   *mocks.MockProfileRepository
	history    *mocks.MockHistoryRepository
	services   *service.Services
}

func newTestEnv() *testEnv {
	return newTestEnvWithImport(config.ImportConfig{
		SessionTTL:           30 * time.Minute,
		MaxConcurrentCreates: 4,
	})
}

func newTestEnvWithImport(importCfg config.ImportConfig) *testEnv {
	profiles := mocks.NewMockProfileRepository()
	identities := mocks.NewMockIdentityRepository()
	identities.Profiles = profiles
	history := mocks.NewMockHistoryRepository()

	repos := &repository.Repositories{
		Identity: identities,
		Profile:  profiles,
		History:  history,
	}

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:          "test-secret",
			TokenTTL:           time.Hour,
			TempPasswordLength: 12,
		},
		Import: importCfg,
	}
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	return &testEnv{
		identities: identities,
		profiles:   profiles,
		history:    history,
		services:   service.NewServices(repos, tokens, cfg, zerolog.Nop()),
	}
}

// seedAdmin stages an admin profile and returns its id
func (e *testEnv) seedAdmin() string {
	e.profiles.Put(&models.Profile{
		ID:       "admin-1",
		FullName: "Admin User",
		Email:    "admin@company.com",
		Role:     models.RoleAdmin,
		Status:   models.DefaultStatus,
	})
	return "admin-1"
}

// seedEmployee stages a plain employee profile and returns its id
func (e *testEnv) seedEmployee() string {
	e.profiles.Put(&models.Profile{
		ID:       "emp-1",
		FullName: "Plain Employee",
		Email:    "employee@company.com",
		Role:     models.DefaultRole,
		Status:   models.DefaultStatus,
	})
	return "emp-1"
}
