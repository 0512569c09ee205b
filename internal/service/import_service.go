package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hr-management-api/internal/config"
	"github.com/hr-management-api/internal/models"
	"github.com/hr-management-api/internal/parser"
	"github.com/hr-management-api/internal/repository"
	"github.com/hr-management-api/internal/validation"
	"github.com/rs/zerolog"
)

// importService is the concrete implementation of ImportService. It owns
// the in-memory session store: one staged batch per upload, single-owner,
// discarded on cancel, completion, or expiry.
type importService struct {
	profiles    repository.ProfileRepository
	provisioner ProvisioningService
	cfg         *config.Config
	log         zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*models.ImportSession

	janitorCtx    context.Context
	janitorCancel context.CancelFunc
	running       bool
	wg            sync.WaitGroup
}

// newImportService creates a new ImportService
func newImportService(profiles repository.ProfileRepository, provisioner ProvisioningService, cfg *config.Config, log zerolog.Logger) *importService {
	return &importService{
		profiles:    profiles,
		provisioner: provisioner,
		cfg:         cfg,
		log:         log.With().Str("service", "import").Logger(),
		sessions:    make(map[string]*models.ImportSession),
	}
}

// CreateSession parses and validates uploaded CSV content and stages the
// valid rows for confirmation. Parse failures abort the whole attempt;
// validation failures are collected per row and never abort. When no row
// survives validation the session completes immediately with a report
// instead of entering preview.
func (s *importService) CreateSession(ctx context.Context, actorID, content string) (*models.ImportSession, error) {
	actor, err := s.profiles.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrForbidden
		}
		return nil, err
	}
	if actor.Role != models.RoleAdmin {
		return nil, models.ErrForbidden
	}

	rows, err := parser.ParseEmployeeCSV(content)
	if err != nil {
		return nil, err
	}

	var staged []models.CreateEmployeeRequest
	var validationErrors []string
	for i := range rows {
		// Row numbers are file line numbers: the header is line 1
		if msg := validation.ValidateImportRow(&rows[i], i+2); msg != "" {
			validationErrors = append(validationErrors, msg)
			continue
		}
		staged = append(staged, rows[i].ToCreateRequest())
	}

	now := time.Now()
	session := &models.ImportSession{
		ID:               uuid.New().String(),
		Status:           models.SessionPreviewing,
		ActorID:          actorID,
		Staged:           staged,
		ValidationErrors: validationErrors,
		CreatedAt:        now,
		ExpiresAt:        now.Add(s.cfg.Import.SessionTTL),
	}

	if len(staged) == 0 {
		session.Status = models.SessionCompleted
		session.Report = &models.ImportReport{
			Total:  len(rows),
			Failed: len(validationErrors),
			Errors: validationErrors,
		}
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	out := snapshot(session)
	s.mu.Unlock()

	s.log.Info().
		Str("session_id", session.ID).
		Int("rows", len(rows)).
		Int("valid", len(staged)).
		Int("invalid", len(validationErrors)).
		Msg("Import session created")

	return out, nil
}

// snapshot copies a session so callers can read and serialize it without
// holding the store lock. Must be called with s.mu held.
func snapshot(session *models.ImportSession) *models.ImportSession {
	copied := *session
	return &copied
}

// GetSession retrieves a copy of a session by id
func (s *importService) GetSession(sessionID string) (*models.ImportSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	return snapshot(session), nil
}

// Confirm dispatches the staged batch: one provisioning call per row,
// bounded concurrency, all awaited together. Row outcomes are
// independent; there is no cross-row rollback. The final report merges
// validation-stage errors with per-row creation errors.
func (s *importService) Confirm(ctx context.Context, sessionID string) (*models.ImportSession, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, models.ErrSessionNotFound
	}
	if session.Status != models.SessionPreviewing {
		status := session.Status
		s.mu.Unlock()
		return nil, &models.SessionStateError{Op: "confirm", Status: status}
	}
	session.Status = models.SessionImporting
	staged := session.Staged
	actorID := session.ActorID
	s.mu.Unlock()

	results := make([]models.RowResult, len(staged))
	sem := make(chan struct{}, s.cfg.Import.MaxConcurrentCreates)
	var wg sync.WaitGroup

	for i := range staged {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			req := staged[i]
			resp, err := s.provisioner.CreateEmployee(ctx, actorID, &req)
			if err != nil {
				results[i] = models.RowResult{Email: req.Email, Error: err.Error()}
				return
			}
			results[i] = models.RowResult{Success: true, Email: req.Email, User: resp.User}
		}(i)
	}
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	report := &models.ImportReport{
		Total:  len(staged) + len(session.ValidationErrors),
		Errors: append([]string{}, session.ValidationErrors...),
	}
	report.Failed = len(session.ValidationErrors)
	for _, res := range results {
		if res.Success {
			report.Successful++
			continue
		}
		report.Failed++
		report.Errors = append(report.Errors, res.Email+": "+res.Error)
	}

	session.Status = models.SessionCompleted
	session.Report = report
	session.Staged = nil

	s.log.Info().
		Str("session_id", session.ID).
		Int("successful", report.Successful).
		Int("failed", report.Failed).
		Msg("Import completed")

	return snapshot(session), nil
}

// Cancel discards the staged batch. Only allowed from preview; once
// importing starts, dispatched rows are not revocable.
func (s *importService) Cancel(sessionID string) (*models.ImportSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	if session.Status != models.SessionPreviewing {
		return nil, &models.SessionStateError{Op: "cancel", Status: session.Status}
	}

	session.Status = models.SessionCancelled
	session.Staged = nil

	s.log.Info().Str("session_id", sessionID).Msg("Import session cancelled")
	return snapshot(session), nil
}

// StartJanitor runs the background sweep that evicts expired sessions
func (s *importService) StartJanitor(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.janitorCtx, s.janitorCancel = context.WithCancel(ctx)
	s.mu.Unlock()

	s.wg.Add(1)
	defer s.wg.Done()

	interval := s.cfg.Import.JanitorInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.janitorCtx.Done():
			s.log.Info().Msg("Session janitor stopping")
			return
		case <-ticker.C:
			s.evictExpired()
		}
	}
}

// StopJanitor stops the background sweep
func (s *importService) StopJanitor() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	cancel := s.janitorCancel
	s.mu.Unlock()

	cancel()
	s.wg.Wait()
}

// evictExpired drops sessions past their TTL. A batch mid-dispatch is
// left alone so its report is not lost while rows are in flight.
func (s *importService) evictExpired() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, session := range s.sessions {
		if session.Status == models.SessionImporting {
			continue
		}
		if now.After(session.ExpiresAt) {
			delete(s.sessions, id)
			s.log.Debug().Str("session_id", id).Msg("Expired import session evicted")
		}
	}
}
