package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-tracker/internal/events"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
)

const (
	OpList   = "list"
	OpGet    = "get"
	OpAdd    = "add"
	OpUpdate = "update"
	OpDelete = "delete"
)

var (
	ErrNotAuthenticated = errors.New("user not authenticated")
	ErrStorePanic       = errors.New("record store panicked")
)

// FetchError tags a store failure with the operation and collection it came from.
type FetchError struct {
	Op   string
	Kind models.Kind
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Kind.TableName(), e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type recordService struct {
	repos     map[models.Kind]repositories.RecordRepositoryInterface
	publisher events.Publisher
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
}

// NewRecordService wires one repository per kind. Each call makes a single store request
// with no retry.
func NewRecordService(
	repos []repositories.RecordRepositoryInterface,
	publisher events.Publisher,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) RecordServiceInterface {
	byKind := make(map[models.Kind]repositories.RecordRepositoryInterface, len(repos))
	for _, repo := range repos {
		byKind[repo.Kind()] = repo
	}

	if publisher == nil {
		publisher = events.NewNoopPublisher()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &recordService{
		repos:     byKind,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

func (s *recordService) List(ctx context.Context, kind models.Kind, filters models.RecordFilters) ([]models.Record, error) {
	if filters.UserID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	var records []models.Record
	err := s.call(OpList, kind, func(repo repositories.RecordRepositoryInterface) error {
		var err error
		records, err = repo.List(ctx, filters)
		return err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *recordService) Get(ctx context.Context, kind models.Kind, userID, id uuid.UUID) (*models.Record, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	var record *models.Record
	err := s.call(OpGet, kind, func(repo repositories.RecordRepositoryInterface) error {
		var err error
		record, err = repo.GetByID(ctx, userID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Add stores payload under userID. Any id or owner on the payload is replaced.
func (s *recordService) Add(ctx context.Context, kind models.Kind, userID uuid.UUID, payload models.Record) (*models.Record, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	record := payload
	record.ID = uuid.Nil
	record.UserID = userID

	err := s.call(OpAdd, kind, func(repo repositories.RecordRepositoryInterface) error {
		return repo.Create(ctx, &record)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewRecordChanged(events.ActionCreated, kind, userID, record.ID))
	return &record, nil
}

func (s *recordService) Update(ctx context.Context, kind models.Kind, userID, id uuid.UUID, update models.RecordUpdate) (*models.Record, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	var record *models.Record
	err := s.call(OpUpdate, kind, func(repo repositories.RecordRepositoryInterface) error {
		var err error
		record, err = repo.Update(ctx, userID, id, update)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewRecordChanged(events.ActionUpdated, kind, userID, id))
	return record, nil
}

func (s *recordService) Delete(ctx context.Context, kind models.Kind, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrNotAuthenticated
	}

	err := s.call(OpDelete, kind, func(repo repositories.RecordRepositoryInterface) error {
		return repo.Delete(ctx, userID, id)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events.NewRecordChanged(events.ActionDeleted, kind, userID, id))
	return nil
}

// call runs fn against the repository for kind. Errors and panics from the store are
// returned as *FetchError.
func (s *recordService) call(op string, kind models.Kind, fn func(repositories.RecordRepositoryInterface) error) (err error) {
	repo, ok := s.repos[kind]
	if !ok {
		return models.ErrInvalidKind
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("record store panicked",
				"operation", op,
				"kind", kind,
				"panic", r)
			err = &FetchError{Op: op, Kind: kind, Err: fmt.Errorf("%w: %v", ErrStorePanic, r)}
		}
		s.observe(op, kind, err, time.Since(start))
	}()

	if callErr := fn(repo); callErr != nil {
		return &FetchError{Op: op, Kind: kind, Err: callErr}
	}
	return nil
}

func (s *recordService) observe(op string, kind models.Kind, err error, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}

	status := "success"
	switch {
	case errors.Is(err, repositories.ErrRecordNotFound):
		status = "not_found"
	case err != nil:
		status = "error"
	}

	s.metrics.IncrementCounter(MetricRecordOperation, map[string]string{
		"operation": op,
		"kind":      string(kind),
		"status":    status,
	})
	s.metrics.RecordProcessingTime(MetricRecordFetch, elapsed)
}

func (s *recordService) publish(ctx context.Context, event events.RecordChanged) {
	status := "success"
	if err := s.publisher.PublishRecordChanged(ctx, event); err != nil {
		// the write already succeeded
		status = "error"
		s.logger.Warn("failed to publish record change",
			"error", err,
			"action", event.Action,
			"kind", event.Kind,
			"record_id", event.RecordID)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter(MetricRecordEvent, map[string]string{"status": status})
	}
}
