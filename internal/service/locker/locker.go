package locker

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"locker-service/internal/entities"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

type Locker struct {
	repository Repository
	tokens     TokenBroker
	liveness   LivenessMonitor
	newID      func() string
}

func New(repository Repository, tokens TokenBroker, liveness LivenessMonitor) *Locker {
	return &Locker{
		repository: repository,
		tokens:     tokens,
		liveness:   liveness,
		newID:      uuid.NewString,
	}
}

// FetchToken hands the controller its current token. Fetching counts as a
// heartbeat and creates the locker on first contact.
func (s *Locker) FetchToken(ctx context.Context, lockerID string) (*entities.Locker, error) {
	locker, err := s.contact(ctx, lockerID)
	if err != nil {
		return nil, err
	}
	return locker, nil
}

func (s *Locker) Heartbeat(ctx context.Context, lockerID string) (*entities.Heartbeat, error) {
	locker, err := s.contact(ctx, lockerID)
	if err != nil {
		return nil, err
	}

	return &entities.Heartbeat{
		LockerID:      locker.ID,
		Status:        s.liveness.Status(locker.LastHeartbeat),
		LastHeartbeat: *locker.LastHeartbeat,
	}, nil
}

func (s *Locker) contact(ctx context.Context, lockerID string) (*entities.Locker, error) {
	lockerID = strings.TrimSpace(lockerID)
	if lockerID == "" {
		return nil, ErrInvalidLockerID
	}

	locker, err := s.tokens.Issue(ctx, lockerID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	now := s.liveness.Now()
	if err := s.repository.Touch(ctx, lockerID, now); err != nil {
		return nil, fmt.Errorf("touch locker: %w", err)
	}
	locker.LastHeartbeat = &now

	return locker, nil
}

// PollCommand consumes the pending command. A second poll returns
// entities.ErrNoCommand.
func (s *Locker) PollCommand(ctx context.Context, lockerID string) (*entities.Command, error) {
	if strings.TrimSpace(lockerID) == "" {
		return nil, ErrInvalidLockerID
	}

	command, err := s.repository.PopCommand(ctx, lockerID)
	if err != nil {
		return nil, fmt.Errorf("pop command: %w", err)
	}
	return command, nil
}

// EnqueueCommand replaces whatever command is pending for the locker.
func (s *Locker) EnqueueCommand(ctx context.Context, command entities.Command) (*entities.Command, error) {
	if command.LockerID == "" || command.Resi == "" {
		return nil, ErrInvalidCommand
	}
	if command.Type == "" {
		command.Type = entities.CommandOpen
	}
	if command.ID == "" {
		command.ID = s.newID()
	}
	if command.CreatedAt.IsZero() {
		command.CreatedAt = s.liveness.Now()
	}

	if err := s.repository.UpsertCommand(ctx, command); err != nil {
		return nil, fmt.Errorf("upsert command: %w", err)
	}
	return &command, nil
}

func (s *Locker) SetActive(ctx context.Context, lockerID string, active bool) (*entities.LockerView, error) {
	if strings.TrimSpace(lockerID) == "" {
		return nil, ErrInvalidLockerID
	}

	if err := s.repository.SetActive(ctx, lockerID, active, s.liveness.Now()); err != nil {
		return nil, fmt.Errorf("set locker active: %w", err)
	}
	return s.GetLocker(ctx, lockerID)
}

// GetLocker returns the agent view of a locker with liveness derived now.
func (s *Locker) GetLocker(ctx context.Context, lockerID string) (*entities.LockerView, error) {
	if strings.TrimSpace(lockerID) == "" {
		return nil, ErrInvalidLockerID
	}

	locker, err := s.repository.GetLocker(ctx, lockerID)
	if err != nil {
		return nil, fmt.Errorf("get locker: %w", err)
	}

	pending, err := s.repository.CountPending(ctx, lockerID)
	if err != nil {
		return nil, fmt.Errorf("count pending: %w", err)
	}

	hasCommand, err := s.repository.HasCommand(ctx, lockerID)
	if err != nil {
		return nil, fmt.Errorf("check command: %w", err)
	}

	return &entities.LockerView{
		ID:            locker.ID,
		Active:        locker.Active,
		LastHeartbeat: locker.LastHeartbeat,
		Status:        s.liveness.Status(locker.LastHeartbeat),
		PendingCount:  pending,
		HasCommand:    hasCommand,
	}, nil
}

// History lists courier visits newest first.
func (s *Locker) History(ctx context.Context, lockerID string, limit uint64) ([]entities.HistoryRecord, error) {
	if strings.TrimSpace(lockerID) == "" {
		return nil, ErrInvalidLockerID
	}
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	if _, err := s.repository.GetLocker(ctx, lockerID); err != nil {
		return nil, fmt.Errorf("get locker: %w", err)
	}

	history, err := s.repository.ListHistory(ctx, lockerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return history, nil
}

// LivenessReport counts lockers per derived status.
func (s *Locker) LivenessReport(ctx context.Context) (map[entities.LivenessStatus]int, error) {
	lockers, err := s.repository.ListLockers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lockers: %w", err)
	}

	report := map[entities.LivenessStatus]int{
		entities.LivenessOnline:  0,
		entities.LivenessOffline: 0,
		entities.LivenessUnknown: 0,
	}
	for i := range lockers {
		report[s.liveness.Status(lockers[i].LastHeartbeat)]++
	}
	return report, nil
}
