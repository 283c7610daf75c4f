package token

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"locker-service/internal/entities"
)

const maxGenerateAttempts = 3

// Broker issues, checks and rotates locker tokens.
type Broker struct {
	repository Repository
	generator  Generator
	now        func() time.Time
}

func New(repository Repository, generator Generator) *Broker {
	return &Broker{
		repository: repository,
		generator:  generator,
		now:        time.Now,
	}
}

// Issue returns the locker with its current token, creating the locker with a
// fresh token on first contact.
func (b *Broker) Issue(ctx context.Context, lockerID string) (*entities.Locker, error) {
	if !isValidLockerID(lockerID) {
		return nil, ErrInvalidLockerID
	}

	locker, err := b.repository.GetLocker(ctx, lockerID)
	if err == nil {
		return locker, nil
	}
	if !errors.Is(err, entities.ErrLockerNotFound) {
		return nil, fmt.Errorf("get locker: %w", err)
	}

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		token, err := b.generator.Generate()
		if err != nil {
			return nil, fmt.Errorf("generate token: %w", err)
		}

		locker, err = b.repository.CreateLocker(ctx, lockerID, token, b.now().UTC())
		if errors.Is(err, entities.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("create locker: %w", err)
		}
		return locker, nil
	}

	return nil, ErrTokenExhausted
}

// Validate loads the locker and checks supplied against its current token.
func (b *Broker) Validate(ctx context.Context, lockerID, supplied string) error {
	locker, err := b.repository.GetLocker(ctx, lockerID)
	if err != nil {
		return fmt.Errorf("get locker: %w", err)
	}
	return b.Check(locker, supplied)
}

// Check compares supplied, trimmed of surrounding whitespace, with the stored
// token in constant time.
func (b *Broker) Check(locker *entities.Locker, supplied string) error {
	if locker == nil {
		return entities.ErrLockerNotFound
	}

	supplied = strings.TrimSpace(supplied)
	if supplied == "" || locker.Token == "" {
		return entities.ErrInvalidToken
	}
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(locker.Token)) != 1 {
		return entities.ErrInvalidToken
	}
	return nil
}

// Rotate replaces the locker token. Only the deposit flow calls it.
func (b *Broker) Rotate(ctx context.Context, lockerID string) (string, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		token, err := b.generator.Generate()
		if err != nil {
			return "", fmt.Errorf("generate token: %w", err)
		}

		err = b.repository.UpdateToken(ctx, lockerID, token, b.now().UTC())
		if errors.Is(err, entities.ErrConflict) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("update token: %w", err)
		}
		return token, nil
	}

	return "", ErrTokenExhausted
}

func isValidLockerID(lockerID string) bool {
	return strings.TrimSpace(lockerID) != ""
}
