package repository

import (
	"context"
	"time"

	"bpaml/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrCredentialNotFound is returned when no credential exists for the account and provider.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrCredentialConflict is returned when a conditional update lost against a concurrent writer.
	ErrCredentialConflict = errors.New("credential was updated concurrently")
)

// CredentialRepository stores OAuth credentials, at most one per athlete and provider.
type CredentialRepository interface {
	// FindByStravaID retrieves the credential of a Strava account for the given provider.
	FindByStravaID(ctx context.Context, stravaID int64, provider string) (*entity.Credential, error)

	// Upsert creates or replaces the credential for (credential.AthleteID, credential.Provider).
	Upsert(ctx context.Context, credential *entity.Credential) error

	// UpdateTokens overwrites the token pair and expiry only if the stored expiry still equals
	// prevExpiresAt. It returns ErrCredentialConflict when another writer got there first.
	UpdateTokens(ctx context.Context, credential *entity.Credential, prevExpiresAt time.Time) error
}
