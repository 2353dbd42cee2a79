// Package keyring keeps secrets and the owner identity in the OS keyring
package keyring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/streaks/internal/constants"
)

var (
	// ErrNotFound is returned when no entry is stored under the requested key
	ErrNotFound = errors.New("entry not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

func get(user string) (string, error) {
	value, err := keyring.Get(constants.AppName, user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return value, nil
}

func set(user, value, what string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", what)
	}
	if err := keyring.Set(constants.AppName, user, value); err != nil {
		return fmt.Errorf("failed to store %s in keyring: %w", what, err)
	}
	return nil
}

func remove(user, what string) error {
	if err := keyring.Delete(constants.AppName, user); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete %s from keyring: %w", what, err)
	}
	return nil
}

// GetConnectionString retrieves the PostgreSQL connection string.
// Returns ErrNotFound if none is stored.
func GetConnectionString() (string, error) {
	return get(constants.DefaultKeyringUser)
}

// SetConnectionString stores the PostgreSQL connection string
func SetConnectionString(connStr string) error {
	return set(constants.DefaultKeyringUser, connStr, "connection string")
}

// DeleteConnectionString removes the stored connection string
func DeleteConnectionString() error {
	return remove(constants.DefaultKeyringUser, "connection string")
}

// GetOwner returns the owner identity records are scoped to
func GetOwner() (string, error) {
	return get(constants.OwnerKeyringUser)
}

// SetOwner stores the owner identity
func SetOwner(owner string) error {
	return set(constants.OwnerKeyringUser, strings.TrimSpace(owner), "owner identity")
}

// DeleteOwner forgets the stored owner identity
func DeleteOwner() error {
	return remove(constants.OwnerKeyringUser, "owner identity")
}

// ResolveOwner picks the owner identity: an explicit value wins, then the
// keyring, then the built-in local owner. A broken keyring falls back too.
func ResolveOwner(explicit string) string {
	if owner := strings.TrimSpace(explicit); owner != "" {
		return owner
	}
	if owner, err := GetOwner(); err == nil && owner != "" {
		return owner
	}
	return constants.DefaultOwner
}

// IsAvailable is a best-effort check that the OS keyring can be used
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
