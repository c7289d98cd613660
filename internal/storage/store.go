// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tabsplit/internal/models"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a record collides with an existing one.
	ErrAlreadyExists = errors.New("already exists")
)

// FriendStore defines the interface for the saved friends roster.
// This abstraction allows swapping storage backends without changing the
// service layer.
type FriendStore interface {
	// CreateFriend persists a new friend.
	// The friend.ID and friend.CreatedAt fields will be populated by the store.
	// Names are unique ignoring case; a duplicate returns ErrAlreadyExists.
	CreateFriend(ctx context.Context, friend *models.Friend) error

	// ListFriends returns all saved friends, oldest first.
	ListFriends(ctx context.Context) ([]*models.Friend, error)

	// DeleteFriend removes a friend by ID.
	// Returns an error wrapping ErrNotFound if the friend does not exist.
	DeleteFriend(ctx context.Context, friendID string) error

	// Close releases any resources held by the store.
	Close() error
}
