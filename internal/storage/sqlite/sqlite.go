// Package sqlite provides a SQLite-backed implementation of the storage.FriendStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	msqlite "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/mmynk/tabsplit/internal/models"
	"github.com/mmynk/tabsplit/internal/storage"
)

// Ensure SQLiteStore implements storage.FriendStore
var _ storage.FriendStore = (*SQLiteStore)(nil)

// SQLiteStore implements storage.FriendStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateFriend persists a new friend to the database.
func (s *SQLiteStore) CreateFriend(ctx context.Context, friend *models.Friend) error {
	friend.Name = strings.TrimSpace(friend.Name)
	if friend.ID == "" {
		friend.ID = uuid.New().String()
	}
	if friend.CreatedAt == 0 {
		friend.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existing int
	err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM friends WHERE name = ? COLLATE NOCASE",
		friend.Name,
	).Scan(&existing)
	if err != nil {
		return fmt.Errorf("failed to check friend name: %w", err)
	}
	if existing > 0 {
		return fmt.Errorf("friend %q: %w", friend.Name, storage.ErrAlreadyExists)
	}

	if err := insertFriend(ctx, tx, friend); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// insertFriend writes one row. A unique index violation, such as a concurrent
// insert of the same name, is reported as storage.ErrAlreadyExists.
func insertFriend(ctx context.Context, db execer, friend *models.Friend) error {
	_, err := db.ExecContext(ctx,
		"INSERT INTO friends (id, name, created_at) VALUES (?, ?, ?)",
		friend.ID, friend.Name, friend.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("friend %q: %w", friend.Name, storage.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("failed to insert friend: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
		return true
	}
	return false
}

// ListFriends retrieves all friends in the order they were added.
func (s *SQLiteStore) ListFriends(ctx context.Context) ([]*models.Friend, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at FROM friends ORDER BY created_at, rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	defer rows.Close()

	friends := []*models.Friend{}
	for rows.Next() {
		friend := &models.Friend{}
		if err := rows.Scan(&friend.ID, &friend.Name, &friend.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		friends = append(friends, friend)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate friends: %w", err)
	}
	return friends, nil
}

// DeleteFriend removes a friend by ID.
func (s *SQLiteStore) DeleteFriend(ctx context.Context, friendID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM friends WHERE id = ?", friendID)
	if err != nil {
		return fmt.Errorf("failed to delete friend: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("friend %s: %w", friendID, storage.ErrNotFound)
	}
	return nil
}
