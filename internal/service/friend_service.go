package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tabsplit/internal/api"
	"github.com/mmynk/tabsplit/internal/models"
	"github.com/mmynk/tabsplit/internal/storage"
)

var _ api.FriendServiceHandler = (*FriendService)(nil)

// FriendService implements the Connect FriendService
type FriendService struct {
	store storage.FriendStore
}

// NewFriendService creates a new FriendService with the given storage backend.
func NewFriendService(store storage.FriendStore) *FriendService {
	return &FriendService{store: store}
}

// ListFriends returns the saved roster.
func (s *FriendService) ListFriends(ctx context.Context, req *connect.Request[api.ListFriendsRequest]) (*connect.Response[api.ListFriendsResponse], error) {
	friends, err := s.store.ListFriends(ctx)
	if err != nil {
		slog.Error("ListFriends failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("ListFriends successful", "count", len(friends))
	return connect.NewResponse(&api.ListFriendsResponse{Friends: friends}), nil
}

// AddFriend saves a new friend.
func (s *FriendService) AddFriend(ctx context.Context, req *connect.Request[api.AddFriendRequest]) (*connect.Response[api.AddFriendResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("friend: %w", ErrEmptyName))
	}

	friend := &models.Friend{Name: name}
	if err := s.store.CreateFriend(ctx, friend); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, connect.NewError(connect.CodeAlreadyExists, err)
		}
		slog.Error("AddFriend failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Friend added", "friend_id", friend.ID, "name", friend.Name)
	return connect.NewResponse(&api.AddFriendResponse{Friend: friend}), nil
}

// DeleteFriend removes a friend from the roster.
func (s *FriendService) DeleteFriend(ctx context.Context, req *connect.Request[api.DeleteFriendRequest]) (*connect.Response[api.DeleteFriendResponse], error) {
	if req.Msg.FriendID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("friend_id is required"))
	}

	if err := s.store.DeleteFriend(ctx, req.Msg.FriendID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		slog.Error("DeleteFriend failed", "friend_id", req.Msg.FriendID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Friend deleted", "friend_id", req.Msg.FriendID)
	return connect.NewResponse(&api.DeleteFriendResponse{}), nil
}
