package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tabsplit/internal/models"
)

const (
	// FriendServiceName is the fully-qualified name of the FriendService.
	FriendServiceName = "tabsplit.v1.FriendService"

	// FriendServiceListFriendsProcedure is the path of the FriendService.ListFriends RPC.
	FriendServiceListFriendsProcedure = "/tabsplit.v1.FriendService/ListFriends"
	// FriendServiceAddFriendProcedure is the path of the FriendService.AddFriend RPC.
	FriendServiceAddFriendProcedure = "/tabsplit.v1.FriendService/AddFriend"
	// FriendServiceDeleteFriendProcedure is the path of the FriendService.DeleteFriend RPC.
	FriendServiceDeleteFriendProcedure = "/tabsplit.v1.FriendService/DeleteFriend"
)

// ListFriendsRequest asks for the whole friends roster.
type ListFriendsRequest struct{}

// ListFriendsResponse lists friends in the order they were added.
type ListFriendsResponse struct {
	Friends []*models.Friend `json:"friends"`
}

// AddFriendRequest names a friend to save. Names are unique ignoring case.
type AddFriendRequest struct {
	Name string `json:"name"`
}

// AddFriendResponse returns the saved friend with its generated ID.
type AddFriendResponse struct {
	Friend *models.Friend `json:"friend"`
}

// DeleteFriendRequest identifies the friend to remove.
type DeleteFriendRequest struct {
	FriendID string `json:"friendId"`
}

// DeleteFriendResponse is empty on success.
type DeleteFriendResponse struct{}

// FriendServiceHandler is implemented by the server side of FriendService.
type FriendServiceHandler interface {
	ListFriends(context.Context, *connect.Request[ListFriendsRequest]) (*connect.Response[ListFriendsResponse], error)
	AddFriend(context.Context, *connect.Request[AddFriendRequest]) (*connect.Response[AddFriendResponse], error)
	DeleteFriend(context.Context, *connect.Request[DeleteFriendRequest]) (*connect.Response[DeleteFriendResponse], error)
}

// NewFriendServiceHandler builds an HTTP handler for FriendService.
// It returns the path on which to mount the handler and the handler itself.
func NewFriendServiceHandler(svc FriendServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerCodecs(opts)
	list := connect.NewUnaryHandler(FriendServiceListFriendsProcedure, svc.ListFriends, opts...)
	add := connect.NewUnaryHandler(FriendServiceAddFriendProcedure, svc.AddFriend, opts...)
	del := connect.NewUnaryHandler(FriendServiceDeleteFriendProcedure, svc.DeleteFriend, opts...)

	return "/" + FriendServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case FriendServiceListFriendsProcedure:
			list.ServeHTTP(w, r)
		case FriendServiceAddFriendProcedure:
			add.ServeHTTP(w, r)
		case FriendServiceDeleteFriendProcedure:
			del.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// FriendServiceClient is a client for FriendService.
type FriendServiceClient interface {
	ListFriends(context.Context, *connect.Request[ListFriendsRequest]) (*connect.Response[ListFriendsResponse], error)
	AddFriend(context.Context, *connect.Request[AddFriendRequest]) (*connect.Response[AddFriendResponse], error)
	DeleteFriend(context.Context, *connect.Request[DeleteFriendRequest]) (*connect.Response[DeleteFriendResponse], error)
}

type friendServiceClient struct {
	list *connect.Client[ListFriendsRequest, ListFriendsResponse]
	add  *connect.Client[AddFriendRequest, AddFriendResponse]
	del  *connect.Client[DeleteFriendRequest, DeleteFriendResponse]
}

// NewFriendServiceClient constructs a client for FriendService at baseURL.
func NewFriendServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) FriendServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
	return &friendServiceClient{
		list: connect.NewClient[ListFriendsRequest, ListFriendsResponse](httpClient, baseURL+FriendServiceListFriendsProcedure, opts...),
		add:  connect.NewClient[AddFriendRequest, AddFriendResponse](httpClient, baseURL+FriendServiceAddFriendProcedure, opts...),
		del:  connect.NewClient[DeleteFriendRequest, DeleteFriendResponse](httpClient, baseURL+FriendServiceDeleteFriendProcedure, opts...),
	}
}

// ListFriends calls tabsplit.v1.FriendService.ListFriends.
func (c *friendServiceClient) ListFriends(ctx context.Context, req *connect.Request[ListFriendsRequest]) (*connect.Response[ListFriendsResponse], error) {
	return c.list.CallUnary(ctx, req)
}

// AddFriend calls tabsplit.v1.FriendService.AddFriend.
func (c *friendServiceClient) AddFriend(ctx context.Context, req *connect.Request[AddFriendRequest]) (*connect.Response[AddFriendResponse], error) {
	return c.add.CallUnary(ctx, req)
}

// DeleteFriend calls tabsplit.v1.FriendService.DeleteFriend.
func (c *friendServiceClient) DeleteFriend(ctx context.Context, req *connect.Request[DeleteFriendRequest]) (*connect.Response[DeleteFriendResponse], error) {
	return c.del.CallUnary(ctx, req)
}
