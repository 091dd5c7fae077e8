// Package users wraps the user listing endpoints. Role appears only here,
// never in the auth payloads.
package users

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"

	"github.com/jrsteele09/parkctl/apiclient"
)

const baseRoute = "/api/v1/parking/users"

// Role is the backend-assigned access level.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is an account as the listing endpoints report it.
type User struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	Content     []T `json:"content"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	Total       int `json:"total"`
}

// FindFilter selects a single user by any combination of fields. Empty
// fields are omitted from the query.
type FindFilter struct {
	Name     string
	Username string
	Email    string
}

// Service wraps the user endpoints.
type Service struct {
	client *apiclient.Client
}

func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// List returns every user.
func (s *Service) List(ctx context.Context) ([]User, error) {
	var resp struct {
		Users []User `json:"users"`
	}
	if err := s.client.Get(ctx, baseRoute+"/", &resp); err != nil {
		return nil, errors.Wrap(err, "[List] users endpoint")
	}
	return resp.Users, nil
}

// Paginated returns one page of users.
func (s *Service) Paginated(ctx context.Context, pageNumber, pageSize int) (Page[User], error) {
	path := fmt.Sprintf("%s/pages?pageNumber=%d&pageSize=%d", baseRoute, pageNumber, pageSize)

	var page Page[User]
	if err := s.client.Get(ctx, path, &page); err != nil {
		return Page[User]{}, errors.Wrap(err, "[Paginated] users endpoint")
	}
	return page, nil
}

// Find looks up a single user by the given filter.
func (s *Service) Find(ctx context.Context, filter FindFilter) (User, error) {
	query := url.Values{}
	if filter.Name != "" {
		query.Set("name", filter.Name)
	}
	if filter.Username != "" {
		query.Set("username", filter.Username)
	}
	if filter.Email != "" {
		query.Set("email", filter.Email)
	}

	var resp struct {
		User User `json:"user"`
	}
	if err := s.client.Get(ctx, baseRoute+"/user?"+query.Encode(), &resp); err != nil {
		return User{}, errors.Wrap(err, "[Find] users endpoint")
	}
	return resp.User, nil
}
