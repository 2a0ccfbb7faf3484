package users

import (
	"context"
	"net/url"
	"strconv"

	"roombook/client"
	"roombook/models"
)

// Service is the typed view of the upstream /v1/users endpoints.
type Service struct {
	API *client.Client
}

func NewService(api *client.Client) *Service {
	return &Service{API: api}
}

// ListQuery carries the optional user list filters.
type ListQuery struct {
	Email  string
	Level  string
	Active *bool
	Limit  int
	Page   int
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Email != "" {
		v.Set("email", q.Email)
	}
	if q.Level != "" {
		v.Set("level", q.Level)
	}
	if q.Active != nil {
		v.Set("active", strconv.FormatBool(*q.Active))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	return v
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]models.User, error) {
	var out struct {
		Data struct {
			Users []models.User `json:"users"`
		} `json:"data"`
	}
	if err := s.API.GetJSON(ctx, "/v1/users", q.values(), &out); err != nil {
		return nil, err
	}
	return out.Data.Users, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.User, error) {
	var out struct {
		Data models.User `json:"data"`
	}
	if err := s.API.GetJSON(ctx, "/v1/users/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (s *Service) Create(ctx context.Context, in models.UserInput) (*models.User, error) {
	var out struct {
		Data models.User `json:"data"`
	}
	if err := s.API.PostJSON(ctx, "/v1/users", in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (s *Service) Update(ctx context.Context, id string, in models.UserInput) (*models.User, error) {
	var out struct {
		Data models.User `json:"data"`
	}
	if err := s.API.PatchJSON(ctx, "/v1/users/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.API.Delete(ctx, "/v1/users/"+id, nil)
}
