package rooms

import (
	"context"
	"net/url"
	"strconv"

	"roombook/client"
	"roombook/models"
)

// Service is the typed view of the upstream /v1/rooms endpoints.
type Service struct {
	API *client.Client
}

func NewService(api *client.Client) *Service {
	return &Service{API: api}
}

// ListQuery carries the optional room list filters.
type ListQuery struct {
	Name     string
	Location string
	Active   *bool
	Limit    int
	Page     int
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Name != "" {
		v.Set("name", q.Name)
	}
	if q.Location != "" {
		v.Set("location", q.Location)
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

func (s *Service) List(ctx context.Context, q ListQuery) ([]models.Room, error) {
	var out struct {
		Data struct {
			Rooms []models.Room `json:"rooms"`
		} `json:"data"`
	}
	if err := s.API.GetJSON(ctx, "/v1/rooms", q.values(), &out); err != nil {
		return nil, err
	}
	return out.Data.Rooms, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Room, error) {
	var out struct {
		Data models.Room `json:"data"`
	}
	if err := s.API.GetJSON(ctx, "/v1/rooms/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// RoomInput is the payload for creating or updating a room. Image upload is
// handled elsewhere; the gateway only forwards metadata.
type RoomInput struct {
	Name     string `json:"name,omitempty"`
	Location string `json:"location,omitempty"`
	Capacity int    `json:"capacity,omitempty"`
	Active   *bool  `json:"active,omitempty"`
}

func (s *Service) Create(ctx context.Context, in RoomInput) (*models.Room, error) {
	var out struct {
		Data models.Room `json:"data"`
	}
	if err := s.API.PostJSON(ctx, "/v1/rooms", in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (s *Service) Update(ctx context.Context, id string, in RoomInput) (*models.Room, error) {
	var out struct {
		Data models.Room `json:"data"`
	}
	if err := s.API.PatchJSON(ctx, "/v1/rooms/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.API.Delete(ctx, "/v1/rooms/"+id, nil)
}
