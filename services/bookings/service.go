package bookings

import (
	"context"
	"net/url"
	"strconv"

	"roombook/client"
	"roombook/models"
)

// Service is the typed view of the upstream /v1/bookings endpoints. Its List
// result feeds the availability engine, which filters cancelled bookings
// itself.
type Service struct {
	API *client.Client
}

func NewService(api *client.Client) *Service {
	return &Service{API: api}
}

// ListQuery carries the optional booking list filters.
type ListQuery struct {
	RoomID      string
	Status      string
	BookingDate string
	Limit       int
	Page        int
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.RoomID != "" {
		v.Set("room_id", q.RoomID)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.BookingDate != "" {
		v.Set("booking_date", q.BookingDate)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	return v
}

type listEnvelope struct {
	Data struct {
		Bookings []models.Booking `json:"bookings"`
	} `json:"data"`
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]models.Booking, error) {
	var out listEnvelope
	if err := s.API.GetJSON(ctx, "/v1/bookings", q.values(), &out); err != nil {
		return nil, err
	}
	return out.Data.Bookings, nil
}

// Mine lists the bookings created by the authenticated user.
func (s *Service) Mine(ctx context.Context, q ListQuery) ([]models.Booking, error) {
	var out listEnvelope
	if err := s.API.GetJSON(ctx, "/v1/bookings/mybookings", q.values(), &out); err != nil {
		return nil, err
	}
	return out.Data.Bookings, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Booking, error) {
	var out struct {
		Data models.Booking `json:"data"`
	}
	if err := s.API.GetJSON(ctx, "/v1/bookings/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (s *Service) Create(ctx context.Context, in models.BookingInput) (*models.Booking, error) {
	var out struct {
		Data models.Booking `json:"data"`
	}
	if err := s.API.PostJSON(ctx, "/v1/bookings", in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (s *Service) Update(ctx context.Context, id string, in models.BookingInput) (*models.Booking, error) {
	var out struct {
		Data models.Booking `json:"data"`
	}
	if err := s.API.PatchJSON(ctx, "/v1/bookings/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.API.Delete(ctx, "/v1/bookings/"+id, nil)
}
