package auth

import (
	"context"
	"fmt"

	"roombook/client"
	"roombook/utils"

	"github.com/golang-jwt/jwt"
)

// Service handles the upstream authentication flow for one session.
type Service struct {
	API *client.Client
}

func NewService(api *client.Client) *Service {
	return &Service{API: api}
}

// Login authenticates against the upstream API and stores the returned token
// pair in the session's token store. A 401 here is a terminal authentication
// failure; it never triggers refresh logic.
func (s *Service) Login(ctx context.Context, email, password string) (client.TokenPair, error) {
	var out struct {
		Data client.TokenPair `json:"data"`
	}
	in := map[string]string{"email": email, "password": password}
	if err := s.API.PostJSON(ctx, "/v1/auth/login", in, &out); err != nil {
		return client.TokenPair{}, err
	}
	if out.Data.AccessToken == "" || out.Data.RefreshToken == "" {
		return client.TokenPair{}, fmt.Errorf("invalid login response: tokens missing")
	}
	if err := s.API.Store().Set(ctx, out.Data); err != nil {
		return client.TokenPair{}, err
	}
	return out.Data, nil
}

// Logout discards the stored token pair.
func (s *Service) Logout(ctx context.Context) error {
	return s.API.Store().Clear(ctx)
}

// CurrentUser decodes the claims of the stored upstream access token. The
// upstream signs its own tokens; only the payload is read here.
func (s *Service) CurrentUser(ctx context.Context) (jwt.MapClaims, error) {
	pair, err := s.API.Store().Get(ctx)
	if err != nil {
		return nil, err
	}
	if pair.AccessToken == "" {
		return nil, fmt.Errorf("not authenticated")
	}
	return utils.DecodeClaims(pair.AccessToken)
}
