package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

// refreshGroup is the per-client refresh state machine: IDLE when refreshing
// is false, REFRESHING otherwise. The first request to observe a 401 becomes
// the refresher; requests that fail while a refresh is in flight join the
// FIFO wait queue instead of starting their own. The transition happens under
// the mutex, so two near-simultaneous 401s can never both become the
// refresher.
type refreshGroup struct {
	mu         sync.Mutex
	refreshing bool
	waiters    []chan refreshResult
}

type refreshResult struct {
	token string
	err   error
}

// refreshAccess returns a fresh access token, either by performing the
// refresh call (first 401 of the cycle) or by waiting for the in-flight one.
// All waiters receive the same result, released in enqueue order.
func (c *Client) refreshAccess(ctx context.Context) (string, error) {
	c.refresh.mu.Lock()
	if c.refresh.refreshing {
		ch := make(chan refreshResult, 1)
		c.refresh.waiters = append(c.refresh.waiters, ch)
		c.refresh.mu.Unlock()
		select {
		case res := <-ch:
			return res.token, res.err
		case <-ctx.Done():
			// The waiting request is abandoned; the refresh itself still runs
			// to completion for the other waiters.
			return "", ctx.Err()
		}
	}
	c.refresh.refreshing = true
	c.refresh.mu.Unlock()

	// The refresh call runs detached from the triggering request's context:
	// once started it must complete, or the token store could be left
	// half-refreshed while waiters hang.
	res := c.doRefresh(context.Background())

	c.refresh.mu.Lock()
	waiters := c.refresh.waiters
	c.refresh.waiters = nil
	c.refresh.refreshing = false
	c.refresh.mu.Unlock()

	for _, ch := range waiters {
		ch <- res
	}
	return res.token, res.err
}

func (c *Client) doRefresh(ctx context.Context) refreshResult {
	pair, err := c.store.Get(ctx)
	if err != nil {
		return refreshResult{err: fmt.Errorf("%w: %v", ErrRefreshFailed, err)}
	}
	if pair.RefreshToken == "" {
		c.store.Clear(ctx)
		return refreshResult{err: ErrNoRefreshToken}
	}

	body, _ := json.Marshal(map[string]string{"refresh_token": pair.RefreshToken})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+refreshPath, bytes.NewReader(body))
	if err != nil {
		return refreshResult{err: fmt.Errorf("%w: %v", ErrRefreshFailed, err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return refreshResult{err: fmt.Errorf("%w: %v", ErrRefreshFailed, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.store.Clear(ctx)
		c.logger.Warn("token refresh rejected", zap.Int("status", resp.StatusCode))
		return refreshResult{err: fmt.Errorf("%w: upstream returned %d", ErrRefreshFailed, resp.StatusCode)}
	}

	// Tokens arrive nested under data.
	var payload struct {
		Data struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.store.Clear(ctx)
		return refreshResult{err: fmt.Errorf("%w: %v", ErrRefreshFailed, err)}
	}
	if payload.Data.AccessToken == "" {
		c.store.Clear(ctx)
		return refreshResult{err: fmt.Errorf("%w: no access token in refresh response", ErrRefreshFailed)}
	}

	newPair := TokenPair{
		AccessToken:  payload.Data.AccessToken,
		RefreshToken: payload.Data.RefreshToken,
	}
	if newPair.RefreshToken == "" {
		// Upstream may rotate only the access token.
		newPair.RefreshToken = pair.RefreshToken
	}
	if err := c.store.Set(ctx, newPair); err != nil {
		return refreshResult{err: fmt.Errorf("%w: %v", ErrRefreshFailed, err)}
	}

	c.logger.Debug("access token refreshed")
	return refreshResult{token: newPair.AccessToken}
}
