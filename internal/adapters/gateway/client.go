// internal/adapters/gateway/client.go
package gateway

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"resabot/internal/adapters/observability"
)

// client is the shared outbound plumbing for both backend services:
// client-side rate limiting, retries with jittered backoff on transient
// statuses (GETs only), and external-call metrics. The typed wrappers on
// top of it own the failure-normalization contract.
type client struct {
	service string // metrics label
	base    string
	hc      *http.Client
	rl      *rate.Limiter
}

func newClient(service, base string, rps int) *client {
	if rps <= 0 {
		rps = 5
	}
	return &client{
		service: service,
		base:    strings.TrimRight(base, "/"),
		hc:      &http.Client{Timeout: 15 * time.Second},
		rl:      rate.NewLimiter(rate.Limit(rps), rps),
	}
}

var (
	errNotFound     = errors.New("gateway: not found")
	errUnauthorized = errors.New("gateway: unauthorized")
	errForbidden    = errors.New("gateway: forbidden")
)

// get performs a GET and returns the response body. Retries on 429 and
// transient 5xx, honoring Retry-After when provided.
func (c *client) get(ctx context.Context, path, token string) ([]byte, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
		if err != nil {
			return nil, err
		}
		c.setHeaders(req, token)

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			observability.ObserveExternal(c.service, path, 0, time.Since(start))
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, lastErr
		}
		observability.ObserveExternal(c.service, path, resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK, http.StatusCreated, http.StatusAccepted:
			b, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			return b, err

		case http.StatusNoContent:
			resp.Body.Close()
			return nil, nil

		case http.StatusNotFound:
			resp.Body.Close()
			return nil, errNotFound

		case http.StatusUnauthorized:
			resp.Body.Close()
			return nil, errUnauthorized

		case http.StatusForbidden:
			resp.Body.Close()
			return nil, errForbidden

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return nil, fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	return nil, lastErr
}

// do performs a single-attempt mutating request (POST/DELETE are not
// idempotent, so no retries) and returns status code and body.
func (c *client) do(ctx context.Context, method, path, token string, body any) (int, []byte, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return 0, nil, err
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return 0, nil, err
	}
	c.setHeaders(req, token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(c.service, path, 0, time.Since(start))
		if ctx.Err() != nil {
			return 0, nil, ctx.Err()
		}
		return 0, nil, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal(c.service, path, resp.StatusCode, time.Since(start))

	b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	return resp.StatusCode, b, nil
}

func (c *client) setHeaders(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "resabot/1.0")
}

// listEnvelope matches the backends' `{success, count, data}` wrapper.
type listEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// unwrapList decodes either an enveloped list or a bare JSON array, the
// same dual shape the services have historically returned.
func unwrapList[T any](b []byte) []T {
	var out []T
	if len(b) == 0 {
		return nil
	}
	var env listEnvelope
	if err := json.Unmarshal(b, &env); err == nil && len(env.Data) > 0 {
		if json.Unmarshal(env.Data, &out) == nil {
			return out
		}
	}
	if json.Unmarshal(b, &out) == nil {
		return out
	}
	return nil
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). Returns 0 if absent.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns an exponential delay (200ms, 400ms, 800ms...) with up to
// +50% crypto-rand jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
