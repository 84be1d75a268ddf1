/************************************************************************************
 *
 * goda (Golang Optimized Discord API), A Lightweight Go library for Discord API
 *
 * SPDX-License-Identifier: BSD-3-Clause
 *
 * Copyright 2025 Marouane Souiri
 *
 * Licensed under the BSD 3-Clause License.
 * See the LICENSE file for details.
 *
 ************************************************************************************/

package corvid

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type mockRoundTripper struct {
	fn func(req *http.Request) (*http.Response, error)
}

func (m *mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.fn(req)
}

func newMockResponse(status int, body string, headers map[string]string) *http.Response {
	h := make(http.Header)
	for k, v := range headers {
		h.Set(k, v)
	}
	if h.Get("Date") == "" {
		h.Set("Date", time.Now().UTC().Format(http.TimeFormat))
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     h,
	}
}

func newTestRequester(mockFn func(*http.Request) (*http.Response, error)) *requester {
	mockClient := &http.Client{
		Transport: &mockRoundTripper{fn: mockFn},
		Timeout:   5 * time.Second,
	}
	logger := NewDefaultLogger(nil, LogLevelDebugLevel)
	return newRequester(mockClient, "testtoken", logger)
}

func TestRequester_Do_Success(t *testing.T) {
	r := newTestRequester(func(req *http.Request) (*http.Response, error) {
		return newMockResponse(200, `{"ok":true}`, map[string]string{
			"X-RateLimit-Remaining": "10",
			"X-RateLimit-Limit":     "10",
			"X-RateLimit-Bucket":    "bucket-a",
		}), nil
	})
	defer r.Shutdown()

	resp, err := r.do("GET", "/channels/123/messages", nil, true, "")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}
}

func TestRequester_Do_RateLimited(t *testing.T) {
	r := newTestRequester(func(req *http.Request) (*http.Response, error) {
		return newMockResponse(429, `{"message":"rate limited"}`, map[string]string{
			"Retry-After":           "0.05",
			"X-RateLimit-Remaining": "0",
		}), nil
	})
	defer r.Shutdown()

	_, err := r.do("GET", "/channels/123/messages", nil, true, "")
	rl, ok := err.(*RateLimitedUnexpected)
	if !ok {
		t.Fatalf("expected *RateLimitedUnexpected for the 429, got %v", err)
	}
	if rl.RetryAfter != 50*time.Millisecond {
		t.Fatalf("expected RetryAfter 50ms got %v", rl.RetryAfter)
	}
}

func TestRequester_Do_GlobalRateLimitDelaysSubsequentRequests(t *testing.T) {
	var attempts int32
	r := newTestRequester(func(req *http.Request) (*http.Response, error) {
		n := atomic.AddInt32(&attempts, 1)
		if n == 1 {
			return newMockResponse(429, `{"message":"global rate limit"}`, map[string]string{
				"Retry-After":           "0.1",
				"X-RateLimit-Global":    "true",
				"X-RateLimit-Remaining": "0",
			}), nil
		}
		return newMockResponse(200, `{"ok":true}`, nil), nil
	})
	defer r.Shutdown()

	_, err := r.do("GET", "/channels/123/messages", nil, true, "")
	rl, ok := err.(*RateLimitedUnexpected)
	if !ok {
		t.Fatalf("expected first request to surface the 429 as *RateLimitedUnexpected, got %v", err)
	}
	if rl.RetryAfter != 100*time.Millisecond {
		t.Fatalf("expected RetryAfter 100ms got %v", rl.RetryAfter)
	}

	start := time.Now()
	resp2, err := r.do("GET", "/channels/456/messages", nil, true, "")
	if err != nil {
		t.Fatal(err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", resp2.StatusCode)
	}
	if time.Since(start) < 50*time.Millisecond {
		t.Fatalf("expected the global cooldown to delay the next dispatch, took %v", time.Since(start))
	}
}

func TestRequester_ConcurrencyStress(t *testing.T) {
	var total int64
	r := newTestRequester(func(req *http.Request) (*http.Response, error) {
		return newMockResponse(200, `{"ok":true}`, map[string]string{
			"X-RateLimit-Remaining": "10",
			"X-RateLimit-Limit":     "10",
			"X-RateLimit-Bucket":    "stress-bucket",
		}), nil
	})
	defer r.Shutdown()

	const concurrency = 50
	const requestsPerGoroutine = 10
	wg := sync.WaitGroup{}
	wg.Add(concurrency)

	for range concurrency {
		go func() {
			defer wg.Done()
			for range requestsPerGoroutine {
				resp, err := r.do("GET", "/channels/123/messages", nil, true, "")
				if err != nil {
					t.Errorf("request error: %v", err)
					return
				}
				resp.Body.Close()
				atomic.AddInt64(&total, 1)
			}
		}()
	}
	wg.Wait()

	if total != concurrency*requestsPerGoroutine {
		t.Fatalf("expected %d successful requests, got %d", concurrency*requestsPerGoroutine, total)
	}
}

func TestRequestRoute(t *testing.T) {
	// Old message snowflake (more than 14 days)
	oldMessageID := "1363358614089371648"
	// New message snowflake, minted from the current time
	newMessageID := fmt.Sprint(uint64(time.Now().UnixMilli()-discordEpoch) << 22)

	cases := []struct {
		method   string
		endpoint string
	}{
		{"DELETE", "/channels/123456789012345678/messages/" + oldMessageID},
		{"DELETE", "/channels/123456789012345678/messages/" + newMessageID},
		{"POST", "/interactions/987654321098765432/abcdef/callback"},
		{"POST", "/webhooks/123456789012345678/abcdef1234567890"},
		{"PUT", "/channels/123456789012345678/messages/234567890123456789/reactions/XXXXXXX/@me"},
		{"GET", "/channels/123456789012345678/messages/234567890123456789"},
		{"PATCH", "/guilds/987654321098765432/members/123456789012345678"},
		{"GET", "/gateway/bot"},
		{"GET", "/users/@me"},
	}

	seen := make(map[RequestRoute]bool)
	for _, c := range cases {
		route := requestRoute(c.method, c.endpoint)
		if route.BaseRoute == "" {
			t.Fatalf("empty base route for %s %s", c.method, c.endpoint)
		}
		seen[route] = true
		fmt.Printf("Method: %s, Endpoint: %s\n => RequestRoute: %+v\n\n", c.method, c.endpoint, route)
	}

	oldRoute := requestRoute("DELETE", "/channels/123456789012345678/messages/"+oldMessageID)
	newRoute := requestRoute("DELETE", "/channels/123456789012345678/messages/"+newMessageID)
	if oldRoute.BaseRoute == newRoute.BaseRoute {
		t.Fatalf("expected old and new message deletes to bucket separately, got identical routes %q", oldRoute.BaseRoute)
	}
}
