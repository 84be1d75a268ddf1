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
	"bytes"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
)

/***********************
 *   Constants         *
 ***********************/

const (
	apiVersion       = "v10"
	baseApiUrl       = "https://discord.com/api/" + apiVersion
	headerRetryAfter = "Retry-After"
	headerGlobal     = "X-RateLimit-Global"
	headerRemaining  = "X-RateLimit-Remaining"
	headerLimit      = "X-RateLimit-Limit"
	headerReset      = "X-RateLimit-Reset"
	headerBucket     = "X-RateLimit-Bucket"
	headerScope      = "X-RateLimit-Scope"
	headerReason     = "X-Audit-Log-Reason"
)

/***********************
 *   requester         *
 ***********************/

// requester is the chokepoint every REST call goes through: it builds the
// outbound *http.Request, hands it to the scheduler as an httpFuture, and
// blocks the caller until the scheduler has executed it.
//
// Unlike the teacher's original per-call blocking-mutex-retry loop, rate
// limiting here is centralized in the scheduler goroutine, which owns every
// bucket and the global allowance and decides when each queued request may
// go out.
type requester struct {
	client    *http.Client
	scheduler *scheduler
	token     string
	userAgent string
	logger    Logger
}

// newRequester creates a new requester with the given bot token and logger,
// spawning the scheduler goroutine that will execute its requests.
func newRequester(client *http.Client, token string, logger Logger) *requester {
	if client == nil {
		client = &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,

				MaxIdleConns:        500,
				MaxIdleConnsPerHost: 100,
				MaxConnsPerHost:     200,

				IdleConnTimeout:       120 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,

				DisableKeepAlives: false,
				ForceAttemptHTTP2: true,
			},
		}
	}

	sched := newScheduler(client, logger)
	go sched.run()

	return &requester{
		client:    client,
		scheduler: sched,
		token:     "Bot " + token,
		userAgent: "DiscordBot (goda)",
		logger:    logger,
	}
}

// Shutdown stops the scheduler and closes idle connections on the underlying client.
func (r *requester) Shutdown() {
	r.scheduler.Shutdown()
	if r.client != nil {
		if tr, ok := r.client.Transport.(interface{ CloseIdleConnections() }); ok {
			tr.CloseIdleConnections()
		}
	}
}

// do builds the request, submits it to the scheduler, and blocks for the result.
func (r *requester) do(method, url string, body []byte, authenticateWithToken bool, reason string) (*http.Response, error) {
	route := requestRoute(method, url)

	req, err := http.NewRequest(method, baseApiUrl+url, bytes.NewReader(body))
	if err != nil {
		r.logger.Error("Failed building request for " + method + " " + url + ": " + err.Error())
		return nil, err
	}

	if authenticateWithToken {
		req.Header.Set("Authorization", r.token)
	}
	req.Header.Set("User-Agent", r.userAgent)
	if method == "POST" || method == "PUT" || method == "PATCH" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if reason != "" {
		req.Header.Set(headerReason, reason)
	}

	future := newHTTPFuture(req)
	r.scheduler.submit(route, future)
	return future.Wait()
}

/***********************
 *   Route templating  *
 ***********************/

var (
	reSnowflake     = regexp.MustCompile(`\d{17,19}`)
	reReactions     = regexp.MustCompile(`/reactions/.*`)
	reWebhooksToken = regexp.MustCompile(`/webhooks/(\d{17,19})/[^/?]+`)
)

const (
	oldMessageCutoffMS = 14 * 24 * 60 * 60 * 1000 // 14 days in milliseconds
)

// requestRoute derives the rate-limit bucket template for an endpoint: the
// route with every snowflake segment collapsed to :id except the route's one
// "major" parameter, which buckets are keyed on independently per Discord's
// rate limit model.
func requestRoute(method, endpoint string) RequestRoute {
	if strings.HasPrefix(endpoint, "/interactions/") && strings.HasSuffix(endpoint, "/callback") {
		return RequestRoute{BaseRoute: method + ":/interactions/:id/:token/callback"}
	}

	majorParam := reSnowflake.FindString(endpoint)

	if majorParam == "" {
		baseRoute := reSnowflake.ReplaceAllString(endpoint, ":id")
		baseRoute = reReactions.ReplaceAllString(baseRoute, "/reactions/:reaction")
		baseRoute = reWebhooksToken.ReplaceAllString(baseRoute, "/webhooks/:id/:token")
		return RequestRoute{BaseRoute: method + ":" + baseRoute}
	}

	var b strings.Builder
	b.Grow(len(endpoint) + 20)

	start := 0
	firstFound := false
	for _, loc := range reSnowflake.FindAllStringIndex(endpoint, -1) {
		b.WriteString(endpoint[start:loc[0]])

		id := endpoint[loc[0]:loc[1]]
		if !firstFound && id == majorParam {
			b.WriteString(id)
			firstFound = true
		} else {
			b.WriteString(":id")
		}
		start = loc[1]
	}
	b.WriteString(endpoint[start:])

	baseRoute := b.String()

	baseRoute = reReactions.ReplaceAllString(baseRoute, "/reactions/:reaction")
	baseRoute = reWebhooksToken.ReplaceAllString(baseRoute, "/webhooks/:id/:token")

	if method == "DELETE" && strings.HasPrefix(endpoint, "/channels/") && strings.Contains(endpoint, "/messages/") {
		lastSlash := strings.LastIndex(endpoint, "/")
		if lastSlash != -1 && lastSlash < len(endpoint)-1 {
			messageIdStr := endpoint[lastSlash+1:]
			if messageId, err := strconv.ParseUint(messageIdStr, 10, 64); err == nil {
				snow := Snowflake(messageId)
				if time.Now().UnixMilli()-snow.Timestamp().UnixMilli() > oldMessageCutoffMS {
					baseRoute += "/oldmessage"
				}
			}
		}
	}

	return RequestRoute{BaseRoute: method + ":" + baseRoute, MajorParam: majorParam}
}
