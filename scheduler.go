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
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"
)

const (
	// globalRateLimitPerSec is Discord's documented global request ceiling
	// for a single bot token outside of per-route buckets.
	globalRateLimitPerSec = 50.0

	// cleanEveryNRequests controls how often the scheduler sweeps out
	// long-empty route queues, bounding the registry's memory growth.
	cleanEveryNRequests = 10_000

	// inactiveBucketTimeout is how long an empty route queue survives
	// before clean removes it.
	inactiveBucketTimeout = 60 * time.Second

	// schedulerTick is the loop's polling interval when idle; new
	// submissions wake it immediately via the select below.
	schedulerTick = 10 * time.Millisecond
)

// schedulerSubmission is one request handed to the scheduler goroutine.
type schedulerSubmission struct {
	route  RequestRoute
	future *httpFuture
}

// scheduler is the single goroutine that owns every rate-limit bucket and
// decides, each tick, which queued requests are eligible to go out.
//
// All bucket and queue state lives inside run's locals. The dispatch walk
// reads and writes it from the run goroutine alone; the per-request
// goroutines a pass starts fold their responses back into it under a
// mutex, and run waits for all of them before starting the next pass.
type scheduler struct {
	client      *http.Client
	logger      Logger
	submissions chan schedulerSubmission
	stop        chan struct{}
	stopOnce    sync.Once
}

// newScheduler creates a scheduler. Call run in its own goroutine to start it.
func newScheduler(client *http.Client, logger Logger) *scheduler {
	return &scheduler{
		client:      client,
		logger:      logger,
		submissions: make(chan schedulerSubmission, 256),
		stop:        make(chan struct{}),
	}
}

// submit enqueues a request for the given route and returns immediately.
// The caller waits on future.Wait for the eventual result.
func (s *scheduler) submit(route RequestRoute, future *httpFuture) {
	s.submissions <- schedulerSubmission{route: route, future: future}
}

// Shutdown stops the scheduler's run loop. It does not cancel in-flight requests.
func (s *scheduler) Shutdown() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

// run drives the scheduling loop: refill the global allowance, walk routes
// oldest-first, dispatch as many eligible requests as the allowances permit,
// then fold the responses' rate-limit headers back into bucket state.
//
// Grounded on the request-thread batching loop: refill, sort, dispatch,
// await, update, repeat.
func (s *scheduler) run() {
	registry := newRouteRegistry(inactiveBucketTimeout)
	rateBuckets := map[string]*bucket{unknownBucketName: newBucket()}
	routeToBucket := make(map[RequestRoute]string)

	globalAllowance := globalRateLimitPerSec
	lastRefill := time.Now()
	var requestsSent uint64
	var globalCooldownUntil time.Time

	ticker := time.NewTicker(schedulerTick)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case sub := <-s.submissions:
			registry.push(sub.route, sub.future)
		case <-ticker.C:
		}

		// Drain whatever else arrived without blocking the dispatch pass.
	drain:
		for {
			select {
			case sub := <-s.submissions:
				registry.push(sub.route, sub.future)
			default:
				break drain
			}
		}

		now := time.Now()
		globalAllowance += now.Sub(lastRefill).Seconds() * globalRateLimitPerSec
		if globalAllowance > globalRateLimitPerSec {
			globalAllowance = globalRateLimitPerSec
		}
		lastRefill = now

		if now.Before(globalCooldownUntil) {
			continue
		}

		type dispatch struct {
			route      RequestRoute
			future     *httpFuture
			bucketName string
		}
		var inFlight []dispatch

		for _, route := range registry.sortedActiveRoutes() {
			bucketName, ok := routeToBucket[route]
			if !ok {
				bucketName = unknownBucketName
			}
			b, ok := rateBuckets[bucketName]
			if !ok {
				b = newBucket()
				rateBuckets[bucketName] = b
			}
			b.resetIfElapsed(now.Unix())

			q, ok := registry.bucketQueueFor(route)
			if !ok {
				continue
			}
			for b.remainingRequests > 0 && globalAllowance >= 1 {
				qr, ok := q.pop()
				if !ok {
					break
				}
				requestsSent++
				b.remainingRequests--
				globalAllowance--
				inFlight = append(inFlight, dispatch{route: route, future: qr.future, bucketName: bucketName})
			}
			if q.isEmpty() {
				registry.notifyEmpty(route)
			}
			if globalAllowance < 1 {
				break
			}
		}

		if requestsSent > 0 && requestsSent%cleanEveryNRequests == 0 {
			registry.clean()
		}

		if len(inFlight) == 0 {
			continue
		}

		var wg sync.WaitGroup
		var mu sync.Mutex
		lastDate := make(map[RequestRoute]int64)

		for _, d := range inFlight {
			wg.Add(1)
			go func(d dispatch) {
				defer wg.Done()
				resp, err := s.client.Do(d.future.req)
				if err != nil {
					d.future.commit(nil, &TransportError{Op: "rest do", Err: err})
					return
				}
				mu.Lock()
				if resp.StatusCode == http.StatusTooManyRequests &&
					(resp.Header.Get(headerGlobal) == "true" || resp.Header.Get(headerScope) == "shared") {
					retryAfter := parseRetryAfter(resp.Header)
					until := time.Now().Add(retryAfter)
					if until.After(globalCooldownUntil) {
						globalCooldownUntil = until
					}
				}
				s.applyRateLimitHeaders(d.route, d.bucketName, resp.Header, rateBuckets, routeToBucket, lastDate)
				mu.Unlock()
				if resp.StatusCode == http.StatusTooManyRequests {
					resp.Body.Close()
					d.future.commit(nil, &RateLimitedUnexpected{Route: d.route, RetryAfter: parseRetryAfter(resp.Header)})
					return
				}
				d.future.commit(resp, nil)
			}(d)
		}
		wg.Wait()
	}
}

// applyRateLimitHeaders folds a response's X-RateLimit-* headers back into
// bucket state, resolving the route's UNKNOWN placeholder to its real named
// bucket on first response. Within a single dispatch pass, a response
// updates the bucket only if its Date header is strictly newer than that of
// every response already applied for the route, since requests for the same
// route can complete out of order; a response without a parseable Date
// header updates nothing.
func (s *scheduler) applyRateLimitHeaders(
	route RequestRoute,
	bucketName string,
	h http.Header,
	rateBuckets map[string]*bucket,
	routeToBucket map[RequestRoute]string,
	lastDate map[RequestRoute]int64,
) {
	date, err := http.ParseTime(h.Get("Date"))
	if err != nil {
		return
	}
	dateUnix := date.Unix()
	if dateUnix <= lastDate[route] {
		return
	}
	lastDate[route] = dateUnix

	remaining := parseHeaderInt(h, headerRemaining, 0)
	max := parseHeaderInt(h, headerLimit, 1)
	resetAt := parseHeaderInt64(h, headerReset, 0)

	resolvedName := bucketName
	if bucketName == unknownBucketName {
		realName := h.Get(headerBucket)
		if realName == "" {
			return
		}
		routeToBucket[route] = realName
		resolvedName = realName
	}

	b, ok := rateBuckets[resolvedName]
	if !ok {
		b = newBucket()
		rateBuckets[resolvedName] = b
	}
	b.maxRequests = max
	b.remainingRequests = remaining
	b.resetAt = resetAt
}

func parseHeaderInt(h http.Header, key string, fallback int) int {
	v := h.Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseRetryAfter parses the Retry-After header (seconds, possibly
// fractional) into a duration, defaulting to one second if absent/malformed.
func parseRetryAfter(h http.Header) time.Duration {
	v := h.Get(headerRetryAfter)
	if v == "" {
		return time.Second
	}
	sec, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return time.Second
	}
	whole, frac := math.Modf(sec)
	return time.Duration(whole)*time.Second + time.Duration(frac*1000)*time.Millisecond
}

func parseHeaderInt64(h http.Header, key string, fallback int64) int64 {
	v := h.Get(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	whole, _ := math.Modf(f)
	return int64(whole)
}
