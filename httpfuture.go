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
	"net/http"
	"sync"
)

// httpResult is the outcome of an executed request: either a response or an error.
type httpResult struct {
	resp *http.Response
	err  error
}

// httpFuture is a one-shot handle for a request submitted to the scheduler.
//
// The caller that submits a request blocks on Wait until the scheduler goroutine
// that owns the request's bucket executes it and commits the result. This plays
// the role a poll-based Future/Waker pair plays in languages with async runtimes;
// Go's blocking channel receive is the idiomatic stand-in.
type httpFuture struct {
	req *http.Request

	once   sync.Once
	done   chan struct{}
	result httpResult
}

// newHTTPFuture creates a future wrapping the given outbound request.
func newHTTPFuture(req *http.Request) *httpFuture {
	return &httpFuture{
		req:  req,
		done: make(chan struct{}),
	}
}

// commit stores the result and wakes any goroutine blocked in Wait.
//
// Safe to call exactly once per future; later calls are no-ops.
func (f *httpFuture) commit(resp *http.Response, err error) {
	f.once.Do(func() {
		f.result = httpResult{resp: resp, err: err}
		close(f.done)
	})
}

// Wait blocks until the scheduler has executed the request, then returns its result.
func (f *httpFuture) Wait() (*http.Response, error) {
	<-f.done
	return f.result.resp, f.result.err
}
