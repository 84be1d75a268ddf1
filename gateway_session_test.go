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
	"testing"
	"time"

	"github.com/bytedance/sonic"
)

func newTestSession() *session {
	logger := NewDefaultLogger(nil, LogLevelDebugLevel)
	dispatcher := newDispatcher(logger, NewDefaultWorkerPool(logger), NewDefaultCache(CacheFlagsAll))
	return newSession("testtoken", GatewayIntentGuilds, logger, dispatcher)
}

func TestNewSession_StartsConnecting(t *testing.T) {
	s := newTestSession()
	if sessionState(s.state.Load()) != sessionStateConnecting {
		t.Fatalf("expected a freshly constructed session to be in the connecting state")
	}
}

func TestSendIdentify_EnqueuesValidPayload(t *testing.T) {
	s := newTestSession()
	s.sendIdentify()

	select {
	case payload := <-s.outgoing:
		var decoded struct {
			Op int `json:"op"`
			D  struct {
				Token   string `json:"token"`
				Intents int    `json:"intents"`
			} `json:"d"`
		}
		if err := sonic.Unmarshal(payload, &decoded); err != nil {
			t.Fatalf("expected a valid JSON identify payload, got error: %v", err)
		}
		if decoded.Op != int(gatewayOpcodeIdentify) {
			t.Fatalf("expected op %d, got %d", gatewayOpcodeIdentify, decoded.Op)
		}
		if decoded.D.Token != "testtoken" {
			t.Fatalf("expected token 'testtoken', got %q", decoded.D.Token)
		}
	case <-time.After(time.Second):
		t.Fatalf("expected sendIdentify to enqueue a payload on outgoing")
	}
}

func TestShutdown_IsIdempotent(t *testing.T) {
	s := newTestSession()

	s.shutdown(ErrSessionClosed)
	s.shutdown(ErrSessionClosed)

	select {
	case <-s.closed:
	default:
		t.Fatalf("expected closed channel to be closed after shutdown")
	}
	if s.closeErr != ErrSessionClosed {
		t.Fatalf("expected closeErr to be ErrSessionClosed, got %v", s.closeErr)
	}
}

func TestLatency_ReflectsStoredValue(t *testing.T) {
	s := newTestSession()
	s.latency.Store(42)
	if s.Latency() != 42 {
		t.Fatalf("expected Latency() to return the stored value, got %d", s.Latency())
	}
}
