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
	"context"
	"net"
	"sync/atomic"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
)

const (
	gatewayVersion = "10"
	gatewayURL     = "wss://gateway.discord.gg/?v=10&encoding=json"
)

// sessionState is the gateway session's connection lifecycle.
//
// Unlike the teacher's Shard, a session never resumes and never
// reconnects on its own: a dropped connection moves it straight to
// closed and Listen returns the error to its caller.
type sessionState int32

const (
	sessionStateConnecting sessionState = iota
	sessionStateHandshake
	sessionStateLive
	sessionStateClosed
)

// session manages a single, non-sharded WebSocket connection to the
// Discord Gateway: identify, heartbeat, and dispatch of received events.
//
// There is exactly one session per bot. It does not shard, does not
// resume a dropped connection, and does not run zombie-connection
// detection (heartbeat ACKs are only logged); a lost connection tears
// the session down and surfaces an error from Listen.
type session struct {
	token   string
	intents GatewayIntent

	logger     Logger
	dispatcher *dispatcher

	conn net.Conn

	state atomic.Int32

	seq     atomic.Int64
	latency atomic.Int64

	// outgoing carries application payloads (identify, presence update,
	// voice state update); heartbeats travel on their own channel so the
	// sender can always give them priority.
	outgoing  chan []byte
	heartbeat chan []byte

	// closed is closed exactly once, by whichever goroutine first detects
	// the session has ended, to signal the other goroutines to stop.
	closed chan struct{}
	closeErr error
}

// newSession constructs a session. Call connect to establish the socket
// and Listen to block until the session ends.
func newSession(token string, intents GatewayIntent, logger Logger, dispatcher *dispatcher) *session {
	s := &session{
		token:      token,
		intents:    intents,
		logger:     logger,
		dispatcher: dispatcher,
		outgoing:   make(chan []byte, 16),
		heartbeat:  make(chan []byte, 4),
		closed:     make(chan struct{}),
	}
	s.state.Store(int32(sessionStateConnecting))
	return s
}

// connect dials the Gateway WebSocket and moves the session into the
// handshake state. The caller must follow with Listen.
func (s *session) connect(ctx context.Context) error {
	dialer := ws.Dialer{}

	conn, _, _, err := dialer.Dial(ctx, gatewayURL)
	if err != nil {
		return err
	}

	s.conn = conn
	s.state.Store(int32(sessionStateHandshake))
	s.logger.Info("Gateway session connected")
	return nil
}

// Listen starts the sender, heartbeat, and receiver goroutines and
// blocks until the session ends, returning the error that ended it
// (nil only if ctx was cancelled).
func (s *session) Listen(ctx context.Context) error {
	helloInterval := make(chan time.Duration, 1)

	go s.sender()
	go s.receiver(helloInterval)

	select {
	case interval := <-helloInterval:
		go s.heartbeatLoop(interval)
	case <-s.closed:
		return s.closeErr
	case <-ctx.Done():
		s.shutdown(ctx.Err())
		return ctx.Err()
	}

	select {
	case <-s.closed:
		return s.closeErr
	case <-ctx.Done():
		s.shutdown(ctx.Err())
		return ctx.Err()
	}
}

// shutdown tears the session down exactly once, recording err as the
// reason Listen returns.
func (s *session) shutdown(err error) {
	select {
	case <-s.closed:
		return
	default:
	}
	s.state.Store(int32(sessionStateClosed))
	s.closeErr = err
	if s.conn != nil {
		s.conn.Close()
	}
	close(s.closed)
}

// sender owns the connection's write side. It enforces Discord's
// 120-messages-per-60-seconds send budget with a token bucket that
// refills continuously, always draining the heartbeat channel first so
// a heartbeat is never starved behind a burst of application sends.
//
// Grounded on the token-bucket/priority-drain sender loop used by the
// reference websocket handler, adapted from its channel-select shape to
// Go's select over two channels plus a ticker.
func (s *session) sender() {
	const maxAllowance = 120.0
	const allowanceRatePerSec = maxAllowance / 60.0

	allowance := maxAllowance
	last := time.Now()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		// With no allowance left, receive from nil channels (which never
		// become ready) so queued sends wait for the ticker's refill.
		hb, out := s.heartbeat, s.outgoing
		if allowance < 1.0 {
			hb, out = nil, nil
		}
		select {
		case <-s.closed:
			return
		case msg := <-hb:
			if allowance >= 1.0 {
				if err := wsutil.WriteClientMessage(s.conn, ws.OpText, msg); err != nil {
					s.shutdown(err)
					return
				}
				allowance -= 1.0
			}
		case msg := <-out:
			if allowance >= 1.0 {
				if err := wsutil.WriteClientMessage(s.conn, ws.OpText, msg); err != nil {
					s.shutdown(err)
					return
				}
				allowance -= 1.0
			}
		case now := <-ticker.C:
			allowance += now.Sub(last).Seconds() * allowanceRatePerSec
			if allowance > maxAllowance {
				allowance = maxAllowance
			}
			last = now

			// Drain whatever heartbeat/outgoing sends the allowance now
			// permits before waiting on the next event.
		drain:
			for allowance >= 1.0 {
				select {
				case msg := <-s.heartbeat:
					if err := wsutil.WriteClientMessage(s.conn, ws.OpText, msg); err != nil {
						s.shutdown(err)
						return
					}
					allowance -= 1.0
				default:
					select {
					case msg := <-s.outgoing:
						if err := wsutil.WriteClientMessage(s.conn, ws.OpText, msg); err != nil {
							s.shutdown(err)
							return
						}
						allowance -= 1.0
					default:
						break drain
					}
				}
			}
		}
	}
}

// heartbeatLoop sends a heartbeat payload on the heartbeat channel every
// interval, recording against the monotonic clock how long each heartbeat
// took to be handed to the sender.
func (s *session) heartbeatLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.closed:
			return
		case <-ticker.C:
			start := MonotonicNow()
			payload, _ := sonic.Marshal(map[string]any{
				"op": gatewayOpcodeHeartbeat,
				"d":  s.seq.Load(),
			})
			select {
			case s.heartbeat <- payload:
			case <-s.closed:
				return
			}
			s.latency.Store(MonotonicSinceMs(start))
		}
	}
}

// receiver owns the connection's read side, switching on each payload's
// opcode. It signals the HELLO's heartbeat_interval back to Listen via
// helloInterval exactly once, then runs until the connection closes.
//
// Grounded on the reference event_receiver's opcode switch; reconnect,
// invalid-session, and resume handling are intentionally absent here,
// since this session never resumes or reconnects itself.
func (s *session) receiver(helloInterval chan<- time.Duration) {
	for {
		msg, op, err := wsutil.ReadServerData(s.conn)
		if err != nil {
			s.shutdown(err)
			return
		}
		if op != ws.OpText {
			continue
		}

		var payload gatewayPayload
		if err := sonic.Unmarshal(msg, &payload); err != nil {
			s.logger.Error("Gateway session: failed unmarshalling payload: " + err.Error())
			continue
		}

		switch payload.Op {
		case gatewayOpcodeDispatch:
			s.seq.Store(payload.S)
			s.dispatcher.dispatch(0, payload.T, payload.D)

		case gatewayOpcodeHeartbeat:
			hb, _ := sonic.Marshal(map[string]any{
				"op": gatewayOpcodeHeartbeat,
				"d":  s.seq.Load(),
			})
			select {
			case s.heartbeat <- hb:
			case <-s.closed:
				return
			}

		case gatewayOpcodeReconnect:
			s.logger.Info("Gateway session: RECONNECT requested, closing session")
			s.shutdown(ErrSessionClosed)
			return

		case gatewayOpcodeInvalidSession:
			s.logger.Error("Gateway session: INVALID_SESSION received, closing session")
			s.shutdown(ErrSessionClosed)
			return

		case gatewayOpcodeHello:
			var hello struct {
				HeartbeatInterval float64 `json:"heartbeat_interval"`
			}
			sonic.Unmarshal(payload.D, &hello)
			s.state.Store(int32(sessionStateLive))
			s.logger.Debug("Gateway session: HELLO received")
			s.sendIdentify()
			select {
			case helloInterval <- time.Duration(hello.HeartbeatInterval) * time.Millisecond:
			default:
			}

		case gatewayOpcodeHeartbeatACK:
			s.logger.Debug("Gateway session: heartbeat ACKed")
		}
	}
}

// sendIdentify queues an Identify payload authenticating the session
// and declaring its intents.
func (s *session) sendIdentify() {
	payload, _ := sonic.Marshal(map[string]any{
		"op": gatewayOpcodeIdentify,
		"d": map[string]any{
			"token": s.token,
			"properties": map[string]string{
				"os":      "linux",
				"browser": LIB_NAME,
				"device":  LIB_NAME,
			},
			"intents": s.intents,
		},
	})
	select {
	case s.outgoing <- payload:
	case <-s.closed:
	}
}

// Latency returns, in milliseconds, how long the most recent heartbeat
// took to be handed to the sender. It does not measure the round trip to
// the Gateway's heartbeat ACK.
func (s *session) Latency() int64 {
	return s.latency.Load()
}

// Shutdown closes the session's connection and stops its goroutines.
func (s *session) Shutdown() {
	s.shutdown(nil)
}
