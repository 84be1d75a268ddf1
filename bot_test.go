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
	"testing"
)

func TestNewBot_DefaultIntents(t *testing.T) {
	b := NewBot(context.Background())

	want := GatewayIntentGuilds |
		GatewayIntentGuildMembers |
		GatewayIntentGuildModeration |
		GatewayIntentGuildExpressions |
		GatewayIntentGuildIntegrations |
		GatewayIntentGuildWebhooks |
		GatewayIntentGuildInvites |
		GatewayIntentGuildVoiceStates |
		GatewayIntentGuildPresences |
		GatewayIntentGuildMessages |
		GatewayIntentGuildMessageReactions |
		GatewayIntentGuildMessageTyping |
		GatewayIntentDirectMessages |
		GatewayIntentGuildScheduledEvents
	if b.intents != want {
		t.Fatalf("expected default intents %d, got %d", want, b.intents)
	}
}

func TestWithIntents_CombinesBitwise(t *testing.T) {
	b := NewBot(context.Background(), WithIntents(GatewayIntentGuilds, GatewayIntentMessageContent))

	want := GatewayIntentGuilds | GatewayIntentMessageContent
	if b.intents != want {
		t.Fatalf("expected combined intents %d, got %d", want, b.intents)
	}
}

func TestWithDebug_TogglesSettings(t *testing.T) {
	b := NewBot(context.Background(), WithDebug(true))

	if !b.Settings().Debug {
		t.Fatalf("expected Settings().Debug to be true after WithDebug(true)")
	}
}

func TestBot_ContextSharesCacheAndRest(t *testing.T) {
	b := NewBot(context.Background())
	ctx := b.context()

	if ctx.restApi != b.restApi {
		t.Fatalf("expected Context to share the bot's restApi instance, not a copy")
	}
	if ctx.CacheManager != b.CacheManager {
		t.Fatalf("expected Context to share the bot's CacheManager instance")
	}
}
