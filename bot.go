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
	"log"
	"os"
	"strings"
)

/*****************************
 *          Bot
 *****************************/

// Bot is the single-session facade for a Discord bot: it owns the REST
// client, the Gateway session, the event dispatcher, and the interaction
// router, and ties them together behind Register and Listen.
//
// Bot never shards: it opens exactly one Gateway session, matching a
// small-to-medium bot's deployment shape.
type Bot struct {
	ctx        context.Context
	Logger     Logger        // logger used throughout the bot
	workerPool WorkerPool    // worker pool used to run handlers asynchronously
	token      string        // bot token (without "Bot " prefix)
	intents    GatewayIntent // configured Gateway intents
	session    *session      // the single Gateway session
	*restApi                 // REST API client
	CacheManager             // CacheManager for caching discord entities
	*dispatcher              // event dispatcher

	router   *interactionRouter
	settings Settings
}

// botOption defines a function used to configure Bot during creation.
type botOption func(*Bot)

/*****************************
 *       Options
 *****************************/

// WithToken sets the bot token for your bot.
//
// Usage:
//
//	b := corvid.NewBot(ctx, corvid.WithToken("your_bot_token"))
//
// Notes:
//   - Logs fatal and exits if token is empty or obviously invalid (< 50 chars).
//   - Removes "Bot " prefix automatically if provided.
//
// Warning: Never share your bot token publicly.
func WithToken(token string) botOption {
	if token == "" {
		log.Fatal("WithToken: token must not be empty")
	}
	if len(token) < 50 {
		log.Fatal("WithToken: token invalid")
	}
	if strings.HasPrefix(token, "Bot ") {
		token = strings.Split(token, " ")[1]
	}
	return func(b *Bot) {
		b.token = token
	}
}

// WithLogger sets a custom Logger implementation for your bot.
//
// Logs fatal and exits if logger is nil.
func WithLogger(logger Logger) botOption {
	if logger == nil {
		log.Fatal("WithLogger: logger must not be nil")
	}
	return func(b *Bot) {
		b.Logger = logger
	}
}

// WithWorkerPool sets a custom workerpool implementation for your bot.
//
// Logs fatal and exits if workerpool is nil.
func WithWorkerPool(workerPool WorkerPool) botOption {
	if workerPool == nil {
		log.Fatal("WithWorkerPool: workerPool must not be nil")
	}
	return func(b *Bot) {
		b.workerPool = workerPool
	}
}

// WithCacheManager sets a custom CacheManager implementation for your bot.
//
// Logs fatal and exits if cacheManager is nil.
func WithCacheManager(cacheManager CacheManager) botOption {
	if cacheManager == nil {
		log.Fatal("WithCacheManager: cacheManager must not be nil")
	}
	return func(b *Bot) {
		b.CacheManager = cacheManager
	}
}

// WithIntents sets the Gateway intents for the bot's session.
//
// Usage:
//
//	b := corvid.NewBot(ctx, corvid.WithIntents(GatewayIntentGuilds, GatewayIntentMessageContent))
func WithIntents(intents ...GatewayIntent) botOption {
	var totalIntents GatewayIntent
	for _, intent := range intents {
		totalIntents |= intent
	}
	return func(b *Bot) {
		b.intents = totalIntents
	}
}

// WithDebug toggles verbose debug logging across the bot's components
// (the interaction router and the bot's listen start message).
func WithDebug(debug bool) botOption {
	return func(b *Bot) {
		b.settings.Debug = debug
	}
}

/*****************************
 *       Constructor
 *****************************/

// NewBot creates a new Bot instance with the provided options.
//
// Defaults:
//   - Logger: stdout logger at Info level.
//   - Intents: guilds, members, moderation (bans), expressions (emojis),
//     integrations, webhooks, invites, voice states, presences, guild messages,
//     guild message reactions, guild message typing, direct messages and
//     scheduled events.
func NewBot(ctx context.Context, options ...botOption) *Bot {
	if ctx == nil {
		ctx = context.Background()
	}

	bot := &Bot{
		ctx:    ctx,
		Logger: NewDefaultLogger(os.Stdout, LogLevelInfoLevel),
		intents: GatewayIntentGuilds |
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
			GatewayIntentGuildScheduledEvents,
	}

	for _, option := range options {
		option(bot)
	}

	if bot.workerPool == nil {
		bot.workerPool = NewDefaultWorkerPool(bot.Logger)
	}

	bot.restApi = newRestApi(
		newRequester(nil, bot.token, bot.Logger),
		bot.Logger,
	)
	if bot.CacheManager == nil {
		bot.CacheManager = NewDefaultCache(
			CacheFlagGuilds | CacheFlagMembers | CacheFlagChannels | CacheFlagRoles | CacheFlagUsers,
		)
	}
	bot.dispatcher = newDispatcher(bot.Logger, bot.workerPool, bot.CacheManager)
	bot.router = newInteractionRouter(bot.Logger, bot.context())
	return bot
}

// context builds the Context capability handle handlers receive, sharing
// the bot's REST client and cache rather than copying them.
func (b *Bot) context() Context {
	return Context{
		Token:        b.token,
		Settings:     &b.settings,
		Logger:       b.Logger,
		CacheManager: b.CacheManager,
		restApi:      b.restApi,
	}
}

/*****************************
 *       Settings
 *****************************/

// Settings returns the bot's shared settings, mutable in place.
func (b *Bot) Settings() *Settings {
	return &b.settings
}

/*****************************
 *       Register
 *****************************/

// Register reconciles a single command handler with Discord's application
// command list (creating, editing, or leaving it untouched, see §4.4/§4.5)
// and binds it so the interaction router can dispatch to it once Listen
// starts. It is chainable but fallible: registration performs HTTP
// round-trips against Discord, any of which may fail.
//
// The bot's application id is resolved lazily on first Register call via
// FetchSelfUser, since this codebase has no dedicated "current application"
// endpoint.
func (b *Bot) Register(handler Registerable) (*Bot, error) {
	if b.router.ctx.ApplicationID == 0 {
		self, err := b.restApi.FetchSelfUser()
		if err != nil {
			return b, err
		}
		b.router.ctx.ApplicationID = self.ID
	}

	if _, err := registerCommand(b.router.ctx, b.router, handler); err != nil {
		return b, err
	}
	return b, nil
}

/*****************************
 *       Listen
 *****************************/

// Listen connects the bot's Gateway session and blocks until ctx is
// cancelled or the session itself ends, in which case it returns
// ErrSessionClosed.
//
// Sequence:
//  1. Install the interaction router as the INTERACTION_CREATE subscriber.
//  2. Open the Gateway session (identify happens once Hello arrives).
//  3. Block until the session closes or ctx is cancelled.
func (b *Bot) Listen(ctx context.Context) error {
	if ctx == nil {
		ctx = b.ctx
	}

	if b.router.ctx.ApplicationID == 0 {
		self, err := b.restApi.FetchSelfUser()
		if err != nil {
			return err
		}
		b.router.ctx.ApplicationID = self.ID
	}

	b.dispatcher.OnInteractionCreate(b.router.handle)

	b.session = newSession(b.token, b.intents, b.Logger, b.dispatcher)
	if err := b.session.connect(ctx); err != nil {
		return err
	}

	if b.settings.Debug {
		b.Logger.Debug("Bot listening")
	}

	err := b.session.Listen(ctx)
	b.Shutdown()
	return err
}

/*****************************
 *       Shutdown
 *****************************/

// Shutdown cleanly shuts down the Bot.
func (b *Bot) Shutdown() {
	b.Logger.Info("Bot shutting down")
	if b.session != nil {
		b.session.Shutdown()
	}
	b.restApi.Shutdown()
}
