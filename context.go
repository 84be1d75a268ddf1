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

// Settings holds user-configurable behavior shared across a Bot and the
// handlers it invokes.
type Settings struct {
	// Debug enables verbose Debug-level logging from components that
	// would otherwise stay quiet on the happy path: the interaction
	// router (unmatched command ids) and the bot's listen start message.
	// Command registration does not log its create/edit/no-op decisions.
	Debug bool
}

// Context is the small, cheap-to-copy capability handle passed to every
// registered command handler's Handle method. It embeds *restApi so a
// handler can call any REST method directly on it (ctx.CreateInteractionResponse,
// ctx.FetchUser, ...) without holding a reference to the Bot itself.
type Context struct {
	// Token is the bot token, without the "Bot " prefix.
	Token string

	// ApplicationID is this bot's application id, used for the
	// application-scoped command endpoints.
	ApplicationID Snowflake

	// Settings is shared, mutable only through the Bot that owns it.
	Settings *Settings

	// Logger is the shared logger handlers may use for their own messages.
	Logger Logger

	// CacheManager gives handlers read access to cached entities.
	CacheManager

	*restApi
}
