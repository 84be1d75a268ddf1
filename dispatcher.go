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
	"os"
	"runtime/debug"
	"sync"
)

/*****************************
 *   EventhandlersManager
 *****************************/

// eventhandlersManager defines the interface for managing event handlers of a specific event type.
//
// Implementations must support adding handlers and dispatching raw JSON event data to those handlers.
type eventhandlersManager interface {
	// handleEvent unmarshals the raw JSON data and calls all registered handlers.
	handleEvent(cache CacheManager, shardID int, buf []byte)
	// addHandler adds a new handler function for the event type.
	addHandler(handler any)
}

/*****************************
 *        dispatcher
 *****************************/

// dispatcher manages registration of event handlers and dispatching of events.
//
// It stores handlers by event name string and invokes the correct handlers for incoming events.
//
// WARNING:
//   - This implementation is not fully thread-safe for handler registration. You must register
//     all handlers sequentially before starting event dispatching (usually at startup).
//   - Dispatching handlers is done asynchronously on the worker pool, one submitted task per event.
type dispatcher struct {
	logger           Logger
	cacheManager     CacheManager
	workerPool       WorkerPool
	handlersManagers map[string]eventhandlersManager
	mu               sync.RWMutex
}

// newDispatcher creates a new dispatcher instance.
//
// If logger is nil, it creates a default logger that writes to os.Stdout with info-level logging.
func newDispatcher(logger Logger, workerPool WorkerPool, cacheManager CacheManager) *dispatcher {
	if logger == nil {
		logger = NewDefaultLogger(os.Stdout, LogLevelInfoLevel)
	}
	if workerPool == nil {
		workerPool = NewDefaultWorkerPool(logger)
	}
	d := &dispatcher{
		logger:           logger,
		workerPool:       workerPool,
		cacheManager:     cacheManager,
		handlersManagers: make(map[string]eventhandlersManager, 20),
	}

	// Register some necessary events for caching
	d.handlersManagers["READY"] = &readyHandlers{logger: logger}
	d.handlersManagers["GUILD_CREATE"] = &guildCreateHandlers{logger: logger}

	return d
}

/*****************************
 *     Dispatch Event
 *****************************/

// dispatch sends raw event JSON data to all registered handlers for that event name.
//
// The eventName must exactly match the Discord event string (e.g., "MESSAGE_CREATE").
//
// This method submits each dispatch to the worker pool to avoid blocking the main event loop;
// the event is dropped with a warning if the pool's queue is full, and an event name with no
// registered handlers is logged at debug level and dropped.
func (d *dispatcher) dispatch(shardID int, eventName string, data []byte) {
	d.logger.Debug("Event '" + eventName + "' dispatched")
	if !d.workerPool.Submit(func() {
		defer func() {
			if r := recover(); r != nil {
				d.logger.WithField("event", eventName).
					WithField("shard_id", shardID).
					WithField("panic", r).
					WithField("stack", string(debug.Stack())).
					Error("Recovered from panic while handling event")
			}
		}()

		d.mu.RLock()
		hm, ok := d.handlersManagers[eventName]
		d.mu.RUnlock()

		if ok {
			hm.handleEvent(d.cacheManager, shardID, data)
		} else {
			d.logger.Debug("Dispatcher: dropped event '" + eventName + "' with no registered handlers")
		}
	}) {
		d.logger.Warn("Dispatcher: dropped event '" + eventName + "' due to full queue")
	}
}

/*****************************
 *      Register Handlers
 *****************************/

// OnMessageCreate registers a handler function for 'MESSAGE_CREATE' events.
//
// Note:
//   - This method is thread-safe via internal locking.
//   - However, it is strongly recommended to register all event handlers sequentially during startup,
//     before starting event dispatching, to avoid runtime mutations and ensure stable configuration.
//   - Handlers are called sequentially when dispatching in the order they were added.
func (d *dispatcher) OnMessageCreate(h func(MessageCreateEvent)) {
	const key = "MESSAGE_CREATE" // event name
	d.logger.Debug(key + " event handler registered")

	d.mu.Lock()
	defer d.mu.Unlock()

	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &messageCreateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnMessageDelete registers a handler function for 'MESSAGE_DELETE' events.
//
// Note:
//   - This method is thread-safe via internal locking.
//   - However, it is strongly recommended to register all event handlers sequentially during startup,
//     before starting event dispatching, to avoid runtime mutations and ensure stable configuration.
//   - Handlers are called sequentially when dispatching in the order they were added.
func (d *dispatcher) OnMessageDelete(h func(MessageDeleteEvent)) {
	const key = "MESSAGE_DELETE" // event name
	d.logger.Debug(key + " event handler registered")

	d.mu.Lock()
	defer d.mu.Unlock()

	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &messageDeleteHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnMessageUpdate registers a handler function for 'MESSAGE_UPDATE' events.
//
// Note:
//   - This method is thread-safe via internal locking.
//   - However, it is strongly recommended to register all event handlers sequentially during startup,
//     before starting event dispatching, to avoid runtime mutations and ensure stable configuration.
//   - Handlers are called sequentially when dispatching in the order they were added.
func (d *dispatcher) OnMessageUpdate(h func(MessageUpdateEvent)) {
	const key = "MESSAGE_UPDATE" // event name
	d.logger.Debug(key + " event handler registered")

	d.mu.Lock()
	defer d.mu.Unlock()

	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &messageUpdateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnInteractionCreate registers a handler function for 'INTERACTION_CREATE' events.
//
// Note:
//   - This method is thread-safe via internal locking.
//   - However, it is strongly recommended to register all event handlers sequentially during startup,
//     before starting event dispatching, to avoid runtime mutations and ensure stable configuration.
//   - Handlers are called sequentially when dispatching in the order they were added.
func (d *dispatcher) OnInteractionCreate(h func(InteractionCreateEvent)) {
	const key = "INTERACTION_CREATE" // event name
	d.logger.Debug(key + " event handler registered")

	d.mu.Lock()
	defer d.mu.Unlock()

	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &interactionCreateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnVoiceStateUpdate registers a handler function for 'VOICE_STATE_UPDATE' events.
//
// Note:
//   - This method is thread-safe via internal locking.
//   - However, it is strongly recommended to register all event handlers sequentially during startup,
//     before starting event dispatching, to avoid runtime mutations and ensure stable configuration.
//   - Handlers are called sequentially when dispatching in the order they were added.
func (d *dispatcher) OnVoiceStateUpdate(h func(VoiceStateUpdateEvent)) {
	const key = "VOICE_STATE_UPDATE" // event name
	d.logger.Debug(key + " event handler registered")

	d.mu.Lock()
	defer d.mu.Unlock()

	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &voiceStateUpdateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnChannelCreate registers a handler function for 'CHANNEL_CREATE' events.
func (d *dispatcher) OnChannelCreate(h func(ChannelCreateEvent)) {
	const key = "CHANNEL_CREATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &channelCreateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnChannelUpdate registers a handler function for 'CHANNEL_UPDATE' events.
func (d *dispatcher) OnChannelUpdate(h func(ChannelUpdateEvent)) {
	const key = "CHANNEL_UPDATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &channelUpdateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnChannelDelete registers a handler function for 'CHANNEL_DELETE' events.
func (d *dispatcher) OnChannelDelete(h func(ChannelDeleteEvent)) {
	const key = "CHANNEL_DELETE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &channelDeleteHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnChannelPinsUpdate registers a handler function for 'CHANNEL_PINS_UPDATE' events.
func (d *dispatcher) OnChannelPinsUpdate(h func(ChannelPinsUpdateEvent)) {
	const key = "CHANNEL_PINS_UPDATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &channelPinsUpdateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnThreadCreate registers a handler function for 'THREAD_CREATE' events.
func (d *dispatcher) OnThreadCreate(h func(ThreadCreateEvent)) {
	const key = "THREAD_CREATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &threadCreateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnThreadUpdate registers a handler function for 'THREAD_UPDATE' events.
func (d *dispatcher) OnThreadUpdate(h func(ThreadUpdateEvent)) {
	const key = "THREAD_UPDATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &threadUpdateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnThreadDelete registers a handler function for 'THREAD_DELETE' events.
func (d *dispatcher) OnThreadDelete(h func(ThreadDeleteEvent)) {
	const key = "THREAD_DELETE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &threadDeleteHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnThreadListSync registers a handler function for 'THREAD_LIST_SYNC' events.
func (d *dispatcher) OnThreadListSync(h func(ThreadListSyncEvent)) {
	const key = "THREAD_LIST_SYNC"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &threadListSyncHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnThreadMemberUpdate registers a handler function for 'THREAD_MEMBER_UPDATE' events.
func (d *dispatcher) OnThreadMemberUpdate(h func(ThreadMemberUpdateEvent)) {
	const key = "THREAD_MEMBER_UPDATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &threadMemberUpdateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnThreadMembersUpdate registers a handler function for 'THREAD_MEMBERS_UPDATE' events.
func (d *dispatcher) OnThreadMembersUpdate(h func(ThreadMembersUpdateEvent)) {
	const key = "THREAD_MEMBERS_UPDATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &threadMembersUpdateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnGuildUpdate registers a handler function for 'GUILD_UPDATE' events.
func (d *dispatcher) OnGuildUpdate(h func(GuildUpdateEvent)) {
	const key = "GUILD_UPDATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &guildUpdateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnGuildDelete registers a handler function for 'GUILD_DELETE' events.
func (d *dispatcher) OnGuildDelete(h func(GuildDeleteEvent)) {
	const key = "GUILD_DELETE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &guildDeleteHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnGuildBanAdd registers a handler function for 'GUILD_BAN_ADD' events.
func (d *dispatcher) OnGuildBanAdd(h func(GuildBanAddEvent)) {
	const key = "GUILD_BAN_ADD"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &guildBanAddHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnGuildBanRemove registers a handler function for 'GUILD_BAN_REMOVE' events.
func (d *dispatcher) OnGuildBanRemove(h func(GuildBanRemoveEvent)) {
	const key = "GUILD_BAN_REMOVE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &guildBanRemoveHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnGuildEmojisUpdate registers a handler function for 'GUILD_EMOJIS_UPDATE' events.
func (d *dispatcher) OnGuildEmojisUpdate(h func(GuildEmojisUpdateEvent)) {
	const key = "GUILD_EMOJIS_UPDATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &guildEmojisUpdateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnGuildStickersUpdate registers a handler function for 'GUILD_STICKERS_UPDATE' events.
func (d *dispatcher) OnGuildStickersUpdate(h func(GuildStickersUpdateEvent)) {
	const key = "GUILD_STICKERS_UPDATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &guildStickersUpdateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnGuildIntegrationsUpdate registers a handler function for 'GUILD_INTEGRATIONS_UPDATE' events.
func (d *dispatcher) OnGuildIntegrationsUpdate(h func(GuildIntegrationsUpdateEvent)) {
	const key = "GUILD_INTEGRATIONS_UPDATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &guildIntegrationsUpdateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnGuildMemberAdd registers a handler function for 'GUILD_MEMBER_ADD' events.
func (d *dispatcher) OnGuildMemberAdd(h func(GuildMemberAddEvent)) {
	const key = "GUILD_MEMBER_ADD"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &guildMemberAddHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnGuildMemberRemove registers a handler function for 'GUILD_MEMBER_REMOVE' events.
func (d *dispatcher) OnGuildMemberRemove(h func(GuildMemberRemoveEvent)) {
	const key = "GUILD_MEMBER_REMOVE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &guildMemberRemoveHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnGuildMemberUpdate registers a handler function for 'GUILD_MEMBER_UPDATE' events.
func (d *dispatcher) OnGuildMemberUpdate(h func(GuildMemberUpdateEvent)) {
	const key = "GUILD_MEMBER_UPDATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &guildMemberUpdateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnGuildMembersChunk registers a handler function for 'GUILD_MEMBERS_CHUNK' events.
func (d *dispatcher) OnGuildMembersChunk(h func(GuildMembersChunkEvent)) {
	const key = "GUILD_MEMBERS_CHUNK"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &guildMembersChunkHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnGuildRoleCreate registers a handler function for 'GUILD_ROLE_CREATE' events.
func (d *dispatcher) OnGuildRoleCreate(h func(GuildRoleCreateEvent)) {
	const key = "GUILD_ROLE_CREATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &guildRoleCreateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnGuildRoleUpdate registers a handler function for 'GUILD_ROLE_UPDATE' events.
func (d *dispatcher) OnGuildRoleUpdate(h func(GuildRoleUpdateEvent)) {
	const key = "GUILD_ROLE_UPDATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &guildRoleUpdateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnGuildRoleDelete registers a handler function for 'GUILD_ROLE_DELETE' events.
func (d *dispatcher) OnGuildRoleDelete(h func(GuildRoleDeleteEvent)) {
	const key = "GUILD_ROLE_DELETE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &guildRoleDeleteHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnGuildScheduledEventCreate registers a handler function for 'GUILD_SCHEDULED_EVENT_CREATE' events.
func (d *dispatcher) OnGuildScheduledEventCreate(h func(GuildScheduledEventCreateEvent)) {
	const key = "GUILD_SCHEDULED_EVENT_CREATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &guildScheduledEventCreateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnGuildScheduledEventUpdate registers a handler function for 'GUILD_SCHEDULED_EVENT_UPDATE' events.
func (d *dispatcher) OnGuildScheduledEventUpdate(h func(GuildScheduledEventUpdateEvent)) {
	const key = "GUILD_SCHEDULED_EVENT_UPDATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &guildScheduledEventUpdateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnGuildScheduledEventDelete registers a handler function for 'GUILD_SCHEDULED_EVENT_DELETE' events.
func (d *dispatcher) OnGuildScheduledEventDelete(h func(GuildScheduledEventDeleteEvent)) {
	const key = "GUILD_SCHEDULED_EVENT_DELETE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &guildScheduledEventDeleteHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnGuildScheduledEventUserAdd registers a handler function for 'GUILD_SCHEDULED_EVENT_USER_ADD' events.
func (d *dispatcher) OnGuildScheduledEventUserAdd(h func(GuildScheduledEventUserAddEvent)) {
	const key = "GUILD_SCHEDULED_EVENT_USER_ADD"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &guildScheduledEventUserAddHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnGuildScheduledEventUserRemove registers a handler function for 'GUILD_SCHEDULED_EVENT_USER_REMOVE' events.
func (d *dispatcher) OnGuildScheduledEventUserRemove(h func(GuildScheduledEventUserRemoveEvent)) {
	const key = "GUILD_SCHEDULED_EVENT_USER_REMOVE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &guildScheduledEventUserRemoveHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnIntegrationCreate registers a handler function for 'INTEGRATION_CREATE' events.
func (d *dispatcher) OnIntegrationCreate(h func(IntegrationCreateEvent)) {
	const key = "INTEGRATION_CREATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &integrationCreateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnIntegrationUpdate registers a handler function for 'INTEGRATION_UPDATE' events.
func (d *dispatcher) OnIntegrationUpdate(h func(IntegrationUpdateEvent)) {
	const key = "INTEGRATION_UPDATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &integrationUpdateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnIntegrationDelete registers a handler function for 'INTEGRATION_DELETE' events.
func (d *dispatcher) OnIntegrationDelete(h func(IntegrationDeleteEvent)) {
	const key = "INTEGRATION_DELETE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &integrationDeleteHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnInviteCreate registers a handler function for 'INVITE_CREATE' events.
func (d *dispatcher) OnInviteCreate(h func(InviteCreateEvent)) {
	const key = "INVITE_CREATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &inviteCreateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnInviteDelete registers a handler function for 'INVITE_DELETE' events.
func (d *dispatcher) OnInviteDelete(h func(InviteDeleteEvent)) {
	const key = "INVITE_DELETE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &inviteDeleteHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnMessageDeleteBulk registers a handler function for 'MESSAGE_DELETE_BULK' events.
func (d *dispatcher) OnMessageDeleteBulk(h func(MessageDeleteBulkEvent)) {
	const key = "MESSAGE_DELETE_BULK"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &messageDeleteBulkHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnMessageReactionAdd registers a handler function for 'MESSAGE_REACTION_ADD' events.
func (d *dispatcher) OnMessageReactionAdd(h func(MessageReactionAddEvent)) {
	const key = "MESSAGE_REACTION_ADD"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &messageReactionAddHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnMessageReactionRemove registers a handler function for 'MESSAGE_REACTION_REMOVE' events.
func (d *dispatcher) OnMessageReactionRemove(h func(MessageReactionRemoveEvent)) {
	const key = "MESSAGE_REACTION_REMOVE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &messageReactionRemoveHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnMessageReactionRemoveAll registers a handler function for 'MESSAGE_REACTION_REMOVE_ALL' events.
func (d *dispatcher) OnMessageReactionRemoveAll(h func(MessageReactionRemoveAllEvent)) {
	const key = "MESSAGE_REACTION_REMOVE_ALL"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &messageReactionRemoveAllHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnMessageReactionRemoveEmoji registers a handler function for 'MESSAGE_REACTION_REMOVE_EMOJI' events.
func (d *dispatcher) OnMessageReactionRemoveEmoji(h func(MessageReactionRemoveEmojiEvent)) {
	const key = "MESSAGE_REACTION_REMOVE_EMOJI"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &messageReactionRemoveEmojiHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnPresenceUpdate registers a handler function for 'PRESENCE_UPDATE' events.
func (d *dispatcher) OnPresenceUpdate(h func(PresenceUpdateEvent)) {
	const key = "PRESENCE_UPDATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &presenceUpdateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnStageInstanceCreate registers a handler function for 'STAGE_INSTANCE_CREATE' events.
func (d *dispatcher) OnStageInstanceCreate(h func(StageInstanceCreateEvent)) {
	const key = "STAGE_INSTANCE_CREATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &stageInstanceCreateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnStageInstanceUpdate registers a handler function for 'STAGE_INSTANCE_UPDATE' events.
func (d *dispatcher) OnStageInstanceUpdate(h func(StageInstanceUpdateEvent)) {
	const key = "STAGE_INSTANCE_UPDATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &stageInstanceUpdateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnStageInstanceDelete registers a handler function for 'STAGE_INSTANCE_DELETE' events.
func (d *dispatcher) OnStageInstanceDelete(h func(StageInstanceDeleteEvent)) {
	const key = "STAGE_INSTANCE_DELETE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &stageInstanceDeleteHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnTypingStart registers a handler function for 'TYPING_START' events.
func (d *dispatcher) OnTypingStart(h func(TypingStartEvent)) {
	const key = "TYPING_START"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &typingStartHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnUserUpdate registers a handler function for 'USER_UPDATE' events.
func (d *dispatcher) OnUserUpdate(h func(UserUpdateEvent)) {
	const key = "USER_UPDATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &userUpdateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnVoiceServerUpdate registers a handler function for 'VOICE_SERVER_UPDATE' events.
func (d *dispatcher) OnVoiceServerUpdate(h func(VoiceServerUpdateEvent)) {
	const key = "VOICE_SERVER_UPDATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &voiceServerUpdateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}

// OnWebhooksUpdate registers a handler function for 'WEBHOOKS_UPDATE' events.
func (d *dispatcher) OnWebhooksUpdate(h func(WebhooksUpdateEvent)) {
	const key = "WEBHOOKS_UPDATE"
	d.logger.Debug(key + " event handler registered")
	d.mu.Lock()
	defer d.mu.Unlock()
	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = &webhooksUpdateHandlers{logger: d.logger}
		d.handlersManagers[key] = hm
	}
	hm.addHandler(h)
}
