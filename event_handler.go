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

import "encoding/json"

/*****************************
 *   READY Handler
 *****************************/

// readyHandlers manages all registered handlers for READY events.
type readyHandlers struct {
	logger   Logger
	handlers []func(ReadyEvent)
}

// handleEvent parses the READY event data and calls each registered handler.
func (h *readyHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := ReadyEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("readyHandlers: Failed parsing event data")
		return
	}

	for i := range len(evt.Guilds) {
		cache.PutGuild(evt.Guilds[i])
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

// addHandler registers a new READY handler function.
//
// This method is not thread-safe.
func (h *readyHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(ReadyEvent)))
}

/*****************************
 *   GUILD_CREATE Handler
 *****************************/

// guildCreateHandlers manages all registered handlers for GUILD_CREATE events.
type guildCreateHandlers struct {
	logger   Logger
	handlers []func(GuildCreateEvent)
}

// handleEvent parses the GUILD_CREATE event data and calls each registered handler.
func (h *guildCreateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildCreateEvent{ShardsID: shardID}

	if err := json.Unmarshal(data, &evt.Guild); err != nil {
		h.logger.Error("guildCreateHandlers: Failed parsing event data")
		return
	}

	flags := cache.Flags()

	if flags.Has(CacheFlagGuilds) {
		cache.PutGuild(evt.Guild.Guild)
	}
	if flags.Has(CacheFlagMembers) {
		for i := range len(evt.Guild.Members) {
			cache.PutMember(evt.Guild.Members[i])
		}
	}
	if flags.Has(CacheFlagChannels) {
		for i := range len(evt.Guild.Channels) {
			cache.PutChannel(evt.Guild.Channels[i])
		}
	}
	if flags.Has(CacheFlagRoles) {
		for i := range len(evt.Guild.Roles) {
			cache.PutRole(evt.Guild.Roles[i])
		}
	}
	if flags.Has(CacheFlagVoiceStates) {
		for i := range len(evt.Guild.VoiceStates) {
			cache.PutVoiceState(evt.Guild.VoiceStates[i])
		}
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

// addHandler registers a new GUILD_CREATE handler function.
//
// This method is not thread-safe.
func (h *guildCreateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildCreateEvent)))
}

/*****************************
 *   MESSAGE_CREATE Handler
 *****************************/

// messageCreateHandlers manages all registered handlers for MESSAGE_CREATE events.
type messageCreateHandlers struct {
	logger   Logger
	handlers []func(MessageCreateEvent)
}

// handleEvent parses the MESSAGE_CREATE event data and calls each registered handler.
func (h *messageCreateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := MessageCreateEvent{ShardsID: shardID}

	if err := json.Unmarshal(data, &evt.Message); err != nil {
		h.logger.Error("messageCreateHandlers: Failed parsing event data")
		return
	}

	if cache.Flags().Has(CacheFlagMessages) {
		cache.PutMessage(evt.Message)
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

// addHandler registers a new MESSAGE_CREATE handler function.
//
// This method is not thread-safe.
func (h *messageCreateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(MessageCreateEvent)))
}

/*****************************
 *   MESSAGE_DELETE Handler
 *****************************/

// messageDeleteHandlers manages all registered handlers for MESSAGE_DELETE events.
type messageDeleteHandlers struct {
	logger   Logger
	handlers []func(MessageDeleteEvent)
}

// handleEvent parses the MESSAGE_DELETE event data and calls each registered handler.
func (h *messageDeleteHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := MessageDeleteEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.Message); err != nil {
		h.logger.Error("messageDeleteHandlers: Failed parsing event data")
		return
	}

	if message, ok := cache.GetMessage(evt.Message.ID); ok {
		evt.Message = message
	}
	cache.DelMessage(evt.Message.ID)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

// addHandler registers a new MESSAGE_DELETE handler function.
//
// This method is not thread-safe.
func (h *messageDeleteHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(MessageDeleteEvent)))
}

/*****************************
 *   MESSAGE_UPDATE Handler
 *****************************/

// messageUpdateHandlers manages all registered handlers for MESSAGE_UPDATE events.
type messageUpdateHandlers struct {
	logger   Logger
	handlers []func(MessageUpdateEvent)
}

// handleEvent parses the MESSAGE_UPDATE event data and calls each registered handler.
func (h *messageUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := MessageUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.NewMessage); err != nil {
		h.logger.Error("messageUpdateHandlers: Failed parsing event data")
		return
	}

	if oldMessage, ok := cache.GetMessage(evt.NewMessage.ID); ok {
		evt.OldMessage = oldMessage
	} else {
		evt.OldMessage.ID = evt.NewMessage.ID
		evt.OldMessage.ChannelID = evt.NewMessage.ChannelID
		evt.OldMessage.GuildID = evt.NewMessage.GuildID
		evt.OldMessage.Author = evt.NewMessage.Author
		evt.OldMessage.Timestamp = evt.NewMessage.Timestamp
		evt.OldMessage.ApplicationID = evt.NewMessage.ApplicationID
	}

	if cache.Flags().Has(CacheFlagMessages) {
		cache.PutMessage(evt.NewMessage)
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

// addHandler registers a new MESSAGE_UPDATE handler function.
//
// This method is not thread-safe.
func (h *messageUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(MessageUpdateEvent)))
}

/*****************************
 * INTERACTION_CREATE Handler
 *****************************/

// interactionCreateHandlers manages all registered handlers for INTERACTION_CREATE events.
type interactionCreateHandlers struct {
	logger   Logger
	handlers []func(InteractionCreateEvent)
}

// handleEvent parses the INTERACTION_CREATE event data and calls each registered handler.
func (h *interactionCreateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := InteractionCreateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("interactionCreateHandlers: Failed parsing event data")
		return
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

// addHandler registers a new INTERACTION_CREATE handler function.
//
// This method is not thread-safe.
func (h *interactionCreateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(InteractionCreateEvent)))
}

/*****************************
 * VOICE_STATE_UPDATE Handler
 *****************************/

// voiceStateUpdateHandlers manages all registered handlers for VOICE_STATE_UPDATE events.
type voiceStateUpdateHandlers struct {
	logger   Logger
	handlers []func(VoiceStateUpdateEvent)
}

// handleEvent parses the VOICE_STATE_UPDATE event data and calls each registered handler.
func (h *voiceStateUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := VoiceStateUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.NewState); err != nil {
		h.logger.Error("voiceStateCreateHandlers: Failed parsing event data")
		return
	}

	if oldVoiceState, ok := cache.GetVoiceState(evt.NewState.GuildID, evt.NewState.UserID); ok {
		evt.OldState = oldVoiceState
	} else {
		evt.OldState = evt.NewState
		evt.OldState.ChannelID = 0
	}

	if cache.Flags().Has(CacheFlagVoiceStates) {
		cache.PutVoiceState(evt.NewState)
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

// addHandler registers a new VOICE_STATE_UPDATE handler function.
//
// This method is not thread-safe.
func (h *voiceStateUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(VoiceStateUpdateEvent)))
}

/*****************************
 *   CHANNEL_CREATE Handler
 *****************************/

type channelCreateHandlers struct {
	logger   Logger
	handlers []func(ChannelCreateEvent)
}

func (h *channelCreateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	channel, err := UnmarshalChannel(data)
	if err != nil {
		h.logger.Error("channelCreateHandlers: Failed parsing event data")
		return
	}
	evt := ChannelCreateEvent{ShardsID: shardID, Channel: channel}

	if cache.Flags().Has(CacheFlagChannels) {
		cache.PutChannel(channel)
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *channelCreateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(ChannelCreateEvent)))
}

/*****************************
 *   CHANNEL_UPDATE Handler
 *****************************/

type channelUpdateHandlers struct {
	logger   Logger
	handlers []func(ChannelUpdateEvent)
}

func (h *channelUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	channel, err := UnmarshalChannel(data)
	if err != nil {
		h.logger.Error("channelUpdateHandlers: Failed parsing event data")
		return
	}
	evt := ChannelUpdateEvent{ShardsID: shardID, NewChannel: channel}

	if oldChannel, ok := cache.GetChannel(channel.GetID()); ok {
		evt.OldChannel = oldChannel
	} else {
		evt.OldChannel = channel
	}

	if cache.Flags().Has(CacheFlagChannels) {
		cache.PutChannel(channel)
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *channelUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(ChannelUpdateEvent)))
}

/*****************************
 *   CHANNEL_DELETE Handler
 *****************************/

type channelDeleteHandlers struct {
	logger   Logger
	handlers []func(ChannelDeleteEvent)
}

func (h *channelDeleteHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	channel, err := UnmarshalChannel(data)
	if err != nil {
		h.logger.Error("channelDeleteHandlers: Failed parsing event data")
		return
	}
	evt := ChannelDeleteEvent{ShardsID: shardID, Channel: channel}

	if oldChannel, ok := cache.GetChannel(channel.GetID()); ok {
		evt.Channel = oldChannel
	}
	cache.DelChannel(channel.GetID())

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *channelDeleteHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(ChannelDeleteEvent)))
}

/*****************************
 *   CHANNEL_PINS_UPDATE Handler
 *****************************/

type channelPinsUpdateHandlers struct {
	logger   Logger
	handlers []func(ChannelPinsUpdateEvent)
}

func (h *channelPinsUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := ChannelPinsUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("channelPinsUpdateHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *channelPinsUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(ChannelPinsUpdateEvent)))
}

/*****************************
 *   THREAD_CREATE Handler
 *****************************/

type threadCreateHandlers struct {
	logger   Logger
	handlers []func(ThreadCreateEvent)
}

func (h *threadCreateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := ThreadCreateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.Thread); err != nil {
		h.logger.Error("threadCreateHandlers: Failed parsing event data")
		return
	}
	if cache.Flags().Has(CacheFlagChannels) {
		cache.PutChannel(&evt.Thread)
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *threadCreateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(ThreadCreateEvent)))
}

/*****************************
 *   THREAD_UPDATE Handler
 *****************************/

type threadUpdateHandlers struct {
	logger   Logger
	handlers []func(ThreadUpdateEvent)
}

func (h *threadUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := ThreadUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.NewThread); err != nil {
		h.logger.Error("threadUpdateHandlers: Failed parsing event data")
		return
	}

	if oldChannel, ok := cache.GetChannel(evt.NewThread.GetID()); ok {
		if oldThread, ok := oldChannel.(*ThreadChannel); ok {
			evt.OldThread = *oldThread
		}
	} else {
		evt.OldThread = evt.NewThread
	}

	if cache.Flags().Has(CacheFlagChannels) {
		cache.PutChannel(&evt.NewThread)
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *threadUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(ThreadUpdateEvent)))
}

/*****************************
 *   THREAD_DELETE Handler
 *****************************/

type threadDeleteHandlers struct {
	logger   Logger
	handlers []func(ThreadDeleteEvent)
}

func (h *threadDeleteHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := ThreadDeleteEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.Thread); err != nil {
		h.logger.Error("threadDeleteHandlers: Failed parsing event data")
		return
	}
	cache.DelChannel(evt.Thread.ID)
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *threadDeleteHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(ThreadDeleteEvent)))
}

/*****************************
 *   THREAD_LIST_SYNC Handler
 *****************************/

type threadListSyncHandlers struct {
	logger   Logger
	handlers []func(ThreadListSyncEvent)
}

func (h *threadListSyncHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := ThreadListSyncEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("threadListSyncHandlers: Failed parsing event data")
		return
	}
	if cache.Flags().Has(CacheFlagChannels) {
		for i := range evt.Threads {
			cache.PutChannel(&evt.Threads[i])
		}
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *threadListSyncHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(ThreadListSyncEvent)))
}

/*****************************
 *   THREAD_MEMBER_UPDATE Handler
 *****************************/

type threadMemberUpdateHandlers struct {
	logger   Logger
	handlers []func(ThreadMemberUpdateEvent)
}

func (h *threadMemberUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	var payload struct {
		GuildID Snowflake `json:"guild_id"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		h.logger.Error("threadMemberUpdateHandlers: Failed parsing event data")
		return
	}
	evt := ThreadMemberUpdateEvent{ShardsID: shardID, GuildID: payload.GuildID}
	if err := json.Unmarshal(data, &evt.Member); err != nil {
		h.logger.Error("threadMemberUpdateHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *threadMemberUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(ThreadMemberUpdateEvent)))
}

/*****************************
 *   THREAD_MEMBERS_UPDATE Handler
 *****************************/

type threadMembersUpdateHandlers struct {
	logger   Logger
	handlers []func(ThreadMembersUpdateEvent)
}

func (h *threadMembersUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := ThreadMembersUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("threadMembersUpdateHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *threadMembersUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(ThreadMembersUpdateEvent)))
}

/*****************************
 *   GUILD_UPDATE Handler
 *****************************/

type guildUpdateHandlers struct {
	logger   Logger
	handlers []func(GuildUpdateEvent)
}

func (h *guildUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.Guild); err != nil {
		h.logger.Error("guildUpdateHandlers: Failed parsing event data")
		return
	}
	if cache.Flags().Has(CacheFlagGuilds) {
		cache.PutGuild(evt.Guild)
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildUpdateEvent)))
}

/*****************************
 *   GUILD_DELETE Handler
 *****************************/

type guildDeleteHandlers struct {
	logger   Logger
	handlers []func(GuildDeleteEvent)
}

func (h *guildDeleteHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildDeleteEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.Guild); err != nil {
		h.logger.Error("guildDeleteHandlers: Failed parsing event data")
		return
	}
	if !evt.Guild.Unavailable {
		cache.DelGuild(evt.Guild.ID)
		cache.DelGuildMembers(evt.Guild.ID)
		cache.DelGuildChannels(evt.Guild.ID)
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildDeleteHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildDeleteEvent)))
}

/*****************************
 *   GUILD_BAN_ADD Handler
 *****************************/

type guildBanAddHandlers struct {
	logger   Logger
	handlers []func(GuildBanAddEvent)
}

func (h *guildBanAddHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildBanAddEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("guildBanAddHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildBanAddHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildBanAddEvent)))
}

/*****************************
 *   GUILD_BAN_REMOVE Handler
 *****************************/

type guildBanRemoveHandlers struct {
	logger   Logger
	handlers []func(GuildBanRemoveEvent)
}

func (h *guildBanRemoveHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildBanRemoveEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("guildBanRemoveHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildBanRemoveHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildBanRemoveEvent)))
}

/*****************************
 *   GUILD_EMOJIS_UPDATE Handler
 *****************************/

type guildEmojisUpdateHandlers struct {
	logger   Logger
	handlers []func(GuildEmojisUpdateEvent)
}

func (h *guildEmojisUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildEmojisUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("guildEmojisUpdateHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildEmojisUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildEmojisUpdateEvent)))
}

/*****************************
 *   GUILD_STICKERS_UPDATE Handler
 *****************************/

type guildStickersUpdateHandlers struct {
	logger   Logger
	handlers []func(GuildStickersUpdateEvent)
}

func (h *guildStickersUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildStickersUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("guildStickersUpdateHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildStickersUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildStickersUpdateEvent)))
}

/*****************************
 *   GUILD_INTEGRATIONS_UPDATE Handler
 *****************************/

type guildIntegrationsUpdateHandlers struct {
	logger   Logger
	handlers []func(GuildIntegrationsUpdateEvent)
}

func (h *guildIntegrationsUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildIntegrationsUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("guildIntegrationsUpdateHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildIntegrationsUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildIntegrationsUpdateEvent)))
}

/*****************************
 *   GUILD_MEMBER_ADD Handler
 *****************************/

type guildMemberAddHandlers struct {
	logger   Logger
	handlers []func(GuildMemberAddEvent)
}

func (h *guildMemberAddHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildMemberAddEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.Member); err != nil {
		h.logger.Error("guildMemberAddHandlers: Failed parsing event data")
		return
	}
	if cache.Flags().Has(CacheFlagMembers) {
		cache.PutMember(evt.Member)
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildMemberAddHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildMemberAddEvent)))
}

/*****************************
 *   GUILD_MEMBER_REMOVE Handler
 *****************************/

type guildMemberRemoveHandlers struct {
	logger   Logger
	handlers []func(GuildMemberRemoveEvent)
}

func (h *guildMemberRemoveHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildMemberRemoveEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("guildMemberRemoveHandlers: Failed parsing event data")
		return
	}
	cache.DelMember(evt.GuildID, evt.User.ID)
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildMemberRemoveHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildMemberRemoveEvent)))
}

/*****************************
 *   GUILD_MEMBER_UPDATE Handler
 *****************************/

type guildMemberUpdateHandlers struct {
	logger   Logger
	handlers []func(GuildMemberUpdateEvent)
}

func (h *guildMemberUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildMemberUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.NewMember); err != nil {
		h.logger.Error("guildMemberUpdateHandlers: Failed parsing event data")
		return
	}
	evt.GuildID = evt.NewMember.GuildID

	if oldMember, ok := cache.GetMember(evt.GuildID, evt.NewMember.User.ID); ok {
		evt.OldMember = oldMember
	} else {
		evt.OldMember = evt.NewMember
	}

	if cache.Flags().Has(CacheFlagMembers) {
		cache.PutMember(evt.NewMember)
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildMemberUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildMemberUpdateEvent)))
}

/*****************************
 *   GUILD_MEMBERS_CHUNK Handler
 *****************************/

type guildMembersChunkHandlers struct {
	logger   Logger
	handlers []func(GuildMembersChunkEvent)
}

func (h *guildMembersChunkHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildMembersChunkEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("guildMembersChunkHandlers: Failed parsing event data")
		return
	}
	if cache.Flags().Has(CacheFlagMembers) {
		for i := range evt.Members {
			cache.PutMember(evt.Members[i])
		}
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildMembersChunkHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildMembersChunkEvent)))
}

/*****************************
 *   GUILD_ROLE_CREATE Handler
 *****************************/

type guildRoleCreateHandlers struct {
	logger   Logger
	handlers []func(GuildRoleCreateEvent)
}

func (h *guildRoleCreateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildRoleCreateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("guildRoleCreateHandlers: Failed parsing event data")
		return
	}
	if cache.Flags().Has(CacheFlagRoles) {
		cache.PutRole(evt.Role)
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildRoleCreateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildRoleCreateEvent)))
}

/*****************************
 *   GUILD_ROLE_UPDATE Handler
 *****************************/

type guildRoleUpdateHandlers struct {
	logger   Logger
	handlers []func(GuildRoleUpdateEvent)
}

func (h *guildRoleUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	var payload struct {
		GuildID Snowflake `json:"guild_id"`
		Role    Role      `json:"role"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		h.logger.Error("guildRoleUpdateHandlers: Failed parsing event data")
		return
	}
	evt := GuildRoleUpdateEvent{ShardsID: shardID, GuildID: payload.GuildID, NewRole: payload.Role}

	if oldRole, ok := cache.GetGuildRoles(payload.GuildID); ok {
		if role, ok := oldRole[payload.Role.ID]; ok {
			evt.OldRole = role
		} else {
			evt.OldRole = payload.Role
		}
	} else {
		evt.OldRole = payload.Role
	}

	if cache.Flags().Has(CacheFlagRoles) {
		cache.PutRole(payload.Role)
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildRoleUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildRoleUpdateEvent)))
}

/*****************************
 *   GUILD_ROLE_DELETE Handler
 *****************************/

type guildRoleDeleteHandlers struct {
	logger   Logger
	handlers []func(GuildRoleDeleteEvent)
}

func (h *guildRoleDeleteHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildRoleDeleteEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("guildRoleDeleteHandlers: Failed parsing event data")
		return
	}
	cache.DelRole(evt.GuildID, evt.RoleID)
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildRoleDeleteHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildRoleDeleteEvent)))
}

/*****************************
 *   GUILD_SCHEDULED_EVENT_CREATE Handler
 *****************************/

type guildScheduledEventCreateHandlers struct {
	logger   Logger
	handlers []func(GuildScheduledEventCreateEvent)
}

func (h *guildScheduledEventCreateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildScheduledEventCreateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.Event); err != nil {
		h.logger.Error("guildScheduledEventCreateHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildScheduledEventCreateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildScheduledEventCreateEvent)))
}

/*****************************
 *   GUILD_SCHEDULED_EVENT_UPDATE Handler
 *****************************/

type guildScheduledEventUpdateHandlers struct {
	logger   Logger
	handlers []func(GuildScheduledEventUpdateEvent)
}

func (h *guildScheduledEventUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildScheduledEventUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.Event); err != nil {
		h.logger.Error("guildScheduledEventUpdateHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildScheduledEventUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildScheduledEventUpdateEvent)))
}

/*****************************
 *   GUILD_SCHEDULED_EVENT_DELETE Handler
 *****************************/

type guildScheduledEventDeleteHandlers struct {
	logger   Logger
	handlers []func(GuildScheduledEventDeleteEvent)
}

func (h *guildScheduledEventDeleteHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildScheduledEventDeleteEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.Event); err != nil {
		h.logger.Error("guildScheduledEventDeleteHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildScheduledEventDeleteHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildScheduledEventDeleteEvent)))
}

/*****************************
 *   GUILD_SCHEDULED_EVENT_USER_ADD Handler
 *****************************/

type guildScheduledEventUserAddHandlers struct {
	logger   Logger
	handlers []func(GuildScheduledEventUserAddEvent)
}

func (h *guildScheduledEventUserAddHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildScheduledEventUserAddEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("guildScheduledEventUserAddHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildScheduledEventUserAddHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildScheduledEventUserAddEvent)))
}

/*****************************
 *   GUILD_SCHEDULED_EVENT_USER_REMOVE Handler
 *****************************/

type guildScheduledEventUserRemoveHandlers struct {
	logger   Logger
	handlers []func(GuildScheduledEventUserRemoveEvent)
}

func (h *guildScheduledEventUserRemoveHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildScheduledEventUserRemoveEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("guildScheduledEventUserRemoveHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildScheduledEventUserRemoveHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildScheduledEventUserRemoveEvent)))
}

/*****************************
 *   INTEGRATION_CREATE Handler
 *****************************/

type integrationCreateHandlers struct {
	logger   Logger
	handlers []func(IntegrationCreateEvent)
}

func (h *integrationCreateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := IntegrationCreateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.Integration); err != nil {
		h.logger.Error("integrationCreateHandlers: Failed parsing event data")
		return
	}
	var guildField struct {
		GuildID Snowflake `json:"guild_id"`
	}
	json.Unmarshal(data, &guildField)
	evt.GuildID = guildField.GuildID
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *integrationCreateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(IntegrationCreateEvent)))
}

/*****************************
 *   INTEGRATION_UPDATE Handler
 *****************************/

type integrationUpdateHandlers struct {
	logger   Logger
	handlers []func(IntegrationUpdateEvent)
}

func (h *integrationUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := IntegrationUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.Integration); err != nil {
		h.logger.Error("integrationUpdateHandlers: Failed parsing event data")
		return
	}
	var guildField struct {
		GuildID Snowflake `json:"guild_id"`
	}
	json.Unmarshal(data, &guildField)
	evt.GuildID = guildField.GuildID
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *integrationUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(IntegrationUpdateEvent)))
}

/*****************************
 *   INTEGRATION_DELETE Handler
 *****************************/

type integrationDeleteHandlers struct {
	logger   Logger
	handlers []func(IntegrationDeleteEvent)
}

func (h *integrationDeleteHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := IntegrationDeleteEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("integrationDeleteHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *integrationDeleteHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(IntegrationDeleteEvent)))
}

/*****************************
 *   INVITE_CREATE Handler
 *****************************/

type inviteCreateHandlers struct {
	logger   Logger
	handlers []func(InviteCreateEvent)
}

func (h *inviteCreateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := InviteCreateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("inviteCreateHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *inviteCreateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(InviteCreateEvent)))
}

/*****************************
 *   INVITE_DELETE Handler
 *****************************/

type inviteDeleteHandlers struct {
	logger   Logger
	handlers []func(InviteDeleteEvent)
}

func (h *inviteDeleteHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := InviteDeleteEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("inviteDeleteHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *inviteDeleteHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(InviteDeleteEvent)))
}

/*****************************
 *   MESSAGE_DELETE_BULK Handler
 *****************************/

type messageDeleteBulkHandlers struct {
	logger   Logger
	handlers []func(MessageDeleteBulkEvent)
}

func (h *messageDeleteBulkHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := MessageDeleteBulkEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("messageDeleteBulkHandlers: Failed parsing event data")
		return
	}
	for _, id := range evt.MessageIDs {
		cache.DelMessage(id)
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *messageDeleteBulkHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(MessageDeleteBulkEvent)))
}

/*****************************
 *   MESSAGE_REACTION_ADD Handler
 *****************************/

type messageReactionAddHandlers struct {
	logger   Logger
	handlers []func(MessageReactionAddEvent)
}

func (h *messageReactionAddHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := MessageReactionAddEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("messageReactionAddHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *messageReactionAddHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(MessageReactionAddEvent)))
}

/*****************************
 *   MESSAGE_REACTION_REMOVE Handler
 *****************************/

type messageReactionRemoveHandlers struct {
	logger   Logger
	handlers []func(MessageReactionRemoveEvent)
}

func (h *messageReactionRemoveHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := MessageReactionRemoveEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("messageReactionRemoveHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *messageReactionRemoveHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(MessageReactionRemoveEvent)))
}

/*****************************
 *   MESSAGE_REACTION_REMOVE_ALL Handler
 *****************************/

type messageReactionRemoveAllHandlers struct {
	logger   Logger
	handlers []func(MessageReactionRemoveAllEvent)
}

func (h *messageReactionRemoveAllHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := MessageReactionRemoveAllEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("messageReactionRemoveAllHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *messageReactionRemoveAllHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(MessageReactionRemoveAllEvent)))
}

/*****************************
 *   MESSAGE_REACTION_REMOVE_EMOJI Handler
 *****************************/

type messageReactionRemoveEmojiHandlers struct {
	logger   Logger
	handlers []func(MessageReactionRemoveEmojiEvent)
}

func (h *messageReactionRemoveEmojiHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := MessageReactionRemoveEmojiEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("messageReactionRemoveEmojiHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *messageReactionRemoveEmojiHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(MessageReactionRemoveEmojiEvent)))
}

/*****************************
 *   PRESENCE_UPDATE Handler
 *****************************/

type presenceUpdateHandlers struct {
	logger   Logger
	handlers []func(PresenceUpdateEvent)
}

func (h *presenceUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := PresenceUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.Presence); err != nil {
		h.logger.Error("presenceUpdateHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *presenceUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(PresenceUpdateEvent)))
}

/*****************************
 *   STAGE_INSTANCE_CREATE Handler
 *****************************/

type stageInstanceCreateHandlers struct {
	logger   Logger
	handlers []func(StageInstanceCreateEvent)
}

func (h *stageInstanceCreateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := StageInstanceCreateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.Instance); err != nil {
		h.logger.Error("stageInstanceCreateHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *stageInstanceCreateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(StageInstanceCreateEvent)))
}

/*****************************
 *   STAGE_INSTANCE_UPDATE Handler
 *****************************/

type stageInstanceUpdateHandlers struct {
	logger   Logger
	handlers []func(StageInstanceUpdateEvent)
}

func (h *stageInstanceUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := StageInstanceUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.Instance); err != nil {
		h.logger.Error("stageInstanceUpdateHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *stageInstanceUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(StageInstanceUpdateEvent)))
}

/*****************************
 *   STAGE_INSTANCE_DELETE Handler
 *****************************/

type stageInstanceDeleteHandlers struct {
	logger   Logger
	handlers []func(StageInstanceDeleteEvent)
}

func (h *stageInstanceDeleteHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := StageInstanceDeleteEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.Instance); err != nil {
		h.logger.Error("stageInstanceDeleteHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *stageInstanceDeleteHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(StageInstanceDeleteEvent)))
}

/*****************************
 *   TYPING_START Handler
 *****************************/

type typingStartHandlers struct {
	logger   Logger
	handlers []func(TypingStartEvent)
}

func (h *typingStartHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := TypingStartEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("typingStartHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *typingStartHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(TypingStartEvent)))
}

/*****************************
 *   USER_UPDATE Handler
 *****************************/

type userUpdateHandlers struct {
	logger   Logger
	handlers []func(UserUpdateEvent)
}

func (h *userUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := UserUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.User); err != nil {
		h.logger.Error("userUpdateHandlers: Failed parsing event data")
		return
	}
	if cache.Flags().Has(CacheFlagUsers) {
		cache.PutUser(evt.User)
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *userUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(UserUpdateEvent)))
}

/*****************************
 *   VOICE_SERVER_UPDATE Handler
 *****************************/

type voiceServerUpdateHandlers struct {
	logger   Logger
	handlers []func(VoiceServerUpdateEvent)
}

func (h *voiceServerUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := VoiceServerUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("voiceServerUpdateHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *voiceServerUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(VoiceServerUpdateEvent)))
}

/*****************************
 *   WEBHOOKS_UPDATE Handler
 *****************************/

type webhooksUpdateHandlers struct {
	logger   Logger
	handlers []func(WebhooksUpdateEvent)
}

func (h *webhooksUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := WebhooksUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("webhooksUpdateHandlers: Failed parsing event data")
		return
	}
	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *webhooksUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(WebhooksUpdateEvent)))
}
