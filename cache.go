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

import "sync"

type CacheFlags int

const (
	CacheFlagUsers CacheFlags = 1 << iota
	CacheFlagGuilds
	CacheFlagMembers
	CacheFlagThreadMembers
	CacheFlagMessages
	CacheFlagChannels
	CacheFlagRoles
	CacheFlagVoiceStates

	CacheFlagsNone CacheFlags = 0

	CacheFlagsAll = CacheFlagUsers | CacheFlagGuilds | CacheFlagMembers | CacheFlagThreadMembers |
		CacheFlagMessages | CacheFlagChannels | CacheFlagRoles | CacheFlagVoiceStates
)

func (f CacheFlags) Has(bits ...CacheFlags) bool {
	return BitFieldHas(f, bits...)
}

type SnowflakePairKey struct {
	A Snowflake
	B Snowflake
}

type CacheManager interface {
	Flags() CacheFlags
	SetFlags(flags ...CacheFlags)

	GetUser(userID Snowflake) (User, bool)
	GetGuild(guildID Snowflake) (Guild, bool)
	GetMember(guildID, userID Snowflake) (Member, bool)
	GetChannel(channelID Snowflake) (Channel, bool)
	GetMessage(messageID Snowflake) (Message, bool)
	GetVoiceState(guildID, userID Snowflake) (VoiceState, bool)
	GetGuildChannels(guildID Snowflake) (map[Snowflake]GuildChannel, bool)
	GetGuildMembers(guildID Snowflake) (map[Snowflake]Member, bool)
	GetGuildVoiceStates(guildID Snowflake) (map[Snowflake]VoiceState, bool)
	GetGuildRoles(guildID Snowflake) (map[Snowflake]Role, bool)

	HasUser(userID Snowflake) bool
	HasGuild(guildID Snowflake) bool
	HasMember(guildID, userID Snowflake) bool
	HasChannel(channelID Snowflake) bool
	HasMessage(messageID Snowflake) bool
	HasVoiceState(guildID, userID Snowflake) bool
	HasGuildChannels(guildID Snowflake) bool
	HasGuildMembers(guildID Snowflake) bool
	HasGuildVoiceStates(guildID Snowflake) bool
	HasGuildRoles(guildID Snowflake) bool

	CountUsers() int
	CountGuilds() int
	CountMembers() int
	CountChannels() int
	CountMessages() int
	CountVoiceStates() int
	CountRoles() int
	CountGuildChannels(guildID Snowflake) int
	CountGuildMembers(guildID Snowflake) int
	CountGuildRoles(guildID Snowflake) int

	PutUser(user User)
	PutGuild(guild Guild)
	PutMember(member Member)
	PutChannel(channel Channel)
	PutMessage(message Message)
	PutVoiceState(voiceState VoiceState)
	PutRole(role Role)

	DelUser(userID Snowflake) bool
	DelGuild(guildID Snowflake) bool
	DelMember(guildID, userID Snowflake) bool
	DelChannel(channelID Snowflake) bool
	DelMessage(messageID Snowflake) bool
	DelVoiceState(guildID, userID Snowflake) bool
	DelGuildChannels(guildID Snowflake) bool
	DelGuildMembers(guildID Snowflake) bool
	DelRole(guildID, roleID Snowflake) bool
}

// DefaultCache is the default in-memory CacheManager implementation.
//
// Each resource kind is stored in its own 256-way sharded concurrent map
// (ShardMap) rather than behind a single mutex, so lookups and writes for
// unrelated keys do not contend with each other under gateway event bursts.
type DefaultCache struct {
	flags CacheFlags

	usersCache       *ShardMap[Snowflake, User]
	guildsCache      *ShardMap[Snowflake, Guild]
	membersCache     *ShardMap[SnowflakePairKey, Member]
	channelsCache    *ShardMap[Snowflake, Channel]
	messagesCache    *ShardMap[Snowflake, Message]
	voiceStatesCache *ShardMap[SnowflakePairKey, VoiceState]
	rolesCache       *ShardMap[Snowflake, Role]

	// Index: guildID -> set[userID]
	guildToMemberIDs   map[Snowflake]map[Snowflake]struct{}
	guildToMemberIDsMu sync.RWMutex

	// Index: guildID -> map[channelID]
	guildToChannelIDs   map[Snowflake]map[Snowflake]struct{}
	guildToChannelIDsMu sync.RWMutex

	// Index: guildID -> map[userID]
	guildToVoiceStateUserIDs   map[Snowflake]map[Snowflake]struct{}
	guildToVoiceStateUserIDsMu sync.RWMutex

	// Index: guildID -> map[roleID]
	guildToRoleIDs   map[Snowflake]map[Snowflake]struct{}
	guildToRoleIDsMu sync.RWMutex
}

func NewDefaultCache(flags CacheFlags) CacheManager {
	return &DefaultCache{
		flags:                    flags,
		usersCache:               NewSnowflakeShardMap[User](),
		guildsCache:              NewSnowflakeShardMap[Guild](),
		membersCache:             NewSnowflakePairShardMap[Member](),
		channelsCache:            NewSnowflakeShardMap[Channel](),
		messagesCache:            NewSnowflakeShardMap[Message](),
		voiceStatesCache:         NewSnowflakePairShardMap[VoiceState](),
		rolesCache:               NewSnowflakeShardMap[Role](),
		guildToMemberIDs:         make(map[Snowflake]map[Snowflake]struct{}),
		guildToChannelIDs:        make(map[Snowflake]map[Snowflake]struct{}),
		guildToVoiceStateUserIDs: make(map[Snowflake]map[Snowflake]struct{}),
		guildToRoleIDs:           make(map[Snowflake]map[Snowflake]struct{}),
	}
}

func (c *DefaultCache) Flags() CacheFlags {
	return c.flags
}

func (c *DefaultCache) SetFlags(flags ...CacheFlags) {
	c.flags = CacheFlagsNone
	for _, f := range flags {
		c.flags |= f
	}
}

func (c *DefaultCache) GetUser(userID Snowflake) (User, bool) {
	return c.usersCache.Get(userID)
}

func (c *DefaultCache) GetGuild(guildID Snowflake) (Guild, bool) {
	return c.guildsCache.Get(guildID)
}

func (c *DefaultCache) GetMember(guildID, userID Snowflake) (Member, bool) {
	return c.membersCache.Get(SnowflakePairKey{A: guildID, B: userID})
}

func (c *DefaultCache) GetChannel(channelID Snowflake) (Channel, bool) {
	return c.channelsCache.Get(channelID)
}

func (c *DefaultCache) GetMessage(messageID Snowflake) (Message, bool) {
	return c.messagesCache.Get(messageID)
}

func (c *DefaultCache) GetVoiceState(guildID, userID Snowflake) (VoiceState, bool) {
	return c.voiceStatesCache.Get(SnowflakePairKey{A: guildID, B: userID})
}

func (c *DefaultCache) GetGuildChannels(guildID Snowflake) (map[Snowflake]GuildChannel, bool) {
	c.guildToChannelIDsMu.RLock()
	set, ok := c.guildToChannelIDs[guildID]
	c.guildToChannelIDsMu.RUnlock()
	if !ok {
		return nil, false
	}
	res := make(map[Snowflake]GuildChannel, len(set))
	for channelID := range set {
		if channel, exists := c.channelsCache.Get(channelID); exists {
			res[channelID] = channel.(GuildChannel)
		}
	}
	return res, true
}

func (c *DefaultCache) GetGuildMembers(guildID Snowflake) (map[Snowflake]Member, bool) {
	c.guildToMemberIDsMu.RLock()
	set, ok := c.guildToMemberIDs[guildID]
	c.guildToMemberIDsMu.RUnlock()
	if !ok {
		return nil, false
	}
	res := make(map[Snowflake]Member, len(set))
	for userID := range set {
		if member, exists := c.membersCache.Get(SnowflakePairKey{A: guildID, B: userID}); exists {
			res[userID] = member
		}
	}
	return res, true
}

func (c *DefaultCache) GetGuildVoiceStates(guildID Snowflake) (map[Snowflake]VoiceState, bool) {
	c.guildToVoiceStateUserIDsMu.RLock()
	set, ok := c.guildToVoiceStateUserIDs[guildID]
	c.guildToVoiceStateUserIDsMu.RUnlock()
	if !ok {
		return nil, false
	}
	res := make(map[Snowflake]VoiceState, len(set))
	for userID := range set {
		if voiceState, exists := c.voiceStatesCache.Get(SnowflakePairKey{A: guildID, B: userID}); exists {
			res[userID] = voiceState
		}
	}
	return res, true
}

func (c *DefaultCache) GetGuildRoles(guildID Snowflake) (map[Snowflake]Role, bool) {
	c.guildToRoleIDsMu.RLock()
	set, ok := c.guildToRoleIDs[guildID]
	c.guildToRoleIDsMu.RUnlock()
	if !ok {
		return nil, false
	}
	res := make(map[Snowflake]Role, len(set))
	for roleID := range set {
		if role, exists := c.rolesCache.Get(roleID); exists {
			res[roleID] = role
		}
	}
	return res, true
}

func (c *DefaultCache) HasUser(userID Snowflake) bool {
	return c.flags.Has(CacheFlagUsers) && c.usersCache.Has(userID)
}

func (c *DefaultCache) HasGuild(guildID Snowflake) bool {
	return c.flags.Has(CacheFlagGuilds) && c.guildsCache.Has(guildID)
}

func (c *DefaultCache) HasMember(guildID, userID Snowflake) bool {
	return c.flags.Has(CacheFlagMembers) && c.membersCache.Has(SnowflakePairKey{A: guildID, B: userID})
}

func (c *DefaultCache) HasChannel(channelID Snowflake) bool {
	return c.flags.Has(CacheFlagChannels) && c.channelsCache.Has(channelID)
}

func (c *DefaultCache) HasMessage(messageID Snowflake) bool {
	return c.flags.Has(CacheFlagMessages) && c.messagesCache.Has(messageID)
}

func (c *DefaultCache) HasVoiceState(guildID, userID Snowflake) bool {
	return c.flags.Has(CacheFlagVoiceStates) && c.voiceStatesCache.Has(SnowflakePairKey{A: guildID, B: userID})
}

func (c *DefaultCache) HasGuildChannels(guildID Snowflake) bool {
	if !c.flags.Has(CacheFlagChannels) {
		return false
	}
	c.guildToChannelIDsMu.RLock()
	_, exists := c.guildToChannelIDs[guildID]
	c.guildToChannelIDsMu.RUnlock()
	return exists
}

func (c *DefaultCache) HasGuildMembers(guildID Snowflake) bool {
	if !c.flags.Has(CacheFlagMembers) {
		return false
	}
	c.guildToMemberIDsMu.RLock()
	_, exists := c.guildToMemberIDs[guildID]
	c.guildToMemberIDsMu.RUnlock()
	return exists
}

func (c *DefaultCache) HasGuildVoiceStates(guildID Snowflake) bool {
	if !c.flags.Has(CacheFlagVoiceStates) {
		return false
	}
	c.guildToVoiceStateUserIDsMu.RLock()
	_, exists := c.guildToVoiceStateUserIDs[guildID]
	c.guildToVoiceStateUserIDsMu.RUnlock()
	return exists
}

func (c *DefaultCache) HasGuildRoles(guildID Snowflake) bool {
	if !c.flags.Has(CacheFlagRoles) {
		return false
	}
	c.guildToRoleIDsMu.RLock()
	_, exists := c.guildToRoleIDs[guildID]
	c.guildToRoleIDsMu.RUnlock()
	return exists
}

func (c *DefaultCache) CountUsers() int        { return c.usersCache.Len() }
func (c *DefaultCache) CountGuilds() int       { return c.guildsCache.Len() }
func (c *DefaultCache) CountMembers() int      { return c.membersCache.Len() }
func (c *DefaultCache) CountChannels() int     { return c.channelsCache.Len() }
func (c *DefaultCache) CountMessages() int     { return c.messagesCache.Len() }
func (c *DefaultCache) CountVoiceStates() int  { return c.voiceStatesCache.Len() }
func (c *DefaultCache) CountRoles() int        { return c.rolesCache.Len() }

func (c *DefaultCache) CountGuildChannels(guildID Snowflake) int {
	c.guildToChannelIDsMu.RLock()
	defer c.guildToChannelIDsMu.RUnlock()
	return len(c.guildToChannelIDs[guildID])
}

func (c *DefaultCache) CountGuildMembers(guildID Snowflake) int {
	c.guildToMemberIDsMu.RLock()
	defer c.guildToMemberIDsMu.RUnlock()
	return len(c.guildToMemberIDs[guildID])
}

func (c *DefaultCache) CountGuildRoles(guildID Snowflake) int {
	c.guildToRoleIDsMu.RLock()
	defer c.guildToRoleIDsMu.RUnlock()
	return len(c.guildToRoleIDs[guildID])
}

func (c *DefaultCache) PutUser(user User) {
	if !c.flags.Has(CacheFlagUsers) {
		return
	}
	c.usersCache.Set(user.ID, user)
}

func (c *DefaultCache) PutGuild(guild Guild) {
	if !c.flags.Has(CacheFlagGuilds) {
		return
	}
	c.guildsCache.Set(guild.ID, guild)
}

func (c *DefaultCache) PutMember(member Member) {
	if !c.flags.Has(CacheFlagMembers) {
		return
	}
	userID := member.User.ID
	guildID := member.GuildID
	c.membersCache.Set(SnowflakePairKey{A: guildID, B: userID}, member)
	c.guildToMemberIDsMu.Lock()
	if _, exists := c.guildToMemberIDs[guildID]; !exists {
		c.guildToMemberIDs[guildID] = make(map[Snowflake]struct{})
	}
	c.guildToMemberIDs[guildID][userID] = struct{}{}
	c.guildToMemberIDsMu.Unlock()
}

func (c *DefaultCache) PutChannel(channel Channel) {
	if !c.flags.Has(CacheFlagChannels) {
		return
	}
	channelID := channel.GetID()
	c.channelsCache.Set(channelID, channel)
	if guildChannel, ok := channel.(GuildChannel); ok {
		guildID := guildChannel.GetGuildID()
		c.guildToChannelIDsMu.Lock()
		if _, exists := c.guildToChannelIDs[guildID]; !exists {
			c.guildToChannelIDs[guildID] = make(map[Snowflake]struct{})
		}
		c.guildToChannelIDs[guildID][channelID] = struct{}{}
		c.guildToChannelIDsMu.Unlock()
	}
}

func (c *DefaultCache) PutMessage(message Message) {
	if !c.flags.Has(CacheFlagMessages) {
		return
	}
	c.messagesCache.Set(message.ID, message)
}

func (c *DefaultCache) PutVoiceState(voiceState VoiceState) {
	if !c.flags.Has(CacheFlagVoiceStates) {
		return
	}
	guildID := voiceState.GuildID
	userID := voiceState.UserID
	c.voiceStatesCache.Set(SnowflakePairKey{A: guildID, B: userID}, voiceState)
	c.guildToVoiceStateUserIDsMu.Lock()
	if _, exists := c.guildToVoiceStateUserIDs[guildID]; !exists {
		c.guildToVoiceStateUserIDs[guildID] = make(map[Snowflake]struct{})
	}
	c.guildToVoiceStateUserIDs[guildID][userID] = struct{}{}
	c.guildToVoiceStateUserIDsMu.Unlock()
}

func (c *DefaultCache) PutRole(role Role) {
	if !c.flags.Has(CacheFlagRoles) {
		return
	}
	guildID := role.GuildID
	roleID := role.ID
	c.rolesCache.Set(roleID, role)
	c.guildToRoleIDsMu.Lock()
	if _, exists := c.guildToRoleIDs[guildID]; !exists {
		c.guildToRoleIDs[guildID] = make(map[Snowflake]struct{})
	}
	c.guildToRoleIDs[guildID][roleID] = struct{}{}
	c.guildToRoleIDsMu.Unlock()
}

func (c *DefaultCache) DelUser(userID Snowflake) bool {
	return c.usersCache.Delete(userID)
}

func (c *DefaultCache) DelGuild(guildID Snowflake) bool {
	return c.guildsCache.Delete(guildID)
}

func (c *DefaultCache) DelMember(guildID, userID Snowflake) bool {
	ok := c.membersCache.Delete(SnowflakePairKey{A: guildID, B: userID})
	if ok {
		c.guildToMemberIDsMu.Lock()
		if m, has := c.guildToMemberIDs[guildID]; has {
			delete(m, userID)
			if len(m) == 0 {
				delete(c.guildToMemberIDs, guildID)
			}
		}
		c.guildToMemberIDsMu.Unlock()
	}
	return ok
}

func (c *DefaultCache) DelChannel(channelID Snowflake) bool {
	channel, ok := c.channelsCache.Get(channelID)
	if !ok {
		return false
	}
	c.channelsCache.Delete(channelID)
	if guildChannel, ok := channel.(GuildChannel); ok {
		c.guildToChannelIDsMu.Lock()
		if m, has := c.guildToChannelIDs[guildChannel.GetGuildID()]; has {
			delete(m, channelID)
			if len(m) == 0 {
				delete(c.guildToChannelIDs, guildChannel.GetGuildID())
			}
		}
		c.guildToChannelIDsMu.Unlock()
	}
	return true
}

func (c *DefaultCache) DelMessage(messageID Snowflake) bool {
	return c.messagesCache.Delete(messageID)
}

func (c *DefaultCache) DelVoiceState(guildID, userID Snowflake) bool {
	ok := c.voiceStatesCache.Delete(SnowflakePairKey{A: guildID, B: userID})
	if ok {
		c.guildToVoiceStateUserIDsMu.Lock()
		if m, has := c.guildToVoiceStateUserIDs[guildID]; has {
			delete(m, userID)
			if len(m) == 0 {
				delete(c.guildToVoiceStateUserIDs, guildID)
			}
		}
		c.guildToVoiceStateUserIDsMu.Unlock()
	}
	return ok
}

func (c *DefaultCache) DelRole(guildID, roleID Snowflake) bool {
	ok := c.rolesCache.Delete(roleID)
	if ok {
		c.guildToRoleIDsMu.Lock()
		if m, has := c.guildToRoleIDs[guildID]; has {
			delete(m, roleID)
			if len(m) == 0 {
				delete(c.guildToRoleIDs, guildID)
			}
		}
		c.guildToRoleIDsMu.Unlock()
	}
	return ok
}

func (c *DefaultCache) DelGuildChannels(guildID Snowflake) bool {
	c.guildToChannelIDsMu.Lock()
	set, ok := c.guildToChannelIDs[guildID]
	if ok {
		delete(c.guildToChannelIDs, guildID)
	}
	c.guildToChannelIDsMu.Unlock()
	if ok {
		for channelID := range set {
			c.channelsCache.Delete(channelID)
		}
	}
	return ok
}

func (c *DefaultCache) DelGuildMembers(guildID Snowflake) bool {
	c.guildToMemberIDsMu.Lock()
	set, ok := c.guildToMemberIDs[guildID]
	if ok {
		delete(c.guildToMemberIDs, guildID)
	}
	c.guildToMemberIDsMu.Unlock()
	if ok {
		for userID := range set {
			c.membersCache.Delete(SnowflakePairKey{A: guildID, B: userID})
		}
	}
	return ok
}
