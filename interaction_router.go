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
	"hash/fnv"
	"math"
	"sync"
)

/*****************************
 *    Registerable          *
 *****************************/

// Registerable is implemented by anything that can be installed on a Bot
// as an application command: slash commands, user commands, message
// commands, and the sub-command/sub-command-group handlers nested below
// a slash command.
//
// A handler with a non-empty SubHandlers list must return an empty
// Options list, and vice versa; declaring both is a programming error
// caught at registration time (see registerCommand).
type Registerable interface {
	// Name is the command's (or sub-command's) invocation name.
	Name() string

	// Description is shown to the user in Discord's command picker.
	Description() string

	// CommandType distinguishes slash/user/message commands. Sub-handlers
	// reuse ApplicationCommandTypeChatInput; their position in the tree
	// (leaf vs group) is inferred from whether they themselves have
	// SubHandlers.
	CommandType() ApplicationCommandType

	// GuildID scopes the command to one guild, or 0 for a global command.
	GuildID() Snowflake

	// Options lists this handler's parameters. Must be empty if
	// SubHandlers is non-empty.
	Options() []ApplicationCommandOption

	// SubHandlers lists the sub-commands or sub-command-groups nested
	// beneath this handler. Must be empty if Options is non-empty.
	SubHandlers() []Registerable

	// Handle runs the command. options is the narrowed option list for
	// this handler: the interaction's top-level options for a leaf
	// command with no sub-routing, or the matched sub-route's nested
	// options when this handler was reached by descent.
	Handle(ctx Context, interaction Interaction, options []ChatInputInteractionCommandOption)
}

/*****************************
 *    interactionRouter     *
 *****************************/

// interactionRouter dispatches INTERACTION_CREATE events to the handler
// registered for the interaction's command id, descending into nested
// sub-command handlers as needed.
//
// It is itself installed as an INTERACTION_CREATE subscriber via
// dispatcher.OnInteractionCreate(router.handle).
type interactionRouter struct {
	mu       sync.RWMutex
	logger   Logger
	ctx      Context
	commands map[Snowflake]Registerable
}

func newInteractionRouter(logger Logger, ctx Context) *interactionRouter {
	return &interactionRouter{
		logger:   logger,
		ctx:      ctx,
		commands: make(map[Snowflake]Registerable),
	}
}

// bind associates a command id with the handler that owns it.
func (r *interactionRouter) bind(id Snowflake, handler Registerable) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands[id] = handler
}

// handle is the dispatcher-facing entry point.
func (r *interactionRouter) handle(evt InteractionCreateEvent) {
	id, options, ok := interactionCommandData(evt.Interaction)
	if !ok {
		return
	}

	r.mu.RLock()
	handler, ok := r.commands[id]
	r.mu.RUnlock()
	if !ok {
		if r.ctx.Settings != nil && r.ctx.Settings.Debug {
			r.logger.Debug("interactionRouter: no handler registered for command id " + id.String())
		}
		return
	}

	r.dispatch(handler, evt.Interaction, options)
}

// dispatch runs handler, recursively descending into a matched
// sub-handler when handler declares any.
func (r *interactionRouter) dispatch(handler Registerable, interaction Interaction, options []ChatInputInteractionCommandOption) {
	subs := handler.SubHandlers()
	if len(subs) == 0 {
		handler.Handle(r.ctx, interaction, options)
		return
	}

	var route *ChatInputInteractionCommandOption
	for i := range options {
		t := options[i].Type
		if t == ApplicationCommandOptionTypeSubCommand || t == ApplicationCommandOptionTypeSubCommandGroup {
			if route != nil {
				programmingError("command " + handler.Name() + ": more than one sub-route option at this level")
			}
			route = &options[i]
		}
	}
	if route == nil {
		programmingError("command " + handler.Name() + ": declares sub-handlers but no sub-route option was sent")
	}

	for _, sub := range subs {
		if sub.Name() == route.Name {
			r.dispatch(sub, interaction, route.Options)
			return
		}
	}
	programmingError("command " + handler.Name() + ": no sub-handler named " + route.Name)
}

// interactionCommandData extracts the invoked command's id and its
// top-level chat-input options (nil for user/message commands, which
// carry no option tree) from any interaction variant that wraps an
// application command.
func interactionCommandData(interaction Interaction) (Snowflake, []ChatInputInteractionCommandOption, bool) {
	switch in := interaction.(type) {
	case *ChatInputCommandInteraction:
		return in.Data.ID, in.Data.Options, true
	case *UserCommandInteraction:
		return in.Data.ID, nil, true
	case *MessageCommandInteraction:
		return in.Data.ID, nil, true
	default:
		return 0, nil, false
	}
}

/*****************************
 *  Command registration    *
 *****************************/

// registerCommand reconciles handler's declared shape with Discord's
// existing command list: creating it if absent, editing it if the live
// command has drifted from what the handler now declares, or doing
// nothing if they already match. It binds the resulting id to handler
// on router and returns that id.
func registerCommand(ctx Context, router *interactionRouter, handler Registerable) (Snowflake, error) {
	options := buildOptions(handler)

	guildID := handler.GuildID()

	var existing []ApplicationCommand
	var err error
	if guildID == 0 {
		existing, err = ctx.GetGlobalApplicationCommands(ctx.ApplicationID)
	} else {
		existing, err = ctx.GetGuildApplicationCommands(ctx.ApplicationID, guildID)
	}
	if err != nil {
		return 0, err
	}

	for _, cmd := range existing {
		if cmd.GetType() != handler.CommandType() || cmd.GetName() != handler.Name() || cmd.GetGuildID() != guildID {
			continue
		}

		chatInput, isChatInput := cmd.(*ChatInputCommand)
		descriptionMatches := true
		optionsMatch := true
		if isChatInput {
			descriptionMatches = chatInput.Description == handler.Description()
			optionsMatch = optionsEqual(chatInput.Options, options)
		}

		if descriptionMatches && optionsMatch {
			router.bind(cmd.GetID(), handler)
			return cmd.GetID(), nil
		}

		if guildID == 0 {
			edited, err := ctx.EditGlobalApplicationCommand(ctx.ApplicationID, cmd.GetID(), EditApplicationCommand{
				Name:        handler.Name(),
				Description: handler.Description(),
				Options:     options,
			})
			if err != nil {
				return 0, err
			}
			router.bind(edited.GetID(), handler)
			return edited.GetID(), nil
		}

		edited, err := ctx.EditGuildApplicationCommand(ctx.ApplicationID, guildID, cmd.GetID(), EditApplicationCommand{
			Name:        handler.Name(),
			Description: handler.Description(),
			Options:     options,
		})
		if err != nil {
			return 0, err
		}
		router.bind(edited.GetID(), handler)
		return edited.GetID(), nil
	}

	intended := &ChatInputCommand{
		ApplicationCommandBase: ApplicationCommandBase{
			Type:    handler.CommandType(),
			GuildID: guildID,
			Name:    handler.Name(),
		},
		DescriptionConstraints: DescriptionConstraints{Description: handler.Description()},
		Options:                options,
	}

	var created ApplicationCommand
	if guildID == 0 {
		created, err = ctx.CreateGlobalApplicationCommand(ctx.ApplicationID, intended)
	} else {
		created, err = ctx.CreateGuildApplicationCommand(ctx.ApplicationID, guildID, intended)
	}
	if err != nil {
		return 0, err
	}
	router.bind(created.GetID(), handler)
	return created.GetID(), nil
}

// buildOptions returns handler's own options, or, when handler declares
// sub-handlers instead, synthesizes one ApplicationCommandOptionSubCommand
// (leaf sub-handler) or ApplicationCommandOptionSubCommandGroup (a
// sub-handler that itself has sub-handlers) per sub-handler.
//
// Panics via programmingError if handler declares both.
func buildOptions(handler Registerable) []ApplicationCommandOption {
	opts := handler.Options()
	subs := handler.SubHandlers()

	if len(opts) > 0 && len(subs) > 0 {
		programmingError("command " + handler.Name() + ": can't have both options and sub-handlers")
	}
	if len(subs) == 0 {
		return opts
	}

	synthesized := make([]ApplicationCommandOption, 0, len(subs))
	for _, sub := range subs {
		subOpts := buildOptions(sub)
		if len(sub.SubHandlers()) > 0 {
			group := make([]ApplicationCommandOptionSubCommand, 0, len(subOpts))
			for _, o := range subOpts {
				leaf, ok := o.(*ApplicationCommandOptionSubCommand)
				if !ok {
					programmingError("command " + sub.Name() + ": sub-command-group child did not synthesize as a sub-command")
				}
				group = append(group, *leaf)
			}
			synthesized = append(synthesized, &ApplicationCommandOptionSubCommandGroup{
				OptionBase: OptionBase{
					Type:        ApplicationCommandOptionTypeSubCommandGroup,
					Name:        sub.Name(),
					Description: sub.Description(),
				},
				Options: group,
			})
		} else {
			synthesized = append(synthesized, &ApplicationCommandOptionSubCommand{
				OptionBase: OptionBase{
					Type:        ApplicationCommandOptionTypeSubCommand,
					Name:        sub.Name(),
					Description: sub.Description(),
				},
				Options: subOpts,
			})
		}
	}
	return synthesized
}

// optionsEqual compares two option lists for equality regardless of
// declaration order, via an order-insensitive (summed) stable hash.
// Float-bearing fields are folded in via math.Float64bits rather than
// compared directly, so NaN's usual "NaN != NaN" semantics can't make
// two otherwise-identical option lists compare unequal.
func optionsEqual(a, b []ApplicationCommandOption) bool {
	if len(a) != len(b) {
		return false
	}
	return optionSetHash(a) == optionSetHash(b)
}

func optionSetHash(opts []ApplicationCommandOption) uint64 {
	var sum uint64
	for _, o := range opts {
		sum += optionHash(o)
	}
	return sum
}

func optionHash(opt ApplicationCommandOption) uint64 {
	h := fnv.New64a()
	writeString(h, opt.GetName())
	writeString(h, opt.GetDescription())
	writeUint64(h, uint64(opt.GetType()))

	switch o := opt.(type) {
	case *ApplicationCommandOptionString:
		writeBool(h, o.Required)
		writeBool(h, o.Autocomplete)
		writeIntPtr(h, o.MinLength)
		writeIntPtr(h, o.MaxLength)
		for _, c := range o.Choices {
			writeString(h, c.Name)
			writeString(h, c.Value)
		}
	case *ApplicationCommandOptionInteger:
		writeBool(h, o.Required)
		writeBool(h, o.Autocomplete)
		writeIntPtr(h, o.MinValue)
		writeIntPtr(h, o.MaxValue)
		for _, c := range o.Choices {
			writeString(h, c.Name)
			writeUint64(h, uint64(c.Value))
		}
	case *ApplicationCommandOptionFloat:
		writeBool(h, o.Required)
		writeBool(h, o.Autocomplete)
		writeFloatPtr(h, o.MinValue)
		writeFloatPtr(h, o.MaxValue)
		for _, c := range o.Choices {
			writeString(h, c.Name)
			writeUint64(h, math.Float64bits(c.Value))
		}
	case *ApplicationCommandOptionBool:
		writeBool(h, o.Required)
	case *ApplicationCommandOptionUser:
		writeBool(h, o.Required)
	case *ApplicationCommandOptionRole:
		writeBool(h, o.Required)
	case *ApplicationCommandOptionMentionable:
		writeBool(h, o.Required)
	case *ApplicationCommandOptionAttachment:
		writeBool(h, o.Required)
	case *ApplicationCommandOptionChannel:
		writeBool(h, o.Required)
		for _, ct := range o.ChannelTypes {
			writeUint64(h, uint64(ct))
		}
	case *ApplicationCommandOptionSubCommand:
		writeUint64(h, optionSetHash(o.Options))
	case *ApplicationCommandOptionSubCommandGroup:
		var sum uint64
		for _, sub := range o.Options {
			sum += optionHash(&sub)
		}
		writeUint64(h, sum)
	}

	return h.Sum64()
}

func writeString(h interface{ Write([]byte) (int, error) }, s string) {
	h.Write([]byte(s))
	h.Write([]byte{0})
}

func writeUint64(h interface{ Write([]byte) (int, error) }, v uint64) {
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(v >> (8 * i))
	}
	h.Write(buf[:])
}

func writeBool(h interface{ Write([]byte) (int, error) }, b bool) {
	if b {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
}

func writeIntPtr(h interface{ Write([]byte) (int, error) }, p *int) {
	if p == nil {
		h.Write([]byte{0})
		return
	}
	h.Write([]byte{1})
	writeUint64(h, uint64(int64(*p)))
}

func writeFloatPtr(h interface{ Write([]byte) (int, error) }, p *float64) {
	if p == nil {
		h.Write([]byte{0})
		return
	}
	h.Write([]byte{1})
	writeUint64(h, math.Float64bits(*p))
}
