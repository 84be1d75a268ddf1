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
	"math"
	"testing"
)

type fakeHandler struct {
	name        string
	description string
	commandType ApplicationCommandType
	guildID     Snowflake
	options     []ApplicationCommandOption
	subs        []Registerable

	called  bool
	lastOpt []ChatInputInteractionCommandOption
}

func (f *fakeHandler) Name() string                             { return f.name }
func (f *fakeHandler) Description() string                      { return f.description }
func (f *fakeHandler) CommandType() ApplicationCommandType       { return f.commandType }
func (f *fakeHandler) GuildID() Snowflake                        { return f.guildID }
func (f *fakeHandler) Options() []ApplicationCommandOption       { return f.options }
func (f *fakeHandler) SubHandlers() []Registerable               { return f.subs }
func (f *fakeHandler) Handle(ctx Context, interaction Interaction, options []ChatInputInteractionCommandOption) {
	f.called = true
	f.lastOpt = options
}

func stringOption(name string) *ApplicationCommandOptionString {
	return &ApplicationCommandOptionString{
		OptionBase: OptionBase{
			Type:        ApplicationCommandOptionTypeString,
			Name:        name,
			Description: "a string option",
		},
	}
}

func TestOptionsEqual_OrderInsensitive(t *testing.T) {
	a := []ApplicationCommandOption{stringOption("alpha"), stringOption("beta")}
	b := []ApplicationCommandOption{stringOption("beta"), stringOption("alpha")}

	if !optionsEqual(a, b) {
		t.Fatalf("expected option lists to compare equal regardless of order")
	}
}

func TestOptionsEqual_DetectsRealDifference(t *testing.T) {
	a := []ApplicationCommandOption{stringOption("alpha")}
	b := []ApplicationCommandOption{stringOption("beta")}

	if optionsEqual(a, b) {
		t.Fatalf("expected differently-named options to compare unequal")
	}
}

func TestOptionsEqual_NaNSafe(t *testing.T) {
	nan := math.NaN()
	opt := func() *ApplicationCommandOptionFloat {
		return &ApplicationCommandOptionFloat{
			OptionBase: OptionBase{
				Type:        ApplicationCommandOptionTypeFloat,
				Name:        "ratio",
				Description: "a float option",
			},
			FloatConstraints: FloatConstraints{MinValue: &nan},
		}
	}

	a := []ApplicationCommandOption{opt()}
	b := []ApplicationCommandOption{opt()}

	if !optionsEqual(a, b) {
		t.Fatalf("expected two option lists carrying the same NaN min value to compare equal")
	}
}

func TestInteractionRouter_DispatchSubCommand(t *testing.T) {
	leaf := &fakeHandler{name: "ping", description: "ping sub-command"}
	top := &fakeHandler{name: "util", description: "utility command", subs: []Registerable{leaf}}

	router := newInteractionRouter(NewDefaultLogger(nil, LogLevelDebugLevel), Context{})

	nested := []ChatInputInteractionCommandOption{
		{
			Name: "ping",
			Type: ApplicationCommandOptionTypeSubCommand,
			Options: []ChatInputInteractionCommandOption{
				{Name: "loud", Type: ApplicationCommandOptionTypeBool},
			},
		},
	}

	router.dispatch(top, nil, nested)

	if !leaf.called {
		t.Fatalf("expected descent to invoke the matched sub-handler")
	}
	if len(leaf.lastOpt) != 1 || leaf.lastOpt[0].Name != "loud" {
		t.Fatalf("expected the sub-handler to receive the sub-route's nested options, got %#v", leaf.lastOpt)
	}
}

func TestInteractionRouter_DispatchMissingSubRoutePanics(t *testing.T) {
	leaf := &fakeHandler{name: "ping"}
	top := &fakeHandler{name: "util", subs: []Registerable{leaf}}
	router := newInteractionRouter(NewDefaultLogger(nil, LogLevelDebugLevel), Context{})

	defer func() {
		if recover() == nil {
			t.Fatalf("expected dispatch to panic when a handler with sub-handlers receives no sub-route option")
		}
	}()
	router.dispatch(top, nil, nil)
}

func TestBuildOptions_SubCommandGroup(t *testing.T) {
	leaf := &fakeHandler{name: "add", description: "add a thing"}
	group := &fakeHandler{name: "items", description: "item management", subs: []Registerable{leaf}}
	top := &fakeHandler{name: "util", description: "utility command", subs: []Registerable{group}}

	options := buildOptions(top)
	if len(options) != 1 {
		t.Fatalf("expected one synthesized sub-command-group option, got %d", len(options))
	}

	grp, ok := options[0].(*ApplicationCommandOptionSubCommandGroup)
	if !ok {
		t.Fatalf("expected a sub-command-group option, got %T", options[0])
	}
	if len(grp.Options) != 1 || grp.Options[0].Name != "add" {
		t.Fatalf("expected the group to contain the leaf sub-command, got %#v", grp.Options)
	}
}

func TestBuildOptions_PanicsOnOptionsAndSubHandlers(t *testing.T) {
	h := &fakeHandler{
		name:    "bad",
		options: []ApplicationCommandOption{stringOption("x")},
		subs:    []Registerable{&fakeHandler{name: "y"}},
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected buildOptions to panic when a handler declares both options and sub-handlers")
		}
	}()
	buildOptions(h)
}
