package script

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapExpansion struct {
	id     string
	values map[string]string
}

func (m mapExpansion) Identifier() string { return m.id }

func (m mapExpansion) Resolve(ctx context.Context, target Target, key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func TestRegistry_Conditions(t *testing.T) {
	reg := NewRegistry()
	player := uuid.New()
	reg.RegisterCondition("InConversation", func(ctx context.Context, target Target) bool {
		return target.Player == player
	})

	result, found := reg.Check(context.Background(), "inconversation", Target{Player: player})
	assert.True(t, found)
	assert.True(t, result)

	result, found = reg.Check(context.Background(), "inconversation", Target{Player: uuid.New()})
	assert.True(t, found)
	assert.False(t, result)

	_, found = reg.Check(context.Background(), "missing", Target{})
	assert.False(t, found)
}

func TestRegistry_Actions(t *testing.T) {
	reg := NewRegistry()
	var gotArgs []string
	reg.RegisterAction("selectoption", func(ctx context.Context, target Target, args []string) error {
		gotArgs = args
		return nil
	})
	reg.RegisterAction("broken", func(ctx context.Context, target Target, args []string) error {
		return errors.New("boom")
	})

	require.NoError(t, reg.Run(context.Background(), "SelectOption", Target{}, []string{"2"}))
	assert.Equal(t, []string{"2"}, gotArgs)

	err := reg.Run(context.Background(), "nope", Target{}, nil)
	assert.ErrorIs(t, err, ErrUnknownAction)

	err = reg.Run(context.Background(), "broken", Target{}, nil)
	assert.ErrorContains(t, err, "action broken: boom")
}

func TestRegistry_Expand(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterExpansion(mapExpansion{id: "tooltips", values: map[string]string{"furniture": "oak_chair", "areas": "spawn"}})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Single", "Looking at %tooltips_furniture%", "Looking at oak_chair"},
		{"Multiple", "%tooltips_furniture% in %tooltips_areas%", "oak_chair in spawn"},
		{"UnknownKey", "%tooltips_unknown%", "%tooltips_unknown%"},
		{"UnknownExpansion", "%other_furniture%", "%other_furniture%"},
		{"PercentLiteral", "100% %tooltips_areas%", "100% spawn"},
		{"Unclosed", "%tooltips_areas", "%tooltips_areas"},
		{"Plain", "no tokens", "no tokens"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reg.Expand(context.Background(), tt.in, Target{}))
		})
	}
}

func TestRegistry_ExpansionReplace(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterExpansion(mapExpansion{id: "tooltips", values: map[string]string{"k": "old"}})
	reg.RegisterExpansion(mapExpansion{id: "tooltips", values: map[string]string{"k": "new"}})

	assert.True(t, reg.IsExpansionRegistered("tooltips"))
	assert.Equal(t, "new", reg.Expand(context.Background(), "%tooltips_k%", Target{}))

	reg.UnregisterExpansion("tooltips")
	assert.False(t, reg.IsExpansionRegistered("tooltips"))

	_, _, expansions := reg.Names()
	assert.Empty(t, expansions)
}
