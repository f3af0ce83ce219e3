package bots

import (
	"testing"

	"github.com/fablebox/FableTalk/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRosterSeeded(t *testing.T) {
	r := NewDefaultRoster()

	list := r.List()
	assert.GreaterOrEqual(t, len(list), 3)

	luna, ok := r.Get("Luna")
	require.True(t, ok)
	assert.NotEmpty(t, luna.ID)
	assert.Equal(t, "gentle", luna.Persona.Tone)
	assert.True(t, luna.Voice.Enabled)

	// 没有配置 tone 的预置角色也要拿到回退值
	sage, ok := r.Get("Sage")
	require.True(t, ok)
	assert.Equal(t, "warm", sage.Persona.Tone)
	assert.False(t, sage.Voice.Enabled)
}

func TestAddRejectsDuplicateName(t *testing.T) {
	r := NewRoster()
	_, err := r.Add(model.NewBot(model.Bot{Name: "Echo"}))
	require.NoError(t, err)

	_, err = r.Add(model.NewBot(model.Bot{Name: "Echo"}))
	assert.Error(t, err)
}

func TestAddRequiresName(t *testing.T) {
	r := NewRoster()
	_, err := r.Add(model.NewBot(model.Bot{}))
	assert.Error(t, err)
}

func TestUpdateKeepsID(t *testing.T) {
	r := NewRoster()
	orig, err := r.Add(model.NewBot(model.Bot{Name: "Echo"}))
	require.NoError(t, err)

	updated, err := r.Update("Echo", &model.Bot{Name: "Echo", Description: "changed"})
	require.NoError(t, err)
	assert.Equal(t, orig.ID, updated.ID)
	assert.Equal(t, "changed", updated.Description)
}

func TestUpdateRename(t *testing.T) {
	r := NewRoster()
	_, err := r.Add(model.NewBot(model.Bot{Name: "Echo"}))
	require.NoError(t, err)

	_, err = r.Update("Echo", &model.Bot{Name: "Reverb"})
	require.NoError(t, err)

	_, ok := r.Get("Echo")
	assert.False(t, ok)
	_, ok = r.Get("Reverb")
	assert.True(t, ok)
}

func TestRemove(t *testing.T) {
	r := NewRoster()
	_, err := r.Add(model.NewBot(model.Bot{Name: "Echo"}))
	require.NoError(t, err)

	b, err := r.Remove("Echo")
	require.NoError(t, err)
	assert.Equal(t, "Echo", b.Name)

	_, err = r.Remove("Echo")
	assert.Error(t, err)
}
