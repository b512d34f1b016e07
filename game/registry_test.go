package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CreateAndGet(t *testing.T) {
	t.Parallel()
	reg := NewRegistry(20)

	id := reg.CreateRoom()
	require.NotEmpty(t, id)

	room, ok := reg.Get(id)
	require.True(t, ok)
	assert.Equal(t, id, room.ID())

	other := reg.CreateRoom()
	assert.NotEqual(t, id, other)

	_, ok = reg.Get("no-such-room")
	assert.False(t, ok)
}

func TestRegistry_Connections(t *testing.T) {
	t.Parallel()
	reg := NewRegistry(20)
	id := reg.CreateRoom()

	_, ok := reg.GetByConnection("conn-1")
	assert.False(t, ok)

	reg.AttachConnection("conn-1", id)
	room, ok := reg.GetByConnection("conn-1")
	require.True(t, ok)
	assert.Equal(t, id, room.ID())

	reg.DetachConnection("conn-1")
	_, ok = reg.GetByConnection("conn-1")
	assert.False(t, ok)

	// detach is idempotent
	reg.DetachConnection("conn-1")
	reg.DetachConnection("never-attached")
}

func TestRegistry_RemoveCleansConnections(t *testing.T) {
	t.Parallel()
	reg := NewRegistry(20)
	id := reg.CreateRoom()
	keep := reg.CreateRoom()

	reg.AttachConnection("conn-1", id)
	reg.AttachConnection("conn-2", id)
	reg.AttachConnection("conn-3", keep)

	reg.Remove(id)

	_, ok := reg.Get(id)
	assert.False(t, ok)
	_, ok = reg.GetByConnection("conn-1")
	assert.False(t, ok)
	_, ok = reg.GetByConnection("conn-2")
	assert.False(t, ok)

	room, ok := reg.GetByConnection("conn-3")
	require.True(t, ok)
	assert.Equal(t, keep, room.ID())
}
