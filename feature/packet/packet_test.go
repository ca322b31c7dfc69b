package packet

import (
	"context"
	"errors"
	"sync"
	"testing"

	"tooltips/core/integration"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ integration.PacketProvider = (*Bus)(nil)

func TestBus_Identifier(t *testing.T) {
	assert.Equal(t, "protocollib", NewBus("ProtocolLib", nil, nil).Identifier())
	assert.Equal(t, "packetevents", NewBus("packetevents", nil, nil).Identifier())
}

func TestBus_Send(t *testing.T) {
	var delivered []Packet
	bus := NewBus("packetevents", func(ctx context.Context, p Packet) error {
		delivered = append(delivered, p)
		return nil
	}, nil)

	bus.Intercept(func(ctx context.Context, p *Packet) bool {
		p.Payload = append(p.Payload, '!')
		return true
	})
	bus.Intercept(func(ctx context.Context, p *Packet) bool {
		return p.Type != "blocked"
	})

	player := uuid.New()
	require.NoError(t, bus.Send(context.Background(), Packet{Player: player, Type: "set_title_text", Payload: []byte("hi")}))
	assert.ErrorIs(t, bus.Send(context.Background(), Packet{Player: player, Type: "blocked"}), ErrCancelled)
	assert.Error(t, bus.Send(context.Background(), Packet{Player: player}))

	require.Len(t, delivered, 1)
	assert.Equal(t, []byte("hi!"), delivered[0].Payload)
}

func TestBus_SinkError(t *testing.T) {
	bus := NewBus("packetevents", func(ctx context.Context, p Packet) error {
		return errors.New("channel closed")
	}, nil)

	err := bus.Send(context.Background(), Packet{Type: "set_title_text"})
	assert.ErrorContains(t, err, "deliver set_title_text: channel closed")
}

func TestBus_ConcurrentIntercept(t *testing.T) {
	bus := NewBus("packetevents", nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			bus.Intercept(func(ctx context.Context, p *Packet) bool { return true })
		}()
		go func() {
			defer wg.Done()
			_ = bus.Send(context.Background(), Packet{Type: "keep_alive"})
		}()
	}
	wg.Wait()
}
