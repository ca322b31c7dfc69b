package packet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrCancelled is returned by Send when an interceptor dropped the packet.
var ErrCancelled = errors.New("packet cancelled by interceptor")

// Packet is an outbound message for one player.
type Packet struct {
	// Player is the receiving player.
	Player uuid.UUID
	// Type is the protocol packet type (e.g. "set_title_text").
	Type string
	// Payload is the encoded packet body.
	Payload []byte
}

// Interceptor inspects an outbound packet. Returning false cancels it.
type Interceptor func(ctx context.Context, p *Packet) bool

// Sink delivers packets that passed every interceptor.
type Sink func(ctx context.Context, p Packet) error

// Bus is the packet layer of the host, bound to the network component chosen at bootstrap.
// It implements integration.PacketProvider and is safe for concurrent use.
type Bus struct {
	id     string
	sink   Sink
	logger *zap.Logger

	mu           sync.RWMutex
	interceptors []Interceptor
}

// NewBus creates a bus for the named network component. A nil sink drops
// delivered packets after logging them at debug level.
func NewBus(component string, sink Sink, logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &Bus{
		id:     strings.ToLower(component),
		sink:   sink,
		logger: logger,
	}
	if b.sink == nil {
		b.sink = b.logSink
	}
	return b
}

// Identifier implements integration.PacketProvider.
func (b *Bus) Identifier() string {
	return b.id
}

// Intercept adds an interceptor. Interceptors run in the order they were added.
func (b *Bus) Intercept(fn Interceptor) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.interceptors = append(b.interceptors, fn)
}

// Send runs the interceptors over p and hands it to the sink.
func (b *Bus) Send(ctx context.Context, p Packet) error {
	if p.Type == "" {
		return fmt.Errorf("packet type is required")
	}

	b.mu.RLock()
	interceptors := b.interceptors
	b.mu.RUnlock()

	for _, fn := range interceptors {
		if !fn(ctx, &p) {
			return ErrCancelled
		}
	}

	if err := b.sink(ctx, p); err != nil {
		return fmt.Errorf("deliver %s: %w", p.Type, err)
	}
	return nil
}

func (b *Bus) logSink(ctx context.Context, p Packet) error {
	b.logger.Debug("Packet delivered",
		zap.String("type", p.Type),
		zap.Stringer("player", p.Player),
		zap.Int("bytes", len(p.Payload)),
	)
	return nil
}
