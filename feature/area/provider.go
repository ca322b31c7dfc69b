package area

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"tooltips/core/integration"
	"tooltips/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Provider answers area lookups from a region document kept in object storage.
// It implements integration.AreaProvider.
type Provider struct {
	id     string
	client storage.Client
	bucket string
	object string
	logger *zap.Logger

	mu      sync.RWMutex
	regions []Region
}

// NewProvider creates a provider reading bucket/object. Call Load before use.
func NewProvider(id string, client storage.Client, bucket, object string, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		id:     id,
		client: client,
		bucket: bucket,
		object: object,
		logger: logger,
	}
}

// Load fetches the region document and replaces the regions in memory.
func (p *Provider) Load(ctx context.Context) error {
	obj, err := p.client.GetObject(ctx, p.bucket, p.object, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to fetch %s/%s: %w", p.bucket, p.object, err)
	}
	defer obj.Close()

	doc, err := Parse(obj)
	if err != nil {
		return fmt.Errorf("%s/%s: %w", p.bucket, p.object, err)
	}

	p.mu.Lock()
	p.regions = doc.Regions
	p.mu.Unlock()

	p.logger.Info("Regions loaded",
		zap.String("object", p.object),
		zap.Int("regions", len(doc.Regions)),
	)
	return nil
}

// Identifier implements integration.AreaProvider.
func (p *Provider) Identifier() string {
	return p.id
}

// AreaAt implements integration.AreaProvider. Regions are ordered by
// priority, highest first, then by id.
func (p *Provider) AreaAt(ctx context.Context, loc integration.Location) (integration.Area, bool) {
	p.mu.RLock()
	var matches []Region
	for _, r := range p.regions {
		if r.Contains(loc) {
			matches = append(matches, r)
		}
	}
	p.mu.RUnlock()

	if len(matches) == 0 {
		return integration.Area{}, false
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Priority != matches[j].Priority {
			return matches[i].Priority > matches[j].Priority
		}
		return matches[i].ID < matches[j].ID
	})

	area := integration.Area{Provider: p.id, Regions: make([]string, len(matches))}
	for i, r := range matches {
		area.Regions[i] = r.ID
	}
	return area, true
}
