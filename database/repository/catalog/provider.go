package catalogRepo

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"tripdesk/models"
)

const (
	guidesCacheKey    = "dataset:primary:guides"
	transportCacheKey = "dataset:primary:transport"
)

// Provider resolves the raw dataset for a catalog domain, substituting the
// static fallback file when the primary source is unconfigured or its schema
// is missing. The two domains deliberately differ: guides are primary-first,
// transport prefers a non-empty local dataset even when the primary works.
type Provider struct {
	primary   PrimarySource
	guides    *fallbackFile
	transport *fallbackFile
	cache     *redis.Client
	cacheTTL  time.Duration
	logger    *zap.Logger
}

func NewProvider(primary PrimarySource, guidesPath, transportPath string, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *Provider {
	return &Provider{
		primary:   primary,
		guides:    newFallbackFile(guidesPath, logger),
		transport: newFallbackFile(transportPath, logger),
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// FetchGuides attempts the primary source first. A missing-schema failure or
// an empty primary result substitutes the fallback dataset; any other
// primary failure is returned to the caller unmasked.
func (p *Provider) FetchGuides(ctx context.Context) (Dataset, error) {
	if p.primary == nil || !p.primary.Configured() {
		return Dataset{Items: p.guides.Items(), Source: SourceFallback}, nil
	}

	if items, ok := p.cachedPrimary(ctx, guidesCacheKey); ok {
		return Dataset{Items: items, Source: SourcePrimary}, nil
	}

	items, err := p.primary.FetchGuides(ctx)
	if err != nil {
		if SchemaMissing(err) {
			p.logger.Warn("Guides schema missing, serving fallback dataset", zap.Error(err))
			return Dataset{Items: p.guides.Items(), Source: SourceFallback, Warning: err.Error()}, nil
		}
		return Dataset{}, err
	}
	if len(items) == 0 {
		return Dataset{Items: p.guides.Items(), Source: SourceFallback}, nil
	}

	p.storePrimary(ctx, guidesCacheKey, items)
	return Dataset{Items: items, Source: SourcePrimary}, nil
}

// FetchTransport prefers the local dataset whenever it is non-empty; the
// primary source is only consulted when no local data exists.
func (p *Provider) FetchTransport(ctx context.Context) (Dataset, error) {
	local := p.transport.Items()
	if len(local) > 0 {
		return Dataset{Items: local, Source: SourceFallback}, nil
	}

	if p.primary == nil || !p.primary.Configured() {
		return Dataset{Items: local, Source: SourceFallback}, nil
	}

	if items, ok := p.cachedPrimary(ctx, transportCacheKey); ok {
		return Dataset{Items: items, Source: SourcePrimary}, nil
	}

	items, err := p.primary.FetchTransport(ctx)
	if err != nil {
		if SchemaMissing(err) {
			p.logger.Warn("Transport schema missing, serving fallback dataset", zap.Error(err))
			return Dataset{Items: local, Source: SourceFallback, Warning: err.Error()}, nil
		}
		return Dataset{}, err
	}

	p.storePrimary(ctx, transportCacheKey, items)
	return Dataset{Items: items, Source: SourcePrimary}, nil
}

// cachedPrimary returns a cached primary fetch. Cache errors count as a miss.
func (p *Provider) cachedPrimary(ctx context.Context, key string) ([]models.RawRecord, bool) {
	if p.cache == nil {
		return nil, false
	}
	payload, err := p.cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var items []models.RawRecord
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (p *Provider) storePrimary(ctx context.Context, key string, items []models.RawRecord) {
	if p.cache == nil {
		return
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := p.cache.Set(ctx, key, payload, p.cacheTTL).Err(); err != nil {
		p.logger.Warn("Failed to cache primary dataset", zap.String("key", key), zap.Error(err))
	}
}
