package resolve

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"CloseByRentals/cache"
	"CloseByRentals/utils"
)

// Source identifies where a resolved payload came from.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
	SourceCache    Source = "cache"
	SourceNone     Source = "none"
)

// CacheStatus is explicit cache provenance for the response, surfaced as
// metadata rather than inferred from anything.
type CacheStatus string

const (
	CacheFresh       CacheStatus = "fresh"
	CacheHit         CacheStatus = "cached"
	CacheRevalidated CacheStatus = "revalidated"
)

type Result struct {
	Payload     []byte
	Source      Source
	CacheStatus CacheStatus
	// Degraded is set when a best-effort read exhausted every source and
	// resolved to its empty value instead of failing.
	Degraded bool
}

// RemoteFunc attempts the primary source, optionally carrying a cached
// validator for conditional revalidation.
type RemoteFunc func(ctx context.Context, validator string) (payload []byte, newValidator string, notModified bool, err error)

// FallbackFunc attempts the secondary source.
type FallbackFunc func(ctx context.Context) ([]byte, error)

// SinkFunc attempts a write against one sink and returns the created record.
type SinkFunc func(ctx context.Context) ([]byte, error)

// ReadSpec describes one logical read operation.
type ReadSpec struct {
	Operation string
	Params    map[string]string
	Remote    RemoteFunc
	Fallback  FallbackFunc
	// RequireNonEmpty treats an empty collection from the remote as a
	// failure, so the fallback gets a chance to produce real data.
	RequireNonEmpty bool
	// BestEffort reads degrade to EmptyValue instead of failing when both
	// sources are down.
	BestEffort bool
	EmptyValue []byte
}

// WriteSpec describes one logical write operation. Invalidation happens only
// after a sink accepted the write, never before.
type WriteSpec struct {
	Operation          string
	Primary            SinkFunc
	Fallback           SinkFunc
	InvalidatePrefixes []string
}

// Resolver runs the cache-check / remote-attempt / fallback state machine
// shared by every logical read and write.
type Resolver struct {
	cache  cache.Store
	ttl    time.Duration
	logger *slog.Logger
}

func New(store cache.Store, ttl time.Duration, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{cache: store, ttl: ttl, logger: logger}
}

func (r *Resolver) Read(ctx context.Context, spec ReadSpec) (Result, error) {
	key := utils.CacheKey(spec.Operation, spec.Params)

	entry, cached, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Warn("cache read failed", "operation", spec.Operation, "error", err)
		cached = false
	}

	// A live entry without a validator cannot be revalidated; serve it as-is.
	if cached && entry.Validator == "" {
		return Result{Payload: entry.Payload, Source: SourceCache, CacheStatus: CacheHit}, nil
	}

	var primaryErr error
	if spec.Remote != nil {
		validator := ""
		if cached {
			validator = entry.Validator
		}
		payload, newValidator, notModified, err := spec.Remote(ctx, validator)
		switch {
		case err != nil:
			primaryErr = err
		case notModified && cached:
			// Unchanged token means unchanged payload; the cached bytes are
			// returned untouched.
			return Result{Payload: entry.Payload, Source: SourceRemote, CacheStatus: CacheRevalidated}, nil
		case spec.RequireNonEmpty && emptyPayload(payload):
			primaryErr = ErrEmptyResult
		default:
			r.store(ctx, key, payload, newValidator)
			return Result{Payload: payload, Source: SourceRemote, CacheStatus: CacheFresh}, nil
		}
		r.logger.Warn("primary source failed", "operation", spec.Operation, "error", primaryErr)
	} else {
		primaryErr = ErrNotConfigured
	}

	// Stale-but-present beats a refetch from scratch when the remote is down.
	if cached {
		return Result{Payload: entry.Payload, Source: SourceCache, CacheStatus: CacheHit}, nil
	}

	var fallbackErr error
	if spec.Fallback != nil {
		payload, err := spec.Fallback(ctx)
		if err == nil {
			r.store(ctx, key, payload, "")
			return Result{Payload: payload, Source: SourceFallback, CacheStatus: CacheFresh}, nil
		}
		fallbackErr = err
		r.logger.Warn("fallback source failed", "operation", spec.Operation, "error", err)
	} else {
		fallbackErr = ErrNotConfigured
	}

	if spec.BestEffort {
		empty := spec.EmptyValue
		if empty == nil {
			empty = []byte("[]")
		}
		r.logger.Warn("degrading to empty result", "operation", spec.Operation,
			"primary", primaryErr, "fallback", fallbackErr)
		return Result{Payload: empty, Source: SourceNone, Degraded: true}, nil
	}
	return Result{}, &UpstreamError{Operation: spec.Operation, Primary: primaryErr, Fallback: fallbackErr}
}

func (r *Resolver) Write(ctx context.Context, spec WriteSpec) ([]byte, error) {
	var primaryErr error
	created, err := r.runSink(ctx, spec.Primary)
	if err == nil {
		r.invalidate(ctx, spec)
		return created, nil
	}
	primaryErr = err
	r.logger.Warn("primary sink failed", "operation", spec.Operation, "error", err)

	created, fallbackErr := r.runSink(ctx, spec.Fallback)
	if fallbackErr == nil {
		r.invalidate(ctx, spec)
		return created, nil
	}
	return nil, &UpstreamError{Operation: spec.Operation, Primary: primaryErr, Fallback: fallbackErr}
}

func (r *Resolver) runSink(ctx context.Context, sink SinkFunc) ([]byte, error) {
	if sink == nil {
		return nil, ErrNotConfigured
	}
	return sink(ctx)
}

func (r *Resolver) store(ctx context.Context, key string, payload []byte, validator string) {
	entry := cache.Entry{
		Payload:   payload,
		Validator: validator,
		ExpiresAt: time.Now().Add(r.ttl).UnixMilli(),
	}
	if err := r.cache.Set(ctx, key, entry); err != nil {
		r.logger.Warn("cache write failed", "key", key, "error", err)
	}
}

func (r *Resolver) invalidate(ctx context.Context, spec WriteSpec) {
	for _, prefix := range spec.InvalidatePrefixes {
		if err := r.cache.DeleteByPrefix(ctx, prefix); err != nil {
			r.logger.Warn("cache invalidation failed", "prefix", prefix, "error", err)
		}
	}
}

func emptyPayload(payload []byte) bool {
	trimmed := bytes.TrimSpace(payload)
	return len(trimmed) == 0 ||
		bytes.Equal(trimmed, []byte("[]")) ||
		bytes.Equal(trimmed, []byte("null"))
}
