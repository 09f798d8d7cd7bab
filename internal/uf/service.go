package uf

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKey = "uf:current"
	staleKey = "uf:last"
)

// ErrUnavailable reports that the indicator feed is down and no cached
// value exists to fall back on.
var ErrUnavailable = errors.New("uf value unavailable")

// Service proxies the mindicador.cl UF feed with a redis cache in front.
// A fresh value is served for the cache TTL; when the feed is down the last
// known value is served instead.
type Service struct {
	client *http.Client
	cache  *redis.Client
	url    string
	ttl    time.Duration
	log    *slog.Logger
}

func NewService(client *http.Client, cache *redis.Client, url string, ttl time.Duration, log *slog.Logger) *Service {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Service{client: client, cache: cache, url: url, ttl: ttl, log: log}
}

// Current returns the raw indicator document.
func (s *Service) Current(ctx context.Context) (json.RawMessage, error) {
	if cached, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
		return cached, nil
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn("uf cache read failed", "error", err)
	}

	body, err := s.fetch(ctx)
	if err != nil {
		s.log.Error("uf fetch failed", "error", err)
		if stale, staleErr := s.cache.Get(ctx, staleKey).Bytes(); staleErr == nil {
			return stale, nil
		}
		return nil, ErrUnavailable
	}

	if err := s.cache.Set(ctx, cacheKey, body, s.ttl).Err(); err != nil {
		s.log.Warn("uf cache write failed", "error", err)
	}
	if err := s.cache.Set(ctx, staleKey, body, 0).Err(); err != nil {
		s.log.Warn("uf stale write failed", "error", err)
	}
	return body, nil
}

func (s *Service) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build uf request: %w", err)
	}
	req.Header.Set("User-Agent", "TNA-Office/2.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch uf: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch uf: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read uf response: %w", err)
	}
	if !json.Valid(body) {
		return nil, errors.New("fetch uf: invalid json")
	}
	return body, nil
}
