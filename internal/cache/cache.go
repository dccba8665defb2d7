// Package cache implements a very trivial filesystem cache. Its only current
// tenant is the multi-megabyte season schedule payload, which is static enough
// that re-downloading it on every process start would be wasteful.
package cache

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/courtside-tui/courtside/internal/config"
)

var (
	ErrCacheMiss = errors.New("cache miss error")
	errCacheSet  = errors.New("cache set error")
	errCacheDir  = errors.New("cache dir error")
)

type Cache interface {
	Get(variant ItemVariant) ([]byte, error)
	Set(variant ItemVariant, content []byte) error
}

type ItemVariant int

const (
	ItemSchedule ItemVariant = iota
)

// Filesystem implements the default filesystem based Cache interface.
type Filesystem struct {
	cacheDir string
	maxAge   time.Duration
}

func New(maxAge time.Duration) (Filesystem, error) {
	cachePath := config.PathCache(config.CacheDirName)
	if err := os.MkdirAll(cachePath, 0o700); err != nil {
		slog.Error("Failed to make cache root", slog.String("error", err.Error()),
			slog.String("path", cachePath))

		return Filesystem{}, errors.Join(err, errCacheDir)
	}

	return Filesystem{cacheDir: cachePath, maxAge: maxAge}, nil
}

func (c Filesystem) Set(variant ItemVariant, content []byte) error {
	file, errFile := os.Create(path.Join(c.cacheDir, cacheName(variant)))
	if errFile != nil {
		return errors.Join(errFile, errCacheSet)
	}

	defer func(file io.Closer) {
		if err := file.Close(); err != nil {
			slog.Error("Failed to close cache file", slog.String("error", err.Error()))
		}
	}(file)

	if _, err := file.Write(content); err != nil {
		return errors.Join(err, errCacheSet)
	}

	return nil
}

func (c Filesystem) Get(variant ItemVariant) ([]byte, error) {
	fullPath := path.Join(c.cacheDir, cacheName(variant))

	file, errFile := os.Open(fullPath)
	if errFile != nil {
		return nil, errors.Join(errFile, ErrCacheMiss)
	}

	defer func(file io.Closer) {
		if err := file.Close(); err != nil {
			slog.Error("Failed to close cache file", slog.String("error", err.Error()))
		}
	}(file)

	stat, errStat := file.Stat()
	if errStat != nil {
		return nil, errors.Join(errStat, ErrCacheMiss)
	}

	if time.Since(stat.ModTime()) > c.maxAge {
		if err := os.Remove(fullPath); err != nil {
			return nil, errors.Join(err, ErrCacheMiss)
		}

		return nil, ErrCacheMiss
	}

	body, errRead := io.ReadAll(file)
	if errRead != nil {
		return nil, errors.Join(errRead, ErrCacheMiss)
	}

	return body, nil
}

func cacheName(variant ItemVariant) string {
	return "item_" + strconv.Itoa(int(variant)) + ".json"
}
