package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const r2Scheme = "r2://"

var ErrInvalidLocation = errors.New("invalid fixture location")

// ObjectReader отдает содержимое объекта по ключу.
type ObjectReader interface {
	Open(ctx context.Context, bucket, key string) (io.ReadCloser, error)
}

// Location is either a local path or an r2://bucket/key reference.
type Location struct {
	Path   string
	Bucket string
	Key    string
}

func (l Location) Remote() bool {
	return l.Key != ""
}

func (l Location) String() string {
	if l.Remote() {
		return r2Scheme + l.Bucket + "/" + l.Key
	}
	return l.Path
}

// ParseLocation разбирает путь к фикстуре. Для r2:// без бакета используется defaultBucket.
func ParseLocation(raw, defaultBucket string) (Location, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Location{}, fmt.Errorf("%w: empty", ErrInvalidLocation)
	}
	if !strings.HasPrefix(raw, r2Scheme) {
		return Location{Path: raw}, nil
	}

	rest := strings.TrimPrefix(raw, r2Scheme)
	bucket, key, found := strings.Cut(rest, "/")
	if !found {
		// r2://key
		bucket, key = defaultBucket, rest
	}
	if bucket == "" {
		bucket = defaultBucket
	}
	key = strings.TrimPrefix(key, "/")
	if bucket == "" || key == "" {
		return Location{}, fmt.Errorf("%w: %q needs both bucket and key", ErrInvalidLocation, raw)
	}
	return Location{Bucket: bucket, Key: key}, nil
}

// Open returns a reader for the fixture. Remote locations require objects to be non-nil.
func Open(ctx context.Context, loc Location, objects ObjectReader) (io.ReadCloser, error) {
	if !loc.Remote() {
		f, err := os.Open(loc.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open fixture file: %w", err)
		}
		return f, nil
	}
	if objects == nil {
		return nil, fmt.Errorf("%w: %s requires R2 credentials", ErrInvalidLocation, loc)
	}
	return objects.Open(ctx, loc.Bucket, loc.Key)
}
