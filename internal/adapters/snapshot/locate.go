package snapshot

import (
	"context"
	"path"
	"strings"

	"docshelf/internal/adapters/sqlite"
	"docshelf/internal/application"
	"docshelf/internal/ports"
)

// NewSource picks the snapshot source for a location string
func NewSource(ctx context.Context, location string) (ports.SnapshotSource, error) {
	location = strings.TrimSpace(location)

	switch {
	case location == "":
		return nil, &application.LocationError{Location: location, Reason: "empty location"}
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTPSource(location, nil), nil
	case strings.HasPrefix(location, "s3://"):
		return newS3(ctx, location)
	case isSQLite(location):
		return sqlite.NewStore(location), nil
	case strings.Contains(location, "://"):
		return nil, &application.LocationError{Location: location, Reason: "unsupported scheme"}
	default:
		return NewFileSource(location), nil
	}
}

// NewSink picks the snapshot sink for a location string. HTTP locations are read-only.
func NewSink(ctx context.Context, location string) (ports.SnapshotSink, error) {
	location = strings.TrimSpace(location)

	switch {
	case location == "":
		return nil, &application.LocationError{Location: location, Reason: "empty location"}
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return nil, &application.LocationError{Location: location, Reason: "http locations are read-only"}
	case strings.HasPrefix(location, "s3://"):
		return newS3(ctx, location)
	case isSQLite(location):
		return sqlite.NewStore(location), nil
	case strings.Contains(location, "://"):
		return nil, &application.LocationError{Location: location, Reason: "unsupported scheme"}
	default:
		return NewFileSink(location), nil
	}
}

func isSQLite(location string) bool {
	if strings.HasPrefix(location, sqlite.Scheme) {
		return true
	}
	switch strings.ToLower(path.Ext(location)) {
	case ".db", ".sqlite", ".sqlite3":
		return !strings.Contains(location, "://")
	}
	return false
}

// ParseS3Location splits s3://bucket/key
func ParseS3Location(location string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(location, "s3://")
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return "", "", &application.LocationError{Location: location, Reason: "expected s3://bucket/key"}
	}
	return bucket, key, nil
}

func newS3(ctx context.Context, location string) (*S3Object, error) {
	bucket, key, err := ParseS3Location(location)
	if err != nil {
		return nil, err
	}
	return NewS3ObjectFromEnv(ctx, bucket, key)
}
