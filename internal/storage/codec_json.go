//go:build !binary

package storage

// The default build persists the log as human-readable JSON.
func activeCodec() Codec { return jsonCodec{} }
