//go:build binary

package storage

// Built with -tags binary, the log is persisted in a compact gob
// encoding instead of JSON.
func activeCodec() Codec { return gobCodec{} }
