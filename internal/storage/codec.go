package storage

import (
	"bytes"
	"encoding/gob"
	"encoding/json"

	"github.com/timetrack-cli/timetrack/internal/model"
)

// Codec encodes and decodes the full event log. Which codec is active is
// a build-time choice (see codec_json.go / codec_binary.go); both sides
// of a build share the same abstract model, an ordered array of events.
type Codec interface {
	// Name identifies the codec and doubles as the data file extension.
	Name() string
	Encode(events model.Log) ([]byte, error)
	Decode(data []byte) (model.Log, error)
}

// jsonCodec stores the log as a human-readable JSON array.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Encode(events model.Log) ([]byte, error) {
	if events == nil {
		events = model.Log{}
	}
	return json.MarshalIndent(events, "", "  ")
}

func (jsonCodec) Decode(data []byte) (model.Log, error) {
	var events model.Log
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// gobCodec stores the log in a compact binary encoding.
type gobCodec struct{}

func (gobCodec) Name() string { return "bin" }

func (gobCodec) Encode(events model.Log) ([]byte, error) {
	var buf bytes.Buffer
	if events == nil {
		events = model.Log{}
	}
	if err := gob.NewEncoder(&buf).Encode(events); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (gobCodec) Decode(data []byte) (model.Log, error) {
	var events model.Log
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&events); err != nil {
		return nil, err
	}
	return events, nil
}
