package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timetrack-cli/timetrack/internal/model"
)

// Both codecs encode the same abstract model; the round-trip contract
// must hold regardless of which one a build activates.
func TestCodecRoundTrip(t *testing.T) {
	desc := "desc with, comma"
	events := model.Log{
		model.NewStart(&desc, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)),
		model.NewStop(nil, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
	}

	for _, codec := range []Codec{jsonCodec{}, gobCodec{}} {
		t.Run(codec.Name(), func(t *testing.T) {
			data, err := codec.Encode(events)
			require.NoError(t, err)

			decoded, err := codec.Decode(data)
			require.NoError(t, err)
			require.Len(t, decoded, len(events))
			for i := range events {
				assert.Equal(t, events[i].Kind, decoded[i].Kind)
				assert.True(t, decoded[i].Time.Equal(events[i].Time),
					"event %d time = %v, want %v", i, decoded[i].Time, events[i].Time)
				if events[i].Description == nil {
					assert.Nil(t, decoded[i].Description)
				} else {
					require.NotNil(t, decoded[i].Description)
					assert.Equal(t, *events[i].Description, *decoded[i].Description)
				}
			}
		})
	}
}

func TestCodecDecodeGarbage(t *testing.T) {
	for _, codec := range []Codec{jsonCodec{}, gobCodec{}} {
		t.Run(codec.Name(), func(t *testing.T) {
			_, err := codec.Decode([]byte("garbage"))
			assert.Error(t, err)
		})
	}
}

func TestCodecEncodeNilLog(t *testing.T) {
	for _, codec := range []Codec{jsonCodec{}, gobCodec{}} {
		t.Run(codec.Name(), func(t *testing.T) {
			data, err := codec.Encode(nil)
			require.NoError(t, err)
			decoded, err := codec.Decode(data)
			require.NoError(t, err)
			assert.Len(t, decoded, 0)
		})
	}
}
