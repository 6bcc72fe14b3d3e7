package blueprint

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beltbalance/entities"
	"github.com/katalvlaran/beltbalance/geom"
)

// encode mirrors what the Factorio client produces: a version byte,
// base64 of a zlib-deflated JSON document.
func encode(t *testing.T, json string) string {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write([]byte(json))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return "0" + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestDecodeSingleBelt(t *testing.T) {
	bp := encode(t, `{
		"blueprint": {
			"entities": [
				{"entity_number": 1, "name": "transport-belt", "position": {"x": 0.5, "y": 0.5}, "direction": 4}
			]
		}
	}`)

	ents, err := Decode(bp)
	require.NoError(t, err)
	require.Len(t, ents, 1)

	belt, ok := ents[0].(entities.Belt)
	require.True(t, ok, "expected entities.Belt, got %T", ents[0])
	require.Equal(t, 15.0, belt.Throughput)
	require.Equal(t, geom.Position{X: 0, Y: 0}, belt.Position)
}

func TestDecodeRecognizesBeltTiers(t *testing.T) {
	bp := encode(t, `{
		"blueprint": {
			"entities": [
				{"entity_number": 1, "name": "transport-belt", "position": {"x": 0, "y": 0}, "direction": 0},
				{"entity_number": 2, "name": "fast-transport-belt", "position": {"x": 1, "y": 0}, "direction": 0},
				{"entity_number": 3, "name": "express-transport-belt", "position": {"x": 2, "y": 0}, "direction": 0}
			]
		}
	}`)

	ents, err := Decode(bp)
	require.NoError(t, err)
	want := []float64{15, 30, 45}
	for i, e := range ents {
		require.Equal(t, want[i], e.Base().Throughput, "entity %d", i)
	}
}

func TestDecodeSkipsUnrecognizedEntities(t *testing.T) {
	bp := encode(t, `{
		"blueprint": {
			"entities": [
				{"entity_number": 1, "name": "transport-belt", "position": {"x": 0, "y": 0}, "direction": 0},
				{"entity_number": 2, "name": "small-lamp", "position": {"x": 1, "y": 0}, "direction": 0}
			]
		}
	}`)

	ents, err := Decode(bp)
	require.NoError(t, err)
	require.Len(t, ents, 1, "expected unsupported entity to be silently skipped")
}

func TestDecodeSplitterDecodesPriority(t *testing.T) {
	bp := encode(t, `{
		"blueprint": {
			"entities": [
				{"entity_number": 1, "name": "splitter", "position": {"x": 0.5, "y": 1.0}, "direction": 4,
				 "input_priority": "left", "output_priority": "right"}
			]
		}
	}`)

	ents, err := Decode(bp)
	require.NoError(t, err)

	splitter, ok := ents[0].(entities.Splitter)
	require.True(t, ok, "expected entities.Splitter, got %T", ents[0])
	require.Equal(t, entities.PriorityLeft, splitter.InputPriority)
	require.Equal(t, entities.PriorityRight, splitter.OutputPriority)
}

func TestDecodeDuplicateEntityNumberIsError(t *testing.T) {
	bp := encode(t, `{
		"blueprint": {
			"entities": [
				{"entity_number": 1, "name": "transport-belt", "position": {"x": 0, "y": 0}, "direction": 0},
				{"entity_number": 1, "name": "transport-belt", "position": {"x": 1, "y": 0}, "direction": 0}
			]
		}
	}`)

	_, err := Decode(bp)
	require.Error(t, err)
}

func TestDecodeEmptyStringIsError(t *testing.T) {
	_, err := Decode("")
	require.Error(t, err)
}

func TestDecodeMalformedBase64IsError(t *testing.T) {
	_, err := Decode("0not-valid-base64!!!")
	require.Error(t, err)
}

func TestDecodeEmptyBlueprintProducesNoEntities(t *testing.T) {
	bp := encode(t, `{"blueprint": {"entities": []}}`)
	ents, err := Decode(bp)
	require.NoError(t, err)
	require.Empty(t, ents)
}
