package codec

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/chatvault/chatvault/internal/record"
	"github.com/klauspost/compress/zstd"
)

// Codec turns a SlimRecord into the opaque string payload stored per key and
// back. The pipeline is JSON -> zstd -> base64, so the stored form survives a
// TEXT column round-trip byte for byte.
type Codec struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// New creates a codec with shared, concurrency-safe encoder and decoder.
func New() (*Codec, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}
	return &Codec{enc: enc, dec: dec}, nil
}

// Compress serializes and compresses a record into an opaque string.
func (c *Codec) Compress(r *record.SlimRecord) (string, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("marshal record %s: %w", r.ID, err)
	}
	packed := c.enc.EncodeAll(raw, nil)
	return base64.StdEncoding.EncodeToString(packed), nil
}

// Decompress reverses Compress. Any failure in the chain (bad base64, bad
// zstd frame, bad JSON) is reported as a corruption error; callers on read
// paths skip the record rather than abort.
func (c *Codec) Decompress(payload string) (*record.SlimRecord, error) {
	packed, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	raw, err := c.dec.DecodeAll(packed, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}
	var r record.SlimRecord
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	return &r, nil
}
