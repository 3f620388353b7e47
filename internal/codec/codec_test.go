package codec

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/chatvault/chatvault/internal/record"
)

func testCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := New()
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestRoundTrip(t *testing.T) {
	c := testCodec(t)

	tests := []struct {
		name string
		rec  *record.SlimRecord
	}{
		{"minimal", &record.SlimRecord{
			ID: "1", GroupID: "g1", Text: "hello", CreatedAt: 1700000000,
			SenderID: "s1", SenderName: "Alice",
		}},
		{"with optionals", &record.SlimRecord{
			ID: "2", GroupID: "g1", Text: `He said "hi"`, CreatedAt: 1700000001,
			SenderID: "s2", SenderName: "Bob",
			Attachments: json.RawMessage(`[{"type":"image","url":"https://x/y.png"}]`),
			FavoritedBy: []string{"s1", "s3"},
			IsDirect:    true, DirectPartnerID: "42",
		}},
		{"unicode text", &record.SlimRecord{
			ID: "3", GroupID: "g2", Text: "héllo wörld 🦆", CreatedAt: 1700000002,
			SenderID: "s3", SenderName: "Чебурашка",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := c.Compress(tt.rec)
			if err != nil {
				t.Fatalf("Compress() error = %v", err)
			}
			got, err := c.Decompress(payload)
			if err != nil {
				t.Fatalf("Decompress() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.rec) {
				t.Errorf("round trip = %+v, want %+v", got, tt.rec)
			}
		})
	}
}

// Empty optional fields must be absent from the serialized form entirely,
// not carried as nulls, and must come back absent after a round trip.
func TestOptionalFieldsOmitted(t *testing.T) {
	c := testCodec(t)

	rec := &record.SlimRecord{
		ID: "1", GroupID: "g1", Text: "hi", CreatedAt: 1, SenderID: "s", SenderName: "n",
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"attachments", "favoritedBy", "isDirect", "directPartnerId"} {
		if strings.Contains(string(raw), field) {
			t.Errorf("serialized form contains empty optional field %q: %s", field, raw)
		}
	}

	payload, err := c.Compress(rec)
	if err != nil {
		t.Fatal(err)
	}
	got, err := c.Decompress(payload)
	if err != nil {
		t.Fatal(err)
	}
	if got.Attachments != nil || got.FavoritedBy != nil || got.IsDirect || got.DirectPartnerID != "" {
		t.Errorf("optional fields not empty after round trip: %+v", got)
	}
}

func TestDecompressCorrupt(t *testing.T) {
	c := testCodec(t)

	good, err := c.Compress(&record.SlimRecord{ID: "1"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		payload string
	}{
		{"not base64", "!!!not-base64!!!"},
		{"not zstd", "aGVsbG8gd29ybGQ="},
		{"truncated", good[:len(good)/2]},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.Decompress(tt.payload); err == nil {
				t.Errorf("Decompress(%q) should fail", tt.payload)
			}
		})
	}
}

func TestCompressedIsOpaqueString(t *testing.T) {
	c := testCodec(t)

	payload, err := c.Compress(&record.SlimRecord{ID: "1", Text: strings.Repeat("same text ", 200)})
	if err != nil {
		t.Fatal(err)
	}
	// Base64 keeps the payload safe in a TEXT column.
	for _, r := range payload {
		if r > 127 {
			t.Fatalf("payload contains non-ASCII byte %q", r)
		}
	}
}
