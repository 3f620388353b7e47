package transport

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/chatvault/chatvault/internal/record"
)

func TestRecordRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rec  *record.SlimRecord
	}{
		{"minimal", &record.SlimRecord{
			ID: "m1", GroupID: "g1", Text: "hi", CreatedAt: 1700000000,
			SenderID: "u1", SenderName: "Alice",
		}},
		{"full", &record.SlimRecord{
			ID: "m2", GroupID: "g1", Text: `quoted "text"`, CreatedAt: 1700000001,
			SenderID: "u2", SenderName: "Bob",
			Attachments: json.RawMessage(`[{"type":"image"}]`),
			FavoritedBy: []string{"u1", "u3"},
			IsDirect:    true, DirectPartnerID: "42",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecordFromProto(RecordToProto(tt.rec))
			if !reflect.DeepEqual(got, tt.rec) {
				t.Errorf("round trip = %+v, want %+v", got, tt.rec)
			}
		})
	}
}

// Absent optional fields must come back absent, not as empty slices.
func TestRecordRoundTripKeepsOptionalsOmitted(t *testing.T) {
	rec := &record.SlimRecord{ID: "m1", GroupID: "g1"}
	got := RecordFromProto(RecordToProto(rec))
	if got.Attachments != nil {
		t.Errorf("Attachments = %v, want nil", got.Attachments)
	}
	if got.FavoritedBy != nil {
		t.Errorf("FavoritedBy = %v, want nil", got.FavoritedBy)
	}
}

func TestBatchToEntries(t *testing.T) {
	batch := record.Batch{}
	for _, id := range []string{"m1", "m2", "m3"} {
		rec := &record.SlimRecord{ID: id, GroupID: "g1"}
		batch[rec.Key()] = rec
	}

	entries := BatchToEntries(batch)
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	for _, e := range entries {
		rec := RecordFromProto(e.GetRecord())
		if e.GetKey() != rec.Key() {
			t.Errorf("entry key %q does not match record key %q", e.GetKey(), rec.Key())
		}
	}
}
