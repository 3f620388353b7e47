// Package transport carries batches across the process boundary between the
// capture proxy and the archive daemon.
package transport

import (
	"encoding/json"

	archivev1 "github.com/chatvault/chatvault/gen/archive/v1"
	"github.com/chatvault/chatvault/internal/record"
)

// BatchType is the envelope tag receivers require before trusting a payload.
const BatchType = "MESSAGES_BATCH"

// RecordToProto converts a slim record to its wire form.
func RecordToProto(r *record.SlimRecord) *archivev1.Record {
	return &archivev1.Record{
		Id:              r.ID,
		GroupId:         r.GroupID,
		Text:            r.Text,
		CreatedAt:       r.CreatedAt,
		SenderId:        r.SenderID,
		SenderName:      r.SenderName,
		AttachmentsJson: []byte(r.Attachments),
		FavoritedBy:     r.FavoritedBy,
		IsDirect:        r.IsDirect,
		DirectPartnerId: r.DirectPartnerID,
	}
}

// RecordFromProto converts a wire record back to a slim record, keeping the
// empty-optional-fields-omitted invariant.
func RecordFromProto(p *archivev1.Record) *record.SlimRecord {
	r := &record.SlimRecord{
		ID:              p.GetId(),
		GroupID:         p.GetGroupId(),
		Text:            p.GetText(),
		CreatedAt:       p.GetCreatedAt(),
		SenderID:        p.GetSenderId(),
		SenderName:      p.GetSenderName(),
		IsDirect:        p.GetIsDirect(),
		DirectPartnerID: p.GetDirectPartnerId(),
	}
	if len(p.GetAttachmentsJson()) > 0 {
		r.Attachments = json.RawMessage(p.GetAttachmentsJson())
	}
	if len(p.GetFavoritedBy()) > 0 {
		r.FavoritedBy = p.GetFavoritedBy()
	}
	return r
}

// BatchToEntries flattens a batch into wire entries.
func BatchToEntries(batch record.Batch) []*archivev1.BatchEntry {
	entries := make([]*archivev1.BatchEntry, 0, len(batch))
	for key, rec := range batch {
		entries = append(entries, &archivev1.BatchEntry{
			Key:    key,
			Record: RecordToProto(rec),
		})
	}
	return entries
}
