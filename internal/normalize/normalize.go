// Package normalize turns raw message-listing payloads into slim record
// batches. It is a pure projection: no I/O, no store access.
package normalize

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/chatvault/chatvault/internal/record"
)

// envelope is the outer shape of a listing response. Group listings carry
// response.messages, direct-message listings carry response.direct_messages.
type envelope struct {
	Response struct {
		Messages       []record.RawMessage `json:"messages"`
		DirectMessages []record.RawMessage `json:"direct_messages"`
	} `json:"response"`
}

// Normalize extracts the message collection from payload and produces one
// slim record per raw message, keyed by synthetic key. A payload without a
// recognizable collection, or with an empty one, yields an empty batch.
//
// When sourceURL denotes a direct-message endpoint carrying an other_user_id
// query parameter, every record is stamped with isDirect and the partner id,
// whether or not the payload itself says so.
func Normalize(payload []byte, sourceURL string) record.Batch {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return record.Batch{}
	}

	msgs := env.Response.Messages
	if len(msgs) == 0 {
		msgs = env.Response.DirectMessages
	}
	if len(msgs) == 0 {
		return record.Batch{}
	}

	partnerID := directPartner(sourceURL)

	batch := make(record.Batch, len(msgs))
	for i := range msgs {
		rec := slim(&msgs[i])
		if rec.ID == "" {
			continue
		}
		if partnerID != "" {
			rec.IsDirect = true
			rec.DirectPartnerID = partnerID
		}
		batch[rec.Key()] = rec
	}
	return batch
}

// slim projects a raw message onto the stored shape. Empty optional
// collections are dropped, not carried as nulls.
func slim(m *record.RawMessage) *record.SlimRecord {
	groupID := m.GroupID
	if groupID == "" {
		groupID = m.ChatID
	}

	rec := &record.SlimRecord{
		ID:         m.ID,
		GroupID:    groupID,
		Text:       m.Text,
		CreatedAt:  m.CreatedAt,
		SenderID:   m.SenderID,
		SenderName: m.Name,
	}
	if len(m.Attachments) > 0 {
		raw, err := json.Marshal(m.Attachments)
		if err == nil {
			rec.Attachments = raw
		}
	}
	if len(m.FavoritedBy) > 0 {
		rec.FavoritedBy = m.FavoritedBy
	}
	return rec
}

// directPartner returns the other_user_id query parameter when sourceURL is
// a direct-message endpoint, else "".
func directPartner(sourceURL string) string {
	u, err := url.Parse(sourceURL)
	if err != nil {
		return ""
	}
	if !strings.Contains(u.Path, "direct_messages") {
		return ""
	}
	return u.Query().Get("other_user_id")
}
