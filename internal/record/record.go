package record

import "encoding/json"

// KeyPrefix namespaces synthetic batch keys so message entries can never
// collide with other keys sharing the broadcast namespace.
const KeyPrefix = "msg_"

// SlimRecord is the minimized, storage-ready projection of a raw message.
// Optional fields are omitted entirely when empty to keep the stored payload
// small; the JSON form produced by Marshal is the canonical serialization
// fed to the codec.
type SlimRecord struct {
	ID              string          `json:"id"`
	GroupID         string          `json:"groupId"`
	Text            string          `json:"text"`
	CreatedAt       int64           `json:"createdAt"`
	SenderID        string          `json:"senderId"`
	SenderName      string          `json:"senderName"`
	Attachments     json.RawMessage `json:"attachments,omitempty"`
	FavoritedBy     []string        `json:"favoritedBy,omitempty"`
	IsDirect        bool            `json:"isDirect,omitempty"`
	DirectPartnerID string          `json:"directPartnerId,omitempty"`
}

// Key returns the synthetic batch key for this record.
func (r *SlimRecord) Key() string {
	return KeyPrefix + r.ID
}

// Batch is an in-flight collection of slim records produced from one
// intercepted network response, keyed by synthetic key. Batches are never
// persisted as a unit; only their members are.
type Batch map[string]*SlimRecord

// RawMessage mirrors the untrusted wire shape of a single message inside a
// listing response. Fields not carried into SlimRecord are dropped at
// normalization time.
type RawMessage struct {
	ID          string            `json:"id"`
	GroupID     string            `json:"group_id"`
	ChatID      string            `json:"chat_id"`
	SenderID    string            `json:"sender_id"`
	Name        string            `json:"name"`
	Text        string            `json:"text"`
	CreatedAt   int64             `json:"created_at"`
	Attachments []json.RawMessage `json:"attachments"`
	FavoritedBy []string          `json:"favorited_by"`
}
