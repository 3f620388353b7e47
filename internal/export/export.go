// Package export serializes the full archive into CSV artifacts.
package export

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chatvault/chatvault/internal/record"
	"github.com/chatvault/chatvault/internal/store"
	"go.uber.org/zap"
)

// ErrNothingToExport reports an export request against a store with zero
// valid records. It is a user-facing notice, not a failure.
var ErrNothingToExport = errors.New("nothing to export")

// header is the fixed 10-column CSV header.
var header = []string{
	"id", "groupId", "text", "createdAt", "senderId", "senderName",
	"attachments", "favoritedBy", "isDirect", "directPartnerId",
}

// Exporter reads the whole store and writes timestamped CSV files.
type Exporter struct {
	handle *store.Handle
	dir    string
	prefix string
	logger *zap.Logger
}

// New creates an exporter writing <prefix>_<unix-millis>.csv files into dir.
func New(handle *store.Handle, dir, prefix string, logger *zap.Logger) *Exporter {
	return &Exporter{handle: handle, dir: dir, prefix: prefix, logger: logger}
}

// Export walks every valid record into a new CSV file and returns its path
// and row count. Corrupt entries are skipped by the store layer; a store
// with zero valid records returns ErrNothingToExport and writes no file.
// An explicit non-empty dir overrides the configured export directory.
func (e *Exporter) Export(dir string) (string, int64, error) {
	db, err := e.handle.DB()
	if err != nil {
		return "", 0, err
	}

	if dir == "" {
		dir = e.dir
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", 0, fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%d.csv", e.prefix, time.Now().UnixMilli()))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0600)
	if err != nil {
		return "", 0, fmt.Errorf("create export file: %w", err)
	}
	w := bufio.NewWriter(f)

	cleanup := func() {
		_ = f.Close()
		_ = os.Remove(path)
	}

	if _, err := w.WriteString(row(header)); err != nil {
		cleanup()
		return "", 0, fmt.Errorf("write header: %w", err)
	}

	var n int64
	for rec, err := range db.All() {
		if err != nil {
			cleanup()
			return "", 0, err
		}
		if _, err := w.WriteString(row(fields(rec))); err != nil {
			cleanup()
			return "", 0, fmt.Errorf("write row: %w", err)
		}
		n++
	}

	if n == 0 {
		cleanup()
		return "", 0, ErrNothingToExport
	}

	if err := w.Flush(); err != nil {
		cleanup()
		return "", 0, fmt.Errorf("flush export: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", 0, fmt.Errorf("close export: %w", err)
	}

	e.logger.Info("export written", zap.String("path", path), zap.Int64("records", n))
	return path, n, nil
}

// fields renders one record as its 10 column values. Absent optional fields
// render as empty strings; isDirect always renders true/false.
func fields(rec *record.SlimRecord) []string {
	attachments := ""
	if len(rec.Attachments) > 0 {
		attachments = string(rec.Attachments)
	}
	favorited := ""
	if len(rec.FavoritedBy) > 0 {
		if raw, err := json.Marshal(rec.FavoritedBy); err == nil {
			favorited = string(raw)
		}
	}
	return []string{
		rec.ID,
		rec.GroupID,
		rec.Text,
		strconv.FormatInt(rec.CreatedAt, 10),
		rec.SenderID,
		rec.SenderName,
		attachments,
		favorited,
		strconv.FormatBool(rec.IsDirect),
		rec.DirectPartnerID,
	}
}

// row quotes every field, doubling embedded quotes, and terminates with CRLF.
func row(cols []string) string {
	var b strings.Builder
	for i, col := range cols {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(col, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteString("\r\n")
	return b.String()
}
