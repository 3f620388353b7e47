package export

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/chatvault/chatvault/internal/record"
	"github.com/chatvault/chatvault/internal/store"
	"go.uber.org/zap"
)

func testExporter(t *testing.T) (*Exporter, *store.Handle, string) {
	t.Helper()
	dir := t.TempDir()
	h := store.NewHandle(filepath.Join(dir, "archive.db"))
	t.Cleanup(func() { _ = h.Close() })
	exportDir := filepath.Join(dir, "exports")
	return New(h, exportDir, "chatvault", zap.NewNop()), h, exportDir
}

func put(t *testing.T, h *store.Handle, recs ...*record.SlimRecord) {
	t.Helper()
	db, err := h.DB()
	if err != nil {
		t.Fatal(err)
	}
	batch := make(record.Batch, len(recs))
	for _, r := range recs {
		batch[r.Key()] = r
	}
	if err := db.PutBatch(batch); err != nil {
		t.Fatal(err)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(raw)
	if !strings.HasSuffix(content, "\r\n") {
		t.Errorf("export does not end with CRLF: %q", content)
	}
	return strings.Split(strings.TrimSuffix(content, "\r\n"), "\r\n")
}

func TestExportEmpty(t *testing.T) {
	e, _, exportDir := testExporter(t)

	_, _, err := e.Export("")
	if !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("Export() error = %v, want ErrNothingToExport", err)
	}

	// No artifact is left behind.
	entries, err := os.ReadDir(exportDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("export dir not empty: %v", entries)
	}
}

func TestExportQuoting(t *testing.T) {
	e, h, _ := testExporter(t)
	put(t, h, &record.SlimRecord{
		ID: "m1", GroupID: "g1", Text: `He said "hi"`, CreatedAt: 1700000000,
		SenderID: "u1", SenderName: "Alice",
	})

	path, n, err := e.Export("")
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if n != 1 {
		t.Errorf("records = %d, want 1", n)
	}

	lines := readLines(t, path)
	if len(lines) != 2 {
		t.Fatalf("export has %d lines, want 2: %v", len(lines), lines)
	}
	wantHeader := `"id","groupId","text","createdAt","senderId","senderName","attachments","favoritedBy","isDirect","directPartnerId"`
	if lines[0] != wantHeader {
		t.Errorf("header = %s, want %s", lines[0], wantHeader)
	}
	if !strings.Contains(lines[1], `"He said ""hi"""`) {
		t.Errorf("row does not escape quotes: %s", lines[1])
	}
	if !strings.Contains(lines[1], `"false"`) {
		t.Errorf("row omits isDirect rendering: %s", lines[1])
	}
}

func TestExportNewlinesAndCommas(t *testing.T) {
	e, h, _ := testExporter(t)
	put(t, h, &record.SlimRecord{
		ID: "m1", GroupID: "g1", Text: "line one\nline two, with comma",
		CreatedAt: 1, SenderID: "u1", SenderName: "Alice",
	})

	path, _, err := e.Export("")
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// The embedded newline stays inside its quoted field; only the two CRLF
	// row terminators exist.
	if got := strings.Count(string(raw), "\r\n"); got != 2 {
		t.Errorf("CRLF count = %d, want 2", got)
	}
	if !strings.Contains(string(raw), `"line one`+"\n"+`line two, with comma"`) {
		t.Errorf("field not preserved verbatim: %q", raw)
	}
}

func TestExportAllColumns(t *testing.T) {
	e, h, _ := testExporter(t)
	put(t, h, &record.SlimRecord{
		ID: "m1", GroupID: "g1", Text: "hi", CreatedAt: 1700000000,
		SenderID: "u1", SenderName: "Alice",
		Attachments: json.RawMessage(`[{"type":"image"}]`),
		FavoritedBy: []string{"u2"},
		IsDirect:    true, DirectPartnerID: "42",
	})

	path, _, err := e.Export("")
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	lines := readLines(t, path)
	want := `"m1","g1","hi","1700000000","u1","Alice","[{""type"":""image""}]","[""u2""]","true","42"`
	if lines[1] != want {
		t.Errorf("row = %s\nwant  %s", lines[1], want)
	}
}

func TestExportFileName(t *testing.T) {
	e, h, exportDir := testExporter(t)
	put(t, h, &record.SlimRecord{ID: "m1", GroupID: "g1", Text: "hi"})

	path, _, err := e.Export("")
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if filepath.Dir(path) != exportDir {
		t.Errorf("export landed in %s, want %s", filepath.Dir(path), exportDir)
	}
	pattern := regexp.MustCompile(`^chatvault_\d+\.csv$`)
	if !pattern.MatchString(filepath.Base(path)) {
		t.Errorf("file name %q does not match %v", filepath.Base(path), pattern)
	}
}

func TestExportDirOverride(t *testing.T) {
	e, h, _ := testExporter(t)
	put(t, h, &record.SlimRecord{ID: "m1", GroupID: "g1", Text: "hi"})

	override := t.TempDir()
	path, _, err := e.Export(override)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if filepath.Dir(path) != override {
		t.Errorf("export landed in %s, want override %s", filepath.Dir(path), override)
	}
}

func TestExportRowOrder(t *testing.T) {
	e, h, _ := testExporter(t)
	put(t, h,
		&record.SlimRecord{ID: "m3", GroupID: "g1", Text: "c"},
		&record.SlimRecord{ID: "m1", GroupID: "g1", Text: "a"},
		&record.SlimRecord{ID: "m2", GroupID: "g1", Text: "b"},
	)

	path, n, err := e.Export("")
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if n != 3 {
		t.Errorf("records = %d, want 3", n)
	}
	lines := readLines(t, path)
	for i, wantID := range []string{"m1", "m2", "m3"} {
		if !strings.HasPrefix(lines[i+1], `"`+wantID+`"`) {
			t.Errorf("row %d = %s, want id %s first", i+1, lines[i+1], wantID)
		}
	}
}
