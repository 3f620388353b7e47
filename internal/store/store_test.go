package store

import (
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/chatvault/chatvault/internal/record"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if _, err := db.Migrate(); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return db
}

func rec(id, text string) *record.SlimRecord {
	return &record.SlimRecord{
		ID: id, GroupID: "g1", Text: text, CreatedAt: 1700000000,
		SenderID: "u1", SenderName: "Alice",
	}
}

func batchOf(recs ...*record.SlimRecord) record.Batch {
	b := make(record.Batch, len(recs))
	for _, r := range recs {
		b[r.Key()] = r
	}
	return b
}

func TestMigrateIdempotent(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	res, err := db.Migrate()
	if err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if !res.Changed || res.Dirty {
		t.Errorf("first Migrate() = %+v, want changed clean", res)
	}
	if res.Version != 2 {
		t.Errorf("Version = %d, want 2", res.Version)
	}

	res, err = db.Migrate()
	if err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}
	if res.Changed {
		t.Error("second Migrate() reported changes")
	}
}

func TestPutBatchIdempotent(t *testing.T) {
	db := testDB(t)

	batch := batchOf(rec("m1", "hello"), rec("m2", "hi"))
	for i := 0; i < 3; i++ {
		if err := db.PutBatch(batch); err != nil {
			t.Fatalf("PutBatch() #%d error = %v", i+1, err)
		}
	}

	n, err := db.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Count() = %d, want 2", n)
	}
}

func TestPutBatchLastWriterWins(t *testing.T) {
	db := testDB(t)

	if err := db.PutBatch(batchOf(rec("m1", "first"))); err != nil {
		t.Fatal(err)
	}
	if err := db.PutBatch(batchOf(rec("m1", "second"))); err != nil {
		t.Fatal(err)
	}

	got, err := db.Get("m1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Text != "second" {
		t.Errorf("Text = %q, want %q", got.Text, "second")
	}
	n, _ := db.Count()
	if n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}
}

// Two stores receiving the same batches in opposite order must converge to
// the same contents.
func TestOrderIndependence(t *testing.T) {
	a := batchOf(rec("m1", "v1"), rec("m2", "v1"))
	b := batchOf(rec("m2", "v2"), rec("m3", "v2"))

	dbAB := testDB(t)
	for _, batch := range []record.Batch{a, b} {
		if err := dbAB.PutBatch(batch); err != nil {
			t.Fatal(err)
		}
	}
	dbBA := testDB(t)
	for _, batch := range []record.Batch{b, a} {
		if err := dbBA.PutBatch(batch); err != nil {
			t.Fatal(err)
		}
	}

	wantKeys := map[string]bool{"m1": true, "m2": true, "m3": true}
	for name, db := range map[string]*DB{"ab": dbAB, "ba": dbBA} {
		n, err := db.Count()
		if err != nil {
			t.Fatalf("%s: Count() error = %v", name, err)
		}
		if n != 3 {
			t.Errorf("%s: Count() = %d, want 3", name, n)
		}
		for rec, err := range db.All() {
			if err != nil {
				t.Fatalf("%s: All() error = %v", name, err)
			}
			if !wantKeys[rec.ID] {
				t.Errorf("%s: unexpected record %q", name, rec.ID)
			}
		}
	}
}

func TestPutBatchEmpty(t *testing.T) {
	db := testDB(t)
	if err := db.PutBatch(record.Batch{}); err != nil {
		t.Fatalf("PutBatch(empty) error = %v", err)
	}
	n, _ := db.Count()
	if n != 0 {
		t.Errorf("Count() = %d, want 0", n)
	}
}

func TestCorruptionIsolation(t *testing.T) {
	db := testDB(t)

	batch := make(record.Batch)
	for _, id := range []string{"m0", "m1", "m2", "m3", "m5", "m6", "m7", "m8", "m9"} {
		r := rec(id, "text "+id)
		batch[r.Key()] = r
	}
	if err := db.PutBatch(batch); err != nil {
		t.Fatal(err)
	}
	// Plant a payload that is not valid compressed data.
	if _, err := db.Exec(`INSERT INTO records (key, payload) VALUES (?, ?)`,
		"m4", "this is not a stored payload"); err != nil {
		t.Fatal(err)
	}

	var corruptKeys []string
	db.OnCorrupt = func(key string, err error) {
		if err == nil {
			t.Error("OnCorrupt called with nil error")
		}
		corruptKeys = append(corruptKeys, key)
	}

	// The bad entry still counts: Count never decodes payloads.
	n, err := db.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 10 {
		t.Errorf("Count() = %d, want 10", n)
	}

	var seen []string
	for rec, err := range db.All() {
		if err != nil {
			t.Fatalf("All() error = %v", err)
		}
		seen = append(seen, rec.ID)
	}
	if len(seen) != 9 {
		t.Errorf("All() yielded %d records, want 9: %v", len(seen), seen)
	}
	for _, id := range seen {
		if id == "m4" {
			t.Error("corrupt entry m4 surfaced from All()")
		}
	}
	if len(corruptKeys) != 1 || corruptKeys[0] != "m4" {
		t.Errorf("OnCorrupt keys = %v, want [m4]", corruptKeys)
	}

	sample, err := db.FirstValidSample()
	if err != nil {
		t.Fatalf("FirstValidSample() error = %v", err)
	}
	if sample == nil || sample.ID != "m0" {
		t.Errorf("FirstValidSample() = %+v, want m0", sample)
	}
}

func TestFirstValidSampleEmpty(t *testing.T) {
	db := testDB(t)
	sample, err := db.FirstValidSample()
	if err != nil {
		t.Fatalf("FirstValidSample() error = %v", err)
	}
	if sample != nil {
		t.Errorf("FirstValidSample() = %+v, want nil", sample)
	}
}

func TestFirstValidSampleSkipsLeadingCorruption(t *testing.T) {
	db := testDB(t)
	if _, err := db.Exec(`INSERT INTO records (key, payload) VALUES (?, ?)`,
		"a0", "junk"); err != nil {
		t.Fatal(err)
	}
	if err := db.PutBatch(batchOf(rec("m1", "ok"))); err != nil {
		t.Fatal(err)
	}

	sample, err := db.FirstValidSample()
	if err != nil {
		t.Fatalf("FirstValidSample() error = %v", err)
	}
	if sample == nil || sample.ID != "m1" {
		t.Errorf("FirstValidSample() = %+v, want m1", sample)
	}
}

func TestGetMissing(t *testing.T) {
	db := testDB(t)
	if _, err := db.Get("nope"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Get(missing) error = %v, want sql.ErrNoRows", err)
	}
}

func TestHandleLazyOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "archive.db")
	h := NewHandle(path)
	defer func() { _ = h.Close() }()

	// Concurrent first uses must collapse onto one connection.
	var wg sync.WaitGroup
	dbs := make([]*DB, 8)
	errs := make([]error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			dbs[i], errs[i] = h.DB()
		}(i)
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		if errs[i] != nil {
			t.Fatalf("DB() #%d error = %v", i, errs[i])
		}
		if dbs[i] != dbs[0] {
			t.Errorf("DB() #%d returned a different connection", i)
		}
	}

	if err := dbs[0].PutBatch(batchOf(rec("m1", "hi"))); err != nil {
		t.Fatalf("PutBatch() error = %v", err)
	}
}

func TestHandleFailedOpenRetries(t *testing.T) {
	dir := t.TempDir()
	// A directory where the database file should be makes the open fail.
	h := NewHandle(dir)
	if _, err := h.DB(); err == nil {
		t.Fatal("DB() on a directory path should fail")
	}

	// Repointing is not possible, but a second call must attempt the open
	// again rather than return a cached failure.
	if _, err := h.DB(); err == nil {
		t.Fatal("second DB() should fail the same way")
	}
}
