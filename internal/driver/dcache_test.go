package driver

import (
	"crypto/sha256"
	"os"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"rawfix/internal/diag"
	"rawfix/internal/source"
)

// rewriteRaw overwrites a cache entry bypassing Put, which always stamps the
// current schema version.
func rewriteRaw(c *DiskCache, key [32]byte, payload *DiskPayload) error {
	data, err := msgpack.Marshal(payload)
	if err != nil {
		return err
	}
	return os.WriteFile(c.pathFor(key), data, 0o644)
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}

	key := sha256.Sum256([]byte(`let s = "hi";`))

	if _, ok, err := cache.Get(key); err != nil || ok {
		t.Fatalf("fresh cache must miss, got ok=%v err=%v", ok, err)
	}

	bag := diag.NewBag(10)
	d := diag.New(diag.SevInfo, diag.RefAssistAvailable,
		source.Span{File: 0, Start: 8, End: 12}, "1 string literal assists available")
	d = d.WithFixSuggestion(diag.Fix{
		ID:            "make-raw-string",
		Title:         "make raw string",
		Kind:          diag.FixKindRefactorRewrite,
		Applicability: diag.FixApplicabilityAlwaysSafe,
		Edits: []diag.TextEdit{{
			Span:    source.Span{File: 0, Start: 8, End: 12},
			NewText: `r#"hi"#`,
			OldText: `"hi"`,
		}},
	})
	bag.Add(d)

	if err := cache.Put(key, snapshotDiagnostics("a.rs", bag)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	payload, ok, err := cache.Get(key)
	if err != nil || !ok {
		t.Fatalf("Get after Put: ok=%v err=%v", ok, err)
	}
	if payload.Path != "a.rs" || len(payload.Diagnostics) != 1 {
		t.Fatalf("payload = %+v", payload)
	}

	// Restore under a different file ID; spans must rebind.
	restored := diag.NewBag(10)
	restoreDiagnostics(restored, source.FileID(7), payload)
	if restored.Len() != 1 {
		t.Fatalf("restored %d diagnostics, want 1", restored.Len())
	}
	rd := restored.Items()[0]
	if rd.Primary.File != 7 || rd.Primary.Start != 8 || rd.Primary.End != 12 {
		t.Fatalf("primary span = %v", rd.Primary)
	}
	if len(rd.Fixes) != 1 {
		t.Fatalf("fixes = %+v", rd.Fixes)
	}
	rf := rd.Fixes[0]
	if rf.ID != "make-raw-string" || rf.Kind != diag.FixKindRefactorRewrite {
		t.Fatalf("fix = %+v", rf)
	}
	if len(rf.Edits) != 1 || rf.Edits[0].Span.File != 7 || rf.Edits[0].NewText != `r#"hi"#` {
		t.Fatalf("edits = %+v", rf.Edits)
	}
}

func TestDiskCacheSchemaMismatch(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}

	key := sha256.Sum256([]byte("stale"))
	payload := &DiskPayload{Path: "stale.rs"}
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// Rewrite the entry with a bumped schema; Get must treat it as a miss.
	payload.Schema = diskCacheSchemaVersion + 1
	if err := rewriteRaw(cache, key, payload); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if _, ok, err := cache.Get(key); err != nil || ok {
		t.Fatalf("schema mismatch must miss, got ok=%v err=%v", ok, err)
	}
}

func TestDiskCacheNilReceiver(t *testing.T) {
	var cache *DiskCache
	key := sha256.Sum256([]byte("x"))

	if err := cache.Put(key, &DiskPayload{}); err != nil {
		t.Fatalf("nil Put must be a no-op, got %v", err)
	}
	if _, ok, err := cache.Get(key); err != nil || ok {
		t.Fatalf("nil Get must miss, got ok=%v err=%v", ok, err)
	}
}

func TestAnalyzeUsesCache(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	opts := &Options{Cache: cache}
	content := []byte(`let s = "hi";`)

	first, err := AnalyzeBytes("test.rs", content, opts)
	if err != nil {
		t.Fatalf("first analysis: %v", err)
	}
	if first.FromCache {
		t.Fatalf("first analysis must compute, not hit the cache")
	}

	second, err := AnalyzeBytes("test.rs", content, opts)
	if err != nil {
		t.Fatalf("second analysis: %v", err)
	}
	if !second.FromCache {
		t.Fatalf("second analysis of identical content must hit the cache")
	}
	if second.Bag.Len() != first.Bag.Len() {
		t.Fatalf("cached bag has %d diagnostics, computed had %d", second.Bag.Len(), first.Bag.Len())
	}
}
