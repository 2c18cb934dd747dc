package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orbitalbio/litscan/internal/models"
)

func TestWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "passages.jsonl")

	w, err := NewWriter[models.Passage](path)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	records := []*models.Passage{
		{StudyID: "PMC1", Section: "results", SentenceID: 0, Text: "first", Anchor: "PMC1#results-0"},
		{StudyID: "PMC1", Section: "results", SentenceID: 1, Text: "second", Anchor: "PMC1#results-1"},
		{StudyID: "PMC2", Section: "unknown", SentenceID: 0, Text: "third", Anchor: "PMC2#unknown-0"},
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	if w.Count() != 3 {
		t.Errorf("expected count 3, got %d", w.Count())
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	got, err := ReadAll[models.Passage](path)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	for i, rec := range got {
		if rec.Anchor != records[i].Anchor || rec.Text != records[i].Text {
			t.Errorf("record %d mismatch: got %+v, want %+v", i, rec, records[i])
		}
	}
}

func TestNewWriterTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "findings.jsonl")

	for i := 0; i < 2; i++ {
		w, err := NewWriter[models.Finding](path)
		if err != nil {
			t.Fatalf("NewWriter failed: %v", err)
		}
		if err := w.Write(&models.Finding{StudyID: "PMC1"}); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		w.Close()
	}

	got, err := ReadAll[models.Finding](path)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected rewrite to truncate, got %d records", len(got))
	}
}

func TestOpenAppendExtends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "findings.jsonl")

	w, err := NewWriter[models.Finding](path)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	if err := w.Write(&models.Finding{StudyID: "PMC1"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	w.Close()

	a, err := OpenAppend[models.Finding](path)
	if err != nil {
		t.Fatalf("OpenAppend failed: %v", err)
	}
	if err := a.Write(&models.Finding{StudyID: "PMC2"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	a.Close()

	got, err := ReadAll[models.Finding](path)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records after append, got %d", len(got))
	}
	if got[0].StudyID != "PMC1" || got[1].StudyID != "PMC2" {
		t.Errorf("unexpected order: %q, %q", got[0].StudyID, got[1].StudyID)
	}
}

func TestReadAllMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.jsonl")
	content := `{"study_id":"PMC1"}` + "\n" + "not json\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := ReadAll[models.Finding](path)
	if err == nil {
		t.Fatal("expected error for malformed line")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected error to name line 2, got: %v", err)
	}
}

func TestReadAllMissingFile(t *testing.T) {
	if _, err := ReadAll[models.Finding](filepath.Join(t.TempDir(), "absent.jsonl")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadAllSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gaps.jsonl")
	content := `{"study_id":"PMC1"}` + "\n\n" + `{"study_id":"PMC2"}` + "\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := ReadAll[models.Finding](path)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected blank line skipped, got %d records", len(got))
	}
}
