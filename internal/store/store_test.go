package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"wheelspin/internal/models"
)

func TestStore_EnsureExists(t *testing.T) {
	t.Run("creates an empty document when the file is absent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data", "wheels.json")
		s := New(path)

		if err := s.EnsureExists(); err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}

		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Expected data file to exist, but got %v", err)
		}
		if !strings.HasSuffix(string(b), "\n") {
			t.Error("Expected file to end with a newline")
		}
		doc, err := s.Read()
		if err != nil {
			t.Fatalf("Expected no error reading fresh file, but got %v", err)
		}
		if len(doc.Lists) != 0 {
			t.Errorf("Expected empty document, but got %d lists", len(doc.Lists))
		}
	})

	t.Run("never truncates an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wheels.json")
		existing := New(path)
		if err := existing.Write(models.Document{Lists: []models.Wheel{{ID: "w1", Name: "Kept"}}}); err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}

		s := New(path)
		if err := s.EnsureExists(); err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		doc, err := s.Read()
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		if len(doc.Lists) != 1 || doc.Lists[0].ID != "w1" {
			t.Errorf("Expected existing document to survive, but got %+v", doc)
		}
	})

	t.Run("is safe to call concurrently", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wheels.json")
		s := New(path)

		var wg sync.WaitGroup
		errs := make([]error, 16)
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs[i] = s.EnsureExists()
			}(i)
		}
		wg.Wait()

		for i, err := range errs {
			if err != nil {
				t.Fatalf("Caller %d got error %v", i, err)
			}
		}
		if _, err := s.Read(); err != nil {
			t.Fatalf("Expected readable file after concurrent init, but got %v", err)
		}
	})
}

func TestStore_Read(t *testing.T) {
	t.Run("reports corruption as ErrDataCorrupt", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wheels.json")
		if err := os.WriteFile(path, []byte("not json{"), 0o644); err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}

		_, err := New(path).Read()
		if !errors.Is(err, ErrDataCorrupt) {
			t.Errorf("Expected ErrDataCorrupt, but got %v", err)
		}
	})

	t.Run("treats a missing file as an empty document", func(t *testing.T) {
		doc, err := New(filepath.Join(t.TempDir(), "missing.json")).Read()
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		if len(doc.Lists) != 0 {
			t.Errorf("Expected empty document, but got %d lists", len(doc.Lists))
		}
	})
}

func TestStore_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheels.json")
	s := New(path)
	doc := models.Document{Lists: []models.Wheel{{ID: "w1", Name: "Colors", Items: []models.Item{{ID: "i1", Label: "Red", Weight: 2}}}}}

	if err := s.Write(doc); err != nil {
		t.Fatalf("Expected no error, but got %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected no error, but got %v", err)
	}
	out := string(b)
	if !strings.HasSuffix(out, "\n") {
		t.Error("Expected trailing newline")
	}
	if !strings.Contains(out, "  \"lists\"") {
		t.Error("Expected pretty-printed output")
	}

	got, err := s.Read()
	if err != nil {
		t.Fatalf("Expected no error, but got %v", err)
	}
	if got.Lists[0].Items[0].Weight != 2 {
		t.Errorf("Expected weight 2 after round-trip, but got %d", got.Lists[0].Items[0].Weight)
	}
}
