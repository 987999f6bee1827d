package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"wishplan/internal/model"
	"wishplan/internal/planner"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "planner.json"))
}

func seededState(t *testing.T) *model.AppState {
	t.Helper()
	st := model.DefaultState()
	st.Profile = model.Profile{Income: 2_000_000, FixedExpenses: 500_000, SavingInvest: 550_000, Emergency: 60_000}
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	planner.AddItem(st, "맥북", 2_000_000, 10, 1, now)
	planner.AddItem(st, "운동화", 150_000, 3, 4, now)
	if err := planner.RecordDeposit(st, 2, 30_000, "용돈", now); err != nil {
		t.Fatal(err)
	}
	return st
}

func TestLoad_MissingFileIsFirstRun(t *testing.T) {
	s := tempStore(t)

	st, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if st.Profile != (model.Profile{}) {
		t.Errorf("profile = %+v, want zeroed", st.Profile)
	}
	if len(st.Wishlist) != 0 || len(st.Transactions) != 0 {
		t.Error("expected empty wishlist and transactions")
	}
	if st.NextID != 1 {
		t.Errorf("NextID = %d, want 1", st.NextID)
	}
}

func TestLoad_MalformedFileFailsFast(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Load(); err == nil {
		t.Fatal("expected parse error for malformed state file")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := tempStore(t)
	st := seededState(t)

	if err := s.Save(st); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Profile != st.Profile {
		t.Errorf("profile = %+v, want %+v", loaded.Profile, st.Profile)
	}
	if len(loaded.Wishlist) != 2 || loaded.Wishlist[0].Name != "맥북" {
		t.Errorf("wishlist = %+v", loaded.Wishlist)
	}
	if loaded.NextID != st.NextID {
		t.Errorf("NextID = %d, want %d", loaded.NextID, st.NextID)
	}
}

// save(load()) applied twice must produce identical bytes: the document
// cannot drift from re-serialization.
func TestSaveLoad_ByteStable(t *testing.T) {
	s := tempStore(t)
	if err := s.Save(seededState(t)); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		st, err := s.Load()
		if err != nil {
			t.Fatal(err)
		}
		before, err := os.ReadFile(s.Path())
		if err != nil {
			t.Fatal(err)
		}
		if err := s.Save(st); err != nil {
			t.Fatal(err)
		}
		after, err := os.ReadFile(s.Path())
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(before, after) {
			t.Fatalf("cycle %d: re-serialization changed the document", i+1)
		}
	}
}

func TestEncode_PreservesNonASCII(t *testing.T) {
	st := seededState(t)

	data, err := Encode(st)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Contains(data, []byte("맥북")) {
		t.Error("non-ASCII item name was escaped instead of written literally")
	}
	if bytes.Contains(data, []byte(`\u`)) {
		t.Errorf("document contains unicode escapes:\n%s", data)
	}
}

func TestLoad_SeedsNextIDForLegacyFiles(t *testing.T) {
	s := tempStore(t)
	// A file written before the counter existed: items but no next_id.
	legacy := `{
  "profile": {"income": 0, "fixed_expenses": 0, "saving_invest": 0, "emergency": 0},
  "wishlist": [{"id": 7, "name": "태블릿", "target": 300000, "months": 3, "current": 0, "priority": 2, "created": "2026-01-03T09:00:00Z"}],
  "transactions": []
}`
	if err := os.WriteFile(s.Path(), []byte(legacy), 0o600); err != nil {
		t.Fatal(err)
	}

	st, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if st.NextID != 8 {
		t.Errorf("NextID = %d, want 8 (max id + 1)", st.NextID)
	}
}

func TestReset(t *testing.T) {
	s := tempStore(t)
	if err := s.Save(seededState(t)); err != nil {
		t.Fatal(err)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if s.Exists() {
		t.Error("state file still present after reset")
	}

	// Resetting again (nothing on disk) is fine.
	if err := s.Reset(); err != nil {
		t.Errorf("second reset: %v", err)
	}

	st, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(st.Wishlist) != 0 {
		t.Error("expected default state after reset")
	}
}

func TestExportTo(t *testing.T) {
	s := tempStore(t)
	st := seededState(t)
	if err := s.Save(st); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), ExportFilename)
	if err := s.ExportTo(out, st); err != nil {
		t.Fatalf("export: %v", err)
	}

	orig, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	exported, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(orig, exported) {
		t.Error("exported document differs from the state file")
	}
}
