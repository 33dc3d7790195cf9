package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"llm_request_events", "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Model: "m", Purpose: "chat", Success: true}); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	if err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Model: "m", Purpose: "chat", Success: true}); err != nil {
		t.Fatalf("append after reopen: %v", err)
	}
	events, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Sequence != 2 || events[1].Sequence != 1 {
		t.Errorf("sequence should continue across reopen: got %d, %d", events[0].Sequence, events[1].Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestDefaultDBPath(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		want := filepath.Join(t.TempDir(), "nested", "custom.db")
		t.Setenv("EDGEAI_DB", want)

		got, err := DefaultDBPath()
		if err != nil {
			t.Fatalf("DefaultDBPath: %v", err)
		}
		if got != want {
			t.Errorf("path = %q, want %q", got, want)
		}
	})

	t.Run("xdg data home", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("EDGEAI_DB", "")
		t.Setenv("XDG_DATA_HOME", dir)

		got, err := DefaultDBPath()
		if err != nil {
			t.Fatalf("DefaultDBPath: %v", err)
		}
		if want := filepath.Join(dir, "edgeai", "edgeai.db"); got != want {
			t.Errorf("path = %q, want %q", got, want)
		}
	})
}

func appendEvents(t *testing.T, repo EventRepo, events ...LLMRequestEventData) {
	t.Helper()
	for i, e := range events {
		if err := repo.AppendLLMRequest(context.Background(), e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
}

func TestLLMEvents_AppendAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	before := time.Now().Add(-time.Second)
	appendEvents(t, repo, LLMRequestEventData{
		Provider:     "gemini-3-flash-preview",
		Model:        "gemini-3-flash-preview",
		Purpose:      "chat",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    950,
		Success:      false,
		ErrorMessage: "credential rejected",
		RequestBody:  "[user]\nWhat is SOGIE?",
		ResponseBody: "",
	})

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected event")
	}
	if got.Purpose != "chat" || got.InputTokens != 120 || got.OutputTokens != 80 || got.LatencyMs != 950 {
		t.Errorf("unexpected event: %+v", got)
	}
	if got.Success {
		t.Error("expected success=false")
	}
	if got.ErrorMessage != "credential rejected" || got.RequestBody != "[user]\nWhat is SOGIE?" {
		t.Errorf("text fields not round-tripped: %+v", got)
	}
	if got.Timestamp.Before(before) {
		t.Errorf("timestamp %s is before %s", got.Timestamp, before)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMEvents_QueryFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendEvents(t, repo,
		LLMRequestEventData{Model: "a", Purpose: "chat", Success: true},
		LLMRequestEventData{Model: "a", Purpose: "chat-cli", Success: true},
		LLMRequestEventData{Model: "b", Purpose: "chat", Success: true},
		LLMRequestEventData{Model: "b", Purpose: "chat", Success: false},
	)

	tests := []struct {
		name    string
		opts    QueryOpts
		wantSeq []int64
	}{
		{"all newest first", QueryOpts{}, []int64{4, 3, 2, 1}},
		{"limit", QueryOpts{Limit: 2}, []int64{4, 3}},
		{"after", QueryOpts{After: 2}, []int64{4, 3}},
		{"before", QueryOpts{Before: 3}, []int64{2, 1}},
		{"purpose", QueryOpts{Purpose: "chat"}, []int64{4, 3, 1}},
		{"purpose and limit", QueryOpts{Purpose: "chat", Limit: 1}, []int64{4}},
		{"future window", QueryOpts{From: time.Now().Add(time.Hour)}, nil},
		{"open window", QueryOpts{To: time.Now().Add(time.Hour)}, []int64{4, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := repo.QueryLLMEvents(ctx, tt.opts)
			if err != nil {
				t.Fatalf("query: %v", err)
			}
			if len(events) != len(tt.wantSeq) {
				t.Fatalf("expected %d events, got %d", len(tt.wantSeq), len(events))
			}
			for i, e := range events {
				if e.Sequence != tt.wantSeq[i] {
					t.Errorf("events[%d].Sequence = %d, want %d", i, e.Sequence, tt.wantSeq[i])
				}
			}
		})
	}
}

func TestLLMEvents_Usage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendEvents(t, repo,
		LLMRequestEventData{Model: "gemini-3-flash-preview", Purpose: "chat", InputTokens: 100, OutputTokens: 50, LatencyMs: 100, Success: true},
		LLMRequestEventData{Model: "gemini-3-flash-preview", Purpose: "chat", InputTokens: 200, OutputTokens: 70, LatencyMs: 300, Success: false},
		LLMRequestEventData{Model: "gpt-4o-mini", Purpose: "chat-cli", InputTokens: 10, OutputTokens: 5, LatencyMs: 50, Success: true},
	)

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	chat := byPurpose[0]
	if chat.Purpose != "chat" || chat.Calls != 2 || chat.Failures != 1 {
		t.Errorf("unexpected chat usage: %+v", chat)
	}
	if chat.InputTokens != 300 || chat.OutputTokens != 120 || chat.AvgLatencyMs != 200 {
		t.Errorf("unexpected chat totals: %+v", chat)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 models, got %d", len(byModel))
	}
	if byModel[0].Model != "gemini-3-flash-preview" || byModel[0].Calls != 2 || byModel[0].InputTokens != 300 {
		t.Errorf("unexpected model usage: %+v", byModel[0])
	}
}

func TestLLMEvents_EmptyUsage(t *testing.T) {
	s := openTestStore(t)

	byPurpose, err := s.EventRepo().LLMUsageByPurpose(context.Background())
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 0 {
		t.Fatalf("expected no usage, got %+v", byPurpose)
	}
}
