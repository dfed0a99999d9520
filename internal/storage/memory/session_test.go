package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/f1rstgear/gearflow/internal/domain/model"
)

func TestSessionStore_EmptyGet(t *testing.T) {
	store := NewSessionStore()
	session := store.Get(1)
	if session.Batch != nil || session.Report != nil || session.JSON != "" {
		t.Fatalf("expected zero session, got %+v", session)
	}
}

func TestSessionStore_ReplaceBatchKeepsReport(t *testing.T) {
	store := NewSessionStore()

	store.ReplaceReport(1, model.PerformanceReport{OrderCount: 10, Profit: 1300}, "report text")
	store.ReplaceBatch(1, model.OrderBatch{{Name: "Amin"}}, `[{"Name":"Amin"}]`, model.SizeSummary{"L": 1}, "summary")

	session := store.Get(1)
	if len(session.Batch) != 1 || session.Batch[0].Name != "Amin" {
		t.Fatalf("unexpected batch: %+v", session.Batch)
	}
	if session.Report == nil || session.Report.Profit != 1300 {
		t.Fatalf("report must survive a batch replacement: %+v", session.Report)
	}
	if session.ReportText != "report text" {
		t.Fatalf("unexpected report text: %q", session.ReportText)
	}
}

func TestSessionStore_ReplaceReportKeepsBatch(t *testing.T) {
	store := NewSessionStore()

	store.ReplaceBatch(1, model.OrderBatch{{Name: "Amin"}}, "[]", nil, "")
	store.ReplaceReport(1, model.PerformanceReport{OrderCount: 1}, "text")

	session := store.Get(1)
	if len(session.Batch) != 1 {
		t.Fatalf("batch must survive a report replacement: %+v", session.Batch)
	}
	if session.Report == nil || session.Report.OrderCount != 1 {
		t.Fatalf("unexpected report: %+v", session.Report)
	}
}

func TestSessionStore_FullReplace(t *testing.T) {
	store := NewSessionStore()

	store.ReplaceBatch(1, model.OrderBatch{{Name: "Amin"}, {Name: "Zara"}}, "first", model.SizeSummary{"L": 2}, "s1")
	store.ReplaceBatch(1, model.OrderBatch{{Name: "Rafi"}}, "second", model.SizeSummary{"M": 1}, "s2")

	session := store.Get(1)
	if len(session.Batch) != 1 || session.Batch[0].Name != "Rafi" {
		t.Fatalf("expected full replacement, got %+v", session.Batch)
	}
	if session.JSON != "second" || session.Sizes["M"] != 1 {
		t.Fatalf("expected derived values replaced, got %q %v", session.JSON, session.Sizes)
	}
}

func TestSessionStore_PerOperatorIsolation(t *testing.T) {
	store := NewSessionStore()

	store.ReplaceBatch(1, model.OrderBatch{{Name: "Amin"}}, "a", nil, "")
	store.ReplaceBatch(2, model.OrderBatch{{Name: "Zara"}}, "z", nil, "")

	if got := store.Get(1).Batch[0].Name; got != "Amin" {
		t.Fatalf("operator 1 session polluted: %q", got)
	}
	if got := store.Get(2).Batch[0].Name; got != "Zara" {
		t.Fatalf("operator 2 session polluted: %q", got)
	}
}

func TestSessionStore_UpdatedAt(t *testing.T) {
	store := NewSessionStore()
	fixed := time.Date(2024, 7, 5, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	store.ReplaceBatch(1, nil, "", nil, "")
	if got := store.Get(1).UpdatedAt; !got.Equal(fixed) {
		t.Fatalf("unexpected UpdatedAt: %v", got)
	}
}

func TestSessionStore_ConcurrentAccess(t *testing.T) {
	store := NewSessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			store.ReplaceBatch(int64(n%4), model.OrderBatch{{Name: "X"}}, "j", nil, "")
			_ = store.Get(int64(n % 4))
		}(i)
	}
	wg.Wait()
}
