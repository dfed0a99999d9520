package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/f1rstgear/gearflow/internal/domain/errors"
)

type oracleStub struct {
	reply string
	err   error
}

func (s oracleStub) Generate(context.Context, string) (string, error) {
	return s.reply, s.err
}

func TestOracleNormalizer_HappyPath(t *testing.T) {
	reply := "Here are your orders:\n" +
		`[{"Invoice":"FGRB1234","Name":"Mamun","Address":"Mirpur 13","Phone":"01866652777","Amount":650,"Note":"L (1)"},` +
		`{"Invoice":"FGRB1234","Name":"Khandokar mim","Address":"Shahjahanpur","Phone":"01849993495","Amount":650,"Note":"4XL (1)"}]` +
		"\n```\nL\t1\n4XL\t1\n```"

	n := NewOracleNormalizer(oracleStub{reply: reply}, 650, nil)
	res, err := n.Normalize(context.Background(), "raw text")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	if len(res.Batch) != 2 {
		t.Fatalf("expected 2 records, got %d", len(res.Batch))
	}
	if res.Batch[0].Name != "Khandokar mim" {
		t.Fatalf("expected canonical sort, got %q first", res.Batch[0].Name)
	}
	if res.Batch[0].Invoice == res.Batch[1].Invoice {
		t.Fatal("expected invoice collision from reply to be repaired")
	}
	if res.Sizes["L"] != 1 || res.Sizes["4XL"] != 1 {
		t.Fatalf("unexpected locally recomputed sizes: %v", res.Sizes)
	}
	if res.Summary == "" {
		t.Fatal("expected oracle summary to be surfaced")
	}
}

func TestOracleNormalizer_ClientError(t *testing.T) {
	n := NewOracleNormalizer(oracleStub{err: errors.New("boom")}, 650, nil)
	if _, err := n.Normalize(context.Background(), "raw"); err == nil {
		t.Fatal("expected error from failing client")
	}
}

func TestOracleNormalizer_ExtractionFailureKeepsSummary(t *testing.T) {
	n := NewOracleNormalizer(oracleStub{reply: "no structured data, sorry ```try again```"}, 650, nil)

	res, err := n.Normalize(context.Background(), "raw")
	if !errors.Is(err, domainErrors.ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
	if res == nil || res.Summary != "try again" {
		t.Fatalf("expected partial result with summary, got %+v", res)
	}
	if len(res.Batch) != 0 {
		t.Fatal("no records may be imported on extraction failure")
	}
}

func TestOracleNormalizer_SchemaMismatch(t *testing.T) {
	n := NewOracleNormalizer(oracleStub{reply: "[1, 2, 3]"}, 650, nil)
	if _, err := n.Normalize(context.Background(), "raw"); !errors.Is(err, domainErrors.ErrExtraction) {
		t.Fatalf("expected ErrExtraction for non-record array, got %v", err)
	}
}
