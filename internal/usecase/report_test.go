package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/f1rstgear/gearflow/internal/domain/model"
)

func batchOf(n int) model.OrderBatch {
	batch := make(model.OrderBatch, n)
	for i := range batch {
		batch[i] = model.OrderRecord{Name: "Customer", Amount: 650}
	}
	return batch
}

func TestBuildReport_TenOrders(t *testing.T) {
	date := time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC)

	report := BuildReport(batchOf(10), date, DefaultEconomics)

	if report.OrderCount != 10 {
		t.Fatalf("unexpected order count: %d", report.OrderCount)
	}
	if report.Revenue != 6500 {
		t.Fatalf("unexpected revenue: %d", report.Revenue)
	}
	if report.Cost != 5200 {
		t.Fatalf("unexpected cost: %d", report.Cost)
	}
	if report.Profit != 1300 {
		t.Fatalf("unexpected profit: %d", report.Profit)
	}
	// smallest N with 1300 + 130N >= 25000
	if report.OrdersNeededForTarget != 183 {
		t.Fatalf("unexpected orders needed: %d", report.OrdersNeededForTarget)
	}
}

func TestBuildReport_EmptyBatch(t *testing.T) {
	report := BuildReport(nil, time.Now(), DefaultEconomics)

	if report.OrderCount != 0 || report.Revenue != 0 || report.Cost != 0 || report.Profit != 0 {
		t.Fatalf("expected all-zero projection, got %+v", report)
	}
	// smallest N with 130N >= 25000
	if report.OrdersNeededForTarget != 193 {
		t.Fatalf("unexpected orders needed for empty batch: %d", report.OrdersNeededForTarget)
	}
}

func TestBuildReport_TargetAlreadyReached(t *testing.T) {
	report := BuildReport(batchOf(200), time.Now(), DefaultEconomics)

	if report.Profit < DefaultEconomics.ProfitTarget {
		t.Fatalf("test setup: profit %d below target", report.Profit)
	}
	if report.OrdersNeededForTarget != 0 {
		t.Fatalf("expected 0 additional orders, got %d", report.OrdersNeededForTarget)
	}
}

func TestBuildReport_ExactBoundary(t *testing.T) {
	// 25000/130 is not integral; check both sides of the boundary
	econ := Economics{UnitPrice: 650, UnitCost: 520, ProfitTarget: 1300}

	if got := BuildReport(batchOf(10), time.Now(), econ).OrdersNeededForTarget; got != 0 {
		t.Fatalf("profit equal to target should need 0 orders, got %d", got)
	}
	if got := BuildReport(batchOf(9), time.Now(), econ).OrdersNeededForTarget; got != 1 {
		t.Fatalf("one order short should need 1, got %d", got)
	}
}

func TestBuildReport_NonPositiveMargin(t *testing.T) {
	econ := Economics{UnitPrice: 500, UnitCost: 520, ProfitTarget: 25000}
	report := BuildReport(batchOf(3), time.Now(), econ)
	if report.OrdersNeededForTarget != 0 {
		t.Fatalf("non-positive margin must not produce a figure, got %d", report.OrdersNeededForTarget)
	}
}

func TestRenderReport(t *testing.T) {
	date := time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC)
	text := RenderReport(BuildReport(batchOf(10), date, DefaultEconomics))

	for _, want := range []string{
		"Date: 2024-07-05",
		"Total Orders: 10",
		"Expected Revenue: 6500 BDT",
		"Estimated Profit: 1300 BDT",
		"Additional orders needed: 183",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("report text missing %q:\n%s", want, text)
		}
	}
}
