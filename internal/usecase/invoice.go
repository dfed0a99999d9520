package usecase

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/f1rstgear/gearflow/internal/domain/model"
)

var (
	invoiceRngMu sync.Mutex
	invoiceRng   = rand.New(rand.NewSource(time.Now().UnixNano()))

	invoiceRE = regexp.MustCompile(`^` + model.InvoicePrefix + `\d{4}$`)
)

// invoiceMinter hands out 4-digit invoice numbers distinct within one batch.
// Numbers are not unique across runs; a collision inside a batch is. The
// 4-digit space caps a batch at 10000 distinct invoices; past that, next
// wraps around and numbers repeat.
type invoiceMinter struct {
	used map[int]struct{}
}

func newInvoiceMinter() *invoiceMinter {
	return &invoiceMinter{used: map[int]struct{}{}}
}

func (m *invoiceMinter) next() string {
	invoiceRngMu.Lock()
	start := invoiceRng.Intn(10000)
	invoiceRngMu.Unlock()

	// Probe the whole space once; when every number is taken the start
	// value is reused, which is the wrap-around documented above.
	n := start
	for i := 0; i < 10000; i++ {
		candidate := (start + i) % 10000
		if _, taken := m.used[candidate]; !taken {
			n = candidate
			break
		}
	}
	m.used[n] = struct{}{}
	return fmt.Sprintf("%s%04d", model.InvoicePrefix, n)
}

// reserve marks an already assigned invoice number as taken so freshly minted
// ones cannot collide with it. Only exact prefix-plus-4-digit invoices are
// accepted; anything else is rejected so the caller re-mints it.
func (m *invoiceMinter) reserve(invoice string) bool {
	if !invoiceRE.MatchString(invoice) {
		return false
	}
	n, _ := strconv.Atoi(invoice[len(model.InvoicePrefix):])
	if _, taken := m.used[n]; taken {
		return false
	}
	m.used[n] = struct{}{}
	return true
}
