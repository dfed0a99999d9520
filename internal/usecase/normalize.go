package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	domainErrors "github.com/f1rstgear/gearflow/internal/domain/errors"
	"github.com/f1rstgear/gearflow/internal/domain/model"
)

// Normalizer turns one raw message block into a normalized order batch.
// Implementations must honor the same contract: strip chat noise, drop email
// tokens, deduplicate repeated announcements, compute amounts, mint invoices
// unique within the batch, and sort by (name, phone, address, note).
// On failure a partial result may accompany the error when some output (such
// as the oracle's summary text) is still worth surfacing to the operator.
type Normalizer interface {
	Normalize(ctx context.Context, raw string) (*model.NormalizationResult, error)
}

// DefaultSizes is the recognized size token set, smallest to largest.
var DefaultSizes = []string{"S", "M", "L", "XL", "XXL", "3XL", "4XL"}

var (
	timestampRE = regexp.MustCompile(`^\[\d{1,2}/\d{1,2}/\d{2,4}[^\]]*\]\s*`)
	senderRE    = regexp.MustCompile(`^[\p{L}\d_.'-]+\s*:\s*`)
	emailRE     = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	labelRE     = regexp.MustCompile(`(?i)^\s*(phone number|delivery address|size & quantity|size and quantity|email(?:\s*\(\s*optional\s*\))?|name|phone|mobile|address|size|note)\s*:\s*(.*)$`)
	phoneLineRE = regexp.MustCompile(`^\+?[\d\s()-]{9,}$`)
	digitsRE    = regexp.MustCompile(`\d+`)
	qtyParenRE  = regexp.MustCompile(`\((\d+)\)`)
	qtyTrailRE  = regexp.MustCompile(`(\d+)\s*$`)
	spaceRE     = regexp.MustCompile(`\s+`)
)

// RuleNormalizer is the deterministic normalization implementation. It applies
// the same announcement-parsing contract the oracle is instructed with, without
// any network dependency.
type RuleNormalizer struct {
	unitPrice int
	sizes     []string
	sizeRE    *regexp.Regexp
}

// NewRuleNormalizer builds a RuleNormalizer. A non-positive unitPrice falls
// back to 650 BDT; nil sizes falls back to DefaultSizes.
func NewRuleNormalizer(unitPrice int, sizes []string) *RuleNormalizer {
	if unitPrice <= 0 {
		unitPrice = 650
	}
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	return &RuleNormalizer{
		unitPrice: unitPrice,
		sizes:     sizes,
		sizeRE:    buildSizeRE(sizes),
	}
}

func buildSizeRE(sizes []string) *regexp.Regexp {
	sorted := make([]string, len(sizes))
	copy(sorted, sizes)
	// longer tokens first so XL never shadows XXL or 4XL
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	quoted := make([]string, len(sorted))
	for i, s := range sorted {
		quoted[i] = regexp.QuoteMeta(s)
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
}

// Normalize implements the Normalizer contract.
func (n *RuleNormalizer) Normalize(_ context.Context, raw string) (*model.NormalizationResult, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, domainErrors.ErrMalformedInput
	}

	segments := splitAnnouncements(raw)

	var (
		records  []model.OrderRecord
		warnings []string
		seen     = map[model.DedupKey]struct{}{}
	)

	for _, seg := range segments {
		if seg.name == "" && seg.phone == "" {
			continue
		}
		if seg.name == "" || seg.phone == "" {
			warnings = append(warnings, fmt.Sprintf("incomplete announcement kept as partial record: %s", seg.describe()))
		}

		rec := model.OrderRecord{
			Name:    collapseSpace(seg.name),
			Address: collapseSpace(seg.address),
			Phone:   seg.phone,
			Note:    collapseSpace(seg.note),
		}
		rec.Amount = parseQuantity(rec.Note) * n.unitPrice

		if _, dup := seen[rec.Key()]; dup {
			continue
		}
		seen[rec.Key()] = struct{}{}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, domainErrors.ErrMalformedInput
	}

	minter := newInvoiceMinter()
	for i := range records {
		records[i].Invoice = minter.next()
	}

	sort.SliceStable(records, func(i, j int) bool { return records[i].Less(records[j]) })

	batch := model.OrderBatch(records)
	sizes := n.Summarize(batch)

	return &model.NormalizationResult{
		Batch:    batch,
		Sizes:    sizes,
		Summary:  n.renderSummary(sizes),
		Warnings: warnings,
	}, nil
}

// Summarize counts ordered quantity per size token across the batch.
// Notes without a recognized token land in the unspecified bucket.
func (n *RuleNormalizer) Summarize(batch model.OrderBatch) model.SizeSummary {
	sizes := model.SizeSummary{}
	for _, rec := range batch {
		label := model.UnspecifiedSize
		if token := n.sizeRE.FindString(rec.Note); token != "" {
			label = strings.ToUpper(token)
		}
		sizes[label] += parseQuantity(rec.Note)
	}
	return sizes
}

func (n *RuleNormalizer) renderSummary(sizes model.SizeSummary) string {
	var b strings.Builder
	b.WriteString("Size\tQuantity\n")
	for _, size := range n.sizes {
		if qty, ok := sizes[strings.ToUpper(size)]; ok {
			fmt.Fprintf(&b, "%s\t%d\n", strings.ToUpper(size), qty)
		}
	}
	if qty, ok := sizes[model.UnspecifiedSize]; ok {
		fmt.Fprintf(&b, "%s\t%d\n", model.UnspecifiedSize, qty)
	}
	fmt.Fprintf(&b, "Total\t%d\n", sizes.Total())
	return b.String()
}

// segment accumulates one announcement while scanning lines.
type segment struct {
	name    string
	phone   string
	address string
	note    string
}

func (s segment) empty() bool {
	return s.name == "" && s.phone == "" && s.address == "" && s.note == ""
}

func (s segment) describe() string {
	switch {
	case s.name != "":
		return s.name
	case s.phone != "":
		return s.phone
	case s.address != "":
		return s.address
	default:
		return s.note
	}
}

// splitAnnouncements partitions cleaned lines into per-announcement segments.
// Boundaries are message timestamps, a repeated Name label, or a second
// phone-shaped token inside one block.
func splitAnnouncements(raw string) []segment {
	var (
		segs []segment
		cur  segment
	)

	flush := func() {
		if !cur.empty() {
			segs = append(segs, cur)
		}
		cur = segment{}
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		if loc := timestampRE.FindString(line); loc != "" {
			flush()
			line = strings.TrimSpace(line[len(loc):])
			// the chat sender tag rides on the timestamp line
			line = strings.TrimSpace(senderRE.ReplaceAllString(line, ""))
		}
		if line == "" {
			continue
		}

		line = strings.TrimSpace(emailRE.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}

		if m := labelRE.FindStringSubmatch(line); m != nil {
			label, value := canonicalLabel(m[1]), strings.TrimSpace(m[2])
			switch label {
			case "email":
				// never forwarded, not even redacted
			case "name":
				if cur.name != "" {
					flush()
				}
				cur.name = value
			case "phone":
				if cur.phone != "" {
					flush()
				}
				cur.phone = digitsOf(value)
			case "address":
				cur.address = joinField(cur.address, value, ", ")
			case "note":
				cur.note = joinField(cur.note, value, " ")
			}
			continue
		}

		if phoneLineRE.MatchString(line) {
			if cur.phone != "" {
				flush()
			}
			cur.phone = digitsOf(line)
			continue
		}

		switch {
		case cur.name == "" && cur.phone == "":
			// an unlabeled block may only open with something name-shaped;
			// everything else at this point is conversational noise
			if nameLike(line) {
				cur.name = line
			}
		case cur.address == "":
			cur.address = line
		case cur.note == "":
			cur.note = line
		default:
			cur.note = joinField(cur.note, line, " ")
		}
	}
	flush()

	return segs
}

func canonicalLabel(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	switch {
	case strings.HasPrefix(label, "email"):
		return "email"
	case strings.HasPrefix(label, "phone"), label == "mobile":
		return "phone"
	case strings.HasSuffix(label, "address"):
		return "address"
	case strings.HasPrefix(label, "size"), label == "note":
		return "note"
	default:
		return "name"
	}
}

func nameLike(line string) bool {
	if len(line) > 40 || strings.ContainsAny(line, "0123456789") {
		return false
	}
	return len(strings.Fields(line)) <= 4
}

func digitsOf(s string) string {
	return strings.Join(digitsRE.FindAllString(s, -1), "")
}

func joinField(existing, value, sep string) string {
	if existing == "" {
		return value
	}
	if value == "" {
		return existing
	}
	return existing + sep + value
}

func collapseSpace(s string) string {
	return strings.TrimSpace(spaceRE.ReplaceAllString(s, " "))
}

// parseQuantity reads the implied quantity from a size-and-quantity note:
// a parenthesized integer wins, then a trailing integer, then 1.
func parseQuantity(note string) int {
	qty := 0
	if m := qtyParenRE.FindStringSubmatch(note); m != nil {
		qty, _ = strconv.Atoi(m[1])
	} else if m := qtyTrailRE.FindStringSubmatch(note); m != nil {
		qty, _ = strconv.Atoi(m[1])
	}
	if qty < 1 {
		return 1
	}
	return qty
}
