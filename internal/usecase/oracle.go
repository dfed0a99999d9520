package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/f1rstgear/gearflow/internal/domain/errors"
	"github.com/f1rstgear/gearflow/internal/domain/model"
)

// OracleClient is the opaque text-in/text-out collaborator behind the
// oracle-backed normalizer.
type OracleClient interface {
	Generate(ctx context.Context, text string) (string, error)
}

// OracleNormalizer delegates language understanding to an external model and
// owns none of it: the reply is treated as untrusted text that must survive
// extraction and schema sanitation before a single record is accepted.
type OracleNormalizer struct {
	client    OracleClient
	summarize *RuleNormalizer
}

// NewOracleNormalizer builds an OracleNormalizer. The rule normalizer is used
// for local size summaries so the summary never depends on oracle prose.
func NewOracleNormalizer(client OracleClient, unitPrice int, sizes []string) *OracleNormalizer {
	return &OracleNormalizer{
		client:    client,
		summarize: NewRuleNormalizer(unitPrice, sizes),
	}
}

// Normalize implements the Normalizer contract via the oracle.
func (n *OracleNormalizer) Normalize(ctx context.Context, raw string) (*model.NormalizationResult, error) {
	reply, err := n.client.Generate(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("oracle call: %w", err)
	}

	jsonText, summary, err := ExtractReply(reply)
	if err != nil {
		// order data is unavailable for this run; the summary may still help
		if summary != "" {
			return &model.NormalizationResult{Summary: summary}, err
		}
		return nil, err
	}

	records, err := DecodeBatch(jsonText)
	if err != nil {
		// the array parsed but its elements do not fit the record schema
		return nil, fmt.Errorf("%w: reply records: %v", domainErrors.ErrExtraction, err)
	}

	batch, warnings := SanitizeBatch(records, n.summarize.unitPrice)
	if summary == "" {
		summary = n.summarize.renderSummary(n.summarize.Summarize(batch))
	}

	return &model.NormalizationResult{
		Batch:    batch,
		Sizes:    n.summarize.Summarize(batch),
		Summary:  summary,
		Warnings: warnings,
	}, nil
}
