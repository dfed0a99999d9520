package usecase

import (
	"fmt"

	"go.uber.org/fx"

	"github.com/f1rstgear/gearflow/internal/config"
	pkgAuth "github.com/f1rstgear/gearflow/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAuthUseCase,
	newEconomics,
	newNormalizer,
)

type authParams struct {
	fx.In

	Config *config.Config
	Hasher pkgAuth.PasswordHasher
	Tokens pkgAuth.Strategy
}

func newAuthUseCase(p authParams) *AuthUseCase {
	return NewAuthUseCase(p.Config.OperatorPasswordHash, p.Hasher, p.Tokens)
}

func newEconomics(cfg *config.Config) Economics {
	return Economics{
		UnitPrice:    cfg.UnitPrice,
		UnitCost:     cfg.UnitCost,
		ProfitTarget: cfg.ProfitTarget,
	}
}

type normalizerParams struct {
	fx.In

	Config *config.Config
	Oracle OracleClient `optional:"true"`
}

func newNormalizer(p normalizerParams) (Normalizer, error) {
	if p.Config.NormalizerMode == config.NormalizerOracle {
		if p.Oracle == nil {
			return nil, fmt.Errorf("oracle normalizer selected but no oracle client provided")
		}
		return NewOracleNormalizer(p.Oracle, p.Config.UnitPrice, nil), nil
	}
	return NewRuleNormalizer(p.Config.UnitPrice, nil), nil
}
