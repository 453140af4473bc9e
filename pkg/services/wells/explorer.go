package wells

import (
	"context"

	"github.com/de-tools/decline-curve/pkg/models/domain"
	"github.com/de-tools/decline-curve/pkg/services/config"
)

type Explorer interface {
	ListWells(ctx context.Context) ([]domain.Well, error)
	GetProfile(ctx context.Context, well domain.Well) (domain.WellProfile, error)
}

type wellExplorer struct {
	registry config.Registry
}

func NewExplorer(registry config.Registry) Explorer {
	return &wellExplorer{registry: registry}
}

func (e *wellExplorer) ListWells(ctx context.Context) ([]domain.Well, error) {
	names, err := e.registry.GetWells(ctx)
	if err != nil {
		return nil, err
	}
	var wells []domain.Well
	for _, name := range names {
		wells = append(wells, domain.Well{Name: name})
	}
	return wells, nil
}

func (e *wellExplorer) GetProfile(ctx context.Context, well domain.Well) (domain.WellProfile, error) {
	return e.registry.GetProfile(ctx, well.Name)
}
