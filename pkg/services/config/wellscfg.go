package config

import (
	"context"
	"fmt"

	"github.com/de-tools/decline-curve/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry exposes the well profiles of a wells configuration file. Each
// section names one well and carries its decline parameters:
//
//	[eagleford-41H]
//	qi = 10000
//	d = 0.7
//	b = 1.4
//	dlim = 0.1
//	years = 40
type Registry interface {
	GetWells(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, well string) (domain.WellProfile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetWells(_ context.Context) ([]string, error) {
	var wells []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			wells = append(wells, section.Name())
		}
	}
	return wells, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, well string) (domain.WellProfile, error) {
	section, err := cr.cfg.GetSection(well)
	if err != nil {
		return domain.WellProfile{}, fmt.Errorf("well %s not found", well)
	}

	profile := domain.WellProfile{Well: domain.Well{Name: well}}
	for key, dst := range map[string]*float64{
		"qi":   &profile.Params.Qi,
		"d":    &profile.Params.D,
		"b":    &profile.Params.B,
		"dlim": &profile.Params.Dlim,
	} {
		v, err := section.Key(key).Float64()
		if err != nil {
			return domain.WellProfile{}, fmt.Errorf("well %s: invalid %s: %w", well, key, err)
		}
		*dst = v
	}

	years, err := section.Key("years").Int()
	if err != nil {
		return domain.WellProfile{}, fmt.Errorf("well %s: invalid years: %w", well, err)
	}
	profile.Years = years

	return profile, nil
}
