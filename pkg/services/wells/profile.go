package wells

import (
	"fmt"

	"github.com/de-tools/decline-curve/pkg/models/domain"
	"github.com/spf13/viper"
)

type profileFile struct {
	Well  string  `mapstructure:"well"`
	Qi    float64 `mapstructure:"qi"`
	D     float64 `mapstructure:"d"`
	B     float64 `mapstructure:"b"`
	Dlim  float64 `mapstructure:"dlim"`
	Years int     `mapstructure:"years"`
}

// LoadProfile loads a single-well forecast profile from the specified path.
// The format follows the file extension (YAML, TOML, JSON, ...).
func LoadProfile(profilePath string) (domain.WellProfile, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)

	if err := v.ReadInConfig(); err != nil {
		return domain.WellProfile{}, fmt.Errorf("failed to read profile file: %w", err)
	}

	var pf profileFile
	if err := v.Unmarshal(&pf); err != nil {
		return domain.WellProfile{}, fmt.Errorf("failed to parse well profile: %w", err)
	}

	return domain.WellProfile{
		Well:   domain.Well{Name: pf.Well},
		Params: domain.DeclineParameters{Qi: pf.Qi, D: pf.D, B: pf.B, Dlim: pf.Dlim},
		Years:  pf.Years,
	}, nil
}
