package record

import "github.com/dmitrymomot/recordkit/pkg/config"

type envOptions struct {
	Strict bool `env:"RECORDKIT_STRICT" envDefault:"false"`
}

// OptionsFromEnv derives validator options from RECORDKIT_* environment
// variables, for host applications that wire validation policy through their
// environment:
//
//	RECORDKIT_STRICT — reject undeclared record fields (default false).
func OptionsFromEnv() ([]Option, error) {
	var cfg envOptions
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return []Option{Strict(cfg.Strict)}, nil
}
