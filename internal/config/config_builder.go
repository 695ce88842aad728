package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs  []*StructuredConfig
	explicit map[*StructuredConfig]explicitFields
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs:  make([]*StructuredConfig, 0, 4),
		explicit: make(map[*StructuredConfig]explicitFields),
	}
}

// build merges the collected configs in order, later non-zero fields
// overriding earlier ones, and validates the result. Fields a source marked
// as explicit override even when zero.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
		b.explicit[cfg].apply(config, cfg)
	}

	if config.App.TokenCompany == "" {
		config.App.TokenCompany = config.App.TokenIssuer
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.add(envCfg, explicitFromEnv())
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, explicit, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.add(flagsCfg, explicit)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, explicit, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.add(jsonCfg, explicit)

	return b
}

func (b *configBuilder) add(cfg *StructuredConfig, explicit explicitFields) {
	b.configs = append(b.configs, cfg)
	b.explicit[cfg] = explicit
}
