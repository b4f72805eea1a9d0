package config

import (
	"errors"
	"fmt"
	"strings"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*FileConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*FileConfig, 0, 2),
	}
}

func (b *configBuilder) build() (*FileConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(FileConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithAppendSlice); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &FileConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

// validate rejects blank load references, e.g. a trailing comma in the
// CONFKEEPER_LOAD list.
func (c *FileConfig) validate() error {
	for _, ref := range c.Files {
		if strings.TrimSpace(ref) == "" {
			return ErrEmptyFileRef
		}
	}

	return nil
}
