package server

import (
	"github.com/woozymasta/geodoc/internal/config"
	"github.com/woozymasta/geodoc/internal/convert"

	"github.com/rs/zerolog/log"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config     *config.Config
	Registry   *convert.Registry
	Converters []ConverterInfo
}

// ConverterInfo describes a registered converter.
type ConverterInfo struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// NewServerContext builds the converter registry and the listing served by the API.
func NewServerContext(cfg *config.Config) *ServerContext {
	reg := convert.NewRegistry()

	all := reg.All()
	infos := make([]ConverterInfo, 0, len(all))
	for _, c := range all {
		infos = append(infos, ConverterInfo{
			Name:   c.Name(),
			Source: c.Source().String(),
			Target: c.Target().String(),
		})

		log.Trace().
			Str("converter", c.Name()).
			Stringer("source", c.Source()).
			Stringer("target", c.Target()).
			Msg("Converter registered")
	}

	log.Info().
		Int("converters", len(infos)).
		Int64("max_body", cfg.Server.MaxBody).
		Msg("Server context initialized successfully")

	return &ServerContext{
		Config:     cfg,
		Registry:   reg,
		Converters: infos,
	}
}
