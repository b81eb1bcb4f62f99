package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Sources.Document == "" {
		cfg.Sources.Document = "design/source-docs/JV-Link4901.html"
	}
	if cfg.Sources.Workbook == "" {
		cfg.Sources.Workbook = "design/source-docs/JV-Data4901.xlsx"
	}
	if cfg.Output.SpecsDir == "" {
		cfg.Output.SpecsDir = "design/specs"
	}
	if cfg.Output.CatalogPath == "" {
		cfg.Output.CatalogPath = "pkg/jvlink/catalog_gen.go"
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Search.DefaultLimit == 0 {
		cfg.Search.DefaultLimit = 10
	}
	if cfg.Search.MaxLimit == 0 {
		cfg.Search.MaxLimit = 100
	}
	if cfg.Watch.DebounceMillis == 0 {
		cfg.Watch.DebounceMillis = 400
	}
}

// DefaultConfig returns a config with all defaults applied. Paths stay
// relative to the working directory.
func DefaultConfig() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return &cfg
}
