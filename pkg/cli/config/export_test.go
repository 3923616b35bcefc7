package config

// NewAppConfigForTest creates an AppConfig pointing at a config file path
func NewAppConfigForTest(path string) *AppConfig {
	return &AppConfig{path: path}
}
