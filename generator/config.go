package generator

// Config describes the command built by Main.
type Config struct {
	Use     string
	Short   string
	Long    string
	Version string

	DefaultModule string
	DefaultFormat bool
	MaxDepth      int
}

func (c *Config) defaults() Settings {
	module := c.DefaultModule
	if module == "" {
		module = "Translations"
	}
	return Settings{
		Module: module,
		Format: c.DefaultFormat,
	}
}
