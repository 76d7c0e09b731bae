package generator

import (
	"github.com/BurntSushi/toml"
	"github.com/goaux/stacktrace/v2"
	"github.com/spf13/pflag"
)

// Settings is everything one run needs, merged from defaults, an optional
// TOML file and the command line.
type Settings struct {
	From   string `toml:"from"`
	Module string `toml:"module"`
	Root   string `toml:"root"`
	Out    string `toml:"out"`
	Format bool   `toml:"format"`

	ConfigFile string `toml:"-"`
	Verbose    bool   `toml:"-"`
}

// loadFile overlays the values of a TOML file onto s. Values given on the
// command line win.
func (s *Settings) loadFile(fl *pflag.FlagSet) error {
	if s.ConfigFile == "" {
		return nil
	}
	var file Settings
	md, err := toml.DecodeFile(s.ConfigFile, &file)
	if err != nil {
		return stacktrace.Trace(err)
	}
	set := func(flag, key string, apply func()) {
		if md.IsDefined(key) && !fl.Changed(flag) {
			apply()
		}
	}
	set("from", "from", func() { s.From = file.From })
	set("module", "module", func() { s.Module = file.Module })
	set("root", "root", func() { s.Root = file.Root })
	set("out", "out", func() { s.Out = file.Out })
	set("format", "format", func() { s.Format = file.Format })
	return nil
}
