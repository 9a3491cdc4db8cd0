package cli

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlcentrality/internal/config"
)

// flagKeys maps flag names to the config keys they override. Several
// commands declare the same flag, so binding happens once the executing
// command is known.
var flagKeys = map[string]string{
	"directed":  config.KeyDirected,
	"cost":      config.KeyCost,
	"workers":   config.KeyWorkers,
	"log-level": config.KeyLogLevel,
	"normalize": config.KeyNormalize,
	"top":       config.KeyTopK,
	"strategy":  config.KeyStrategy,
}

// bindFlags binds every flag of fs that has a config key.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}
