package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/allyctl/allyctl/device/ally"
	"github.com/allyctl/allyctl/internal/log"
	toml "github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Show prints every readable attribute of the active profile.
type Show struct {
	Format string `help:"Output format" enum:"text,json,yaml,toml" default:"text"`
}

func (c *Show) Run(logger *slog.Logger, rawLogger log.RawLogger, flags *DeviceFlags) error {
	d, closer, err := openDevice(flags, logger, rawLogger)
	if err != nil {
		return err
	}
	defer closer()

	names := ally.AttrNames()
	values := make(map[string]string, len(names))
	for _, name := range names {
		attr, _ := ally.LookupAttr(name)
		if attr.Read == nil {
			continue
		}
		v, err := attr.Read(d)
		if err != nil {
			return err
		}
		values[name] = v
	}

	switch c.Format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(values)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(values)
	case "toml":
		return toml.NewEncoder(os.Stdout).Encode(values)
	default:
		for _, name := range names {
			if v, ok := values[name]; ok {
				fmt.Printf("%s: %s\n", name, v)
			}
		}
		return nil
	}
}
