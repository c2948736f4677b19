package cmd

import (
	"fmt"

	"github.com/allyctl/allyctl/device/ally"
)

// Symbols prints the button names accepted by set btn_mapping_*.
type Symbols struct {
	Page string `arg:"" optional:"" help:"Limit output to one code page: gamepad, keyboard, mouse, media"`
}

func (c *Symbols) Run() error {
	pages := ally.SymbolPages()
	if c.Page != "" {
		pages = pages[:0]
		for _, p := range ally.SymbolPages() {
			if p.String() == c.Page {
				pages = append(pages, p)
			}
		}
		if len(pages) == 0 {
			return ally.Validationf("list symbols", "unknown page %q (want gamepad, keyboard, mouse or media)", c.Page)
		}
	}

	for i, page := range pages {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("# %s page (0x%02x)\n", page, byte(page))
		for _, name := range ally.SymbolNames(page) {
			_, code, err := ally.ResolveSymbol(name)
			if err != nil {
				return err
			}
			fmt.Printf("%-22s 0x%02x  %q\n", name, code, ally.DisplaySymbol(name))
		}
	}
	return nil
}
