// Package messages provides the player-facing text catalog.
// Strings are gettext keys resolved against the embedded PO catalog.
package messages

import (
	_ "embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/en.po
var enPO []byte

var catalog = load(enPO)

func load(data []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(data)
	return po
}

// Get translates key. Unknown keys come back unchanged.
func Get(key string) string {
	return catalog.Get(key, []any{}...)
}

// Getf translates key and fills in its verbs with args.
func Getf(key string, args ...any) string {
	return fmt.Sprintf(Get(key), args...)
}
