package rules

import (
	_ "embed"
	"sync"
)

//go:embed rules.yaml
var builtinYAML []byte

var builtinOnce struct {
	sync.Once
	cat *Catalog
	err error
}

// Builtin returns the embedded default catalog. It is compiled once per
// process and shared; an error here means the shipped rule data is broken
// and no scan can proceed.
func Builtin() (*Catalog, error) {
	builtinOnce.Do(func() {
		rs, err := Parse(builtinYAML)
		if err != nil {
			builtinOnce.err = err
			return
		}
		builtinOnce.cat, builtinOnce.err = NewCatalog(rs)
	})
	return builtinOnce.cat, builtinOnce.err
}
