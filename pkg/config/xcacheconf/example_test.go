package xcacheconf_test

import (
	"fmt"

	"github.com/omeyang/cachekit/pkg/cache/xwlru"
	"github.com/omeyang/cachekit/pkg/config/xcacheconf"
)

func ExampleNewFromBytes() {
	data := []byte(`
cache:
  capacity: 4096
`)

	cfg, err := xcacheconf.NewFromBytes(data, xcacheconf.FormatYAML)
	if err != nil {
		fmt.Println("load failed:", err)
		return
	}

	cache, err := xwlru.New[string, []byte](xwlru.Config{Capacity: cfg.Settings().Capacity})
	if err != nil {
		fmt.Println("create cache failed:", err)
		return
	}

	fmt.Println("capacity:", cache.Capacity())
	// Output:
	// capacity: 4096
}

func ExampleNewFromBytes_json() {
	data := []byte(`{"cache": {"capacity": 2048}}`)

	cfg, err := xcacheconf.NewFromBytes(data, xcacheconf.FormatJSON)
	if err != nil {
		fmt.Println("load failed:", err)
		return
	}

	fmt.Println("capacity:", cfg.Settings().Capacity)
	// Output:
	// capacity: 2048
}
