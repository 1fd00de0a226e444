package main

import (
	"fmt"
	"net/url"

	"github.com/mycok/uTraverse/bench"
	"github.com/mycok/uTraverse/bench/store/cdb"
	"github.com/mycok/uTraverse/bench/store/memory"
)

// getStore returns the measurement store selected by storeURI together with
// a function that releases it. An empty URI disables recording.
func getStore(storeURI string) (bench.Store, func() error, error) {
	noop := func() error { return nil }
	if storeURI == "" {
		return nil, noop, nil
	}

	uri, err := url.Parse(storeURI)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse store URI: %w", err)
	}

	switch uri.Scheme {
	case "in-memory":
		return memory.NewInMemoryStore(), noop, nil
	case "postgresql":
		store, err := cdb.NewCockroachDBStore(storeURI)
		if err != nil {
			return nil, nil, err
		}

		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store URI scheme: %q", uri.Scheme)
	}
}
