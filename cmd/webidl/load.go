package main

import (
	"context"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/servo/webidl/idl"
)

type source struct {
	name string
	text string
}

// loadFiles reads the named files concurrently. The result is in the order
// of names.
func loadFiles(ctx context.Context, names []string) ([]source, error) {
	out := make([]source, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(name)
			if err != nil {
				return errors.Wrapf(err, "reading %s", name)
			}
			out[i] = source{name: name, text: string(data)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	glog.V(1).Infof("loaded %d files", len(out))
	return out, nil
}

// loadConfig reads a YAML configuration, or returns the default one when
// path is empty.
func loadConfig(path string) (idl.Config, error) {
	if path == "" {
		return idl.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return idl.Config{}, errors.Wrap(err, "opening config")
	}
	defer f.Close()
	cfg, err := idl.LoadConfig(f)
	if err != nil {
		return idl.Config{}, errors.Wrapf(err, "loading %s", path)
	}
	return cfg, nil
}

// parseAll runs a single session over all sources.
func parseAll(cfg idl.Config, srcs []source) ([]idl.Definition, error) {
	p := idl.NewParser(cfg)
	for _, s := range srcs {
		if err := p.ParseFile(s.name, s.text); err != nil {
			return nil, err
		}
	}
	return p.Finish()
}
