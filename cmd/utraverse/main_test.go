package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	check "gopkg.in/check.v1"

	"github.com/mycok/uTraverse/bench/store/memory"
)

var _ = check.Suite(new(AppTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type AppTestSuite struct{}

func (s *AppTestSuite) run(c *check.C, stdin string, args ...string) (string, error) {
	rootLogger := &logrus.Logger{Out: io.Discard, Formatter: new(logrus.TextFormatter), Level: logrus.InfoLevel}
	logger := logrus.NewEntry(rootLogger)

	var out bytes.Buffer
	app := newApp(rootLogger, logger, strings.NewReader(stdin), &out)
	err := app.Run(append([]string{appName}, args...))

	return out.String(), err
}

func (s *AppTestSuite) TestInteractivePrompt(c *check.C) {
	out, err := s.run(c, "50\n5000\n", "-seed", "7", "-workers", "2")
	c.Assert(err, check.IsNil)

	for _, exp := range []string{
		"Enter the number of vertices: ",
		"Enter the number of edges: ",
		"Too many edges for the given number of vertices (5000 requested). Adjusting to maximum possible edges.",
		"Sequential BFS Time: ",
		"Parallel BFS Time: ",
		"Speedup for BFS: ",
		"Sequential DFS Time: ",
		"Parallel DFS Time: ",
		"Speedup for DFS: ",
	} {
		c.Assert(strings.Contains(out, exp), check.Equals, true, check.Commentf("missing %q in:\n%s", exp, out))
	}

	// The reduction workload is skipped unless requested.
	c.Assert(strings.Contains(out, "Speedup: "), check.Equals, false)
}

func (s *AppTestSuite) TestFlagsSkipThePrompt(c *check.C) {
	out, err := s.run(c, "", "-vertices", "20", "-edges", "30", "-reduction-size", "1000", "-seed", "1")
	c.Assert(err, check.IsNil)
	c.Assert(strings.Contains(out, "Enter the number"), check.Equals, false)
	c.Assert(strings.Contains(out, "Sequential: Sum = "), check.Equals, true, check.Commentf("%s", out))
	c.Assert(strings.Contains(out, "Speedup: "), check.Equals, true, check.Commentf("%s", out))
}

func (s *AppTestSuite) TestNegativeInputFailsFast(c *check.C) {
	out, err := s.run(c, "-5\n10\n")
	c.Assert(err, check.ErrorMatches, "invalid number of vertices: -5, must be >= 0")
	c.Assert(strings.Contains(out, "Enter the number of edges"), check.Equals, false)

	_, err = s.run(c, "10\n-1\n")
	c.Assert(err, check.ErrorMatches, "invalid number of edges: -1, must be >= 0")

	_, err = s.run(c, "ten\n")
	c.Assert(err, check.ErrorMatches, "invalid number of vertices: .*")

	_, err = s.run(c, "", "-vertices", "-3", "-edges", "1")
	c.Assert(err, check.ErrorMatches, "(?ms).*invalid value for vertices.*")
}

func (s *AppTestSuite) TestConfigFile(c *check.C) {
	path := filepath.Join(c.MkDir(), "utraverse.yaml")
	c.Assert(os.WriteFile(path, []byte(`
benchmark:
  vertices: 40
  edges: 80
  seed: 99
  repeats: 2
store:
  uri: in-memory://
logging:
  level: warn
`), 0o600), check.IsNil)

	out, err := s.run(c, "", "-config", path)
	c.Assert(err, check.IsNil)
	c.Assert(strings.Contains(out, "Enter the number"), check.Equals, false)
	c.Assert(strings.Contains(out, "Graph: 40 vertices, "), check.Equals, true, check.Commentf("%s", out))
	c.Assert(strings.Contains(out, "2 repeat(s)"), check.Equals, true, check.Commentf("%s", out))

	// Flags override the file.
	out, err = s.run(c, "", "-config", path, "-vertices", "10", "-repeats", "1")
	c.Assert(err, check.IsNil)
	c.Assert(strings.Contains(out, "Graph: 10 vertices, "), check.Equals, true, check.Commentf("%s", out))
	c.Assert(strings.Contains(out, "1 repeat(s)"), check.Equals, true, check.Commentf("%s", out))
}

func (s *AppTestSuite) TestResolveMetricsAddr(c *check.C) {
	resolve := func(args ...string) *settings {
		rootLogger := &logrus.Logger{Out: io.Discard, Formatter: new(logrus.TextFormatter), Level: logrus.InfoLevel}
		app := newApp(rootLogger, logrus.NewEntry(rootLogger), strings.NewReader(""), io.Discard)

		var resolved *settings
		app.Action = func(appCtx *cli.Context) error {
			var err error
			resolved, err = resolveSettings(appCtx)
			return err
		}

		c.Assert(app.Run(append([]string{appName}, args...)), check.IsNil)

		return resolved
	}

	dir := c.MkDir()
	disabled := filepath.Join(dir, "disabled.yaml")
	c.Assert(os.WriteFile(disabled, []byte("server:\n  metrics_addr: \"\"\n  max_workers: 8\n"), 0o600), check.IsNil)
	unset := filepath.Join(dir, "unset.yaml")
	c.Assert(os.WriteFile(unset, []byte("server:\n  listen_addr: \":7070\"\n"), 0o600), check.IsNil)

	c.Assert(resolve().metricsAddr, check.Equals, ":9090")
	c.Assert(resolve("-config", unset).metricsAddr, check.Equals, ":9090")

	st := resolve("-config", disabled)
	c.Assert(st.metricsAddr, check.Equals, "")
	c.Assert(st.maxWorkers, check.Equals, 8)

	// Flags override the file.
	st = resolve("-config", disabled, "-metrics-addr", ":9191", "-max-workers", "2")
	c.Assert(st.metricsAddr, check.Equals, ":9191")
	c.Assert(st.maxWorkers, check.Equals, 2)

	// Without a metrics address only the benchmark service is started.
	grp, err := newServiceGroup(resolve("-config", disabled), nil, logrus.NewEntry(&logrus.Logger{Out: io.Discard}))
	c.Assert(err, check.IsNil)
	c.Assert(grp, check.HasLen, 1)
}

func (s *AppTestSuite) TestGetStore(c *check.C) {
	store, closeFn, err := getStore("")
	c.Assert(err, check.IsNil)
	c.Assert(store, check.IsNil)
	c.Assert(closeFn(), check.IsNil)

	store, closeFn, err = getStore("in-memory://")
	c.Assert(err, check.IsNil)
	_, isMemory := store.(*memory.InMemoryStore)
	c.Assert(isMemory, check.Equals, true)
	c.Assert(closeFn(), check.IsNil)

	_, _, err = getStore("redis://localhost:6379")
	c.Assert(err, check.ErrorMatches, `unsupported store URI scheme: "redis"`)
}

func (s *AppTestSuite) TestServiceGroup(c *check.C) {
	logger := logrus.NewEntry(&logrus.Logger{Out: io.Discard})

	grp, err := newServiceGroup(&settings{listenAddr: ":0", metricsAddr: ":0"}, nil, logger)
	c.Assert(err, check.IsNil)
	c.Assert(grp, check.HasLen, 2)
	c.Assert(grp[0].Name(), check.Equals, "benchmark-rpc")
	c.Assert(grp[1].Name(), check.Equals, "metrics")

	grp, err = newServiceGroup(&settings{listenAddr: ":0"}, nil, logger)
	c.Assert(err, check.IsNil)
	c.Assert(grp, check.HasLen, 1)

	_, err = newServiceGroup(&settings{}, nil, logger)
	c.Assert(err, check.ErrorMatches, "(?ms).*listen address not specified.*")
}
