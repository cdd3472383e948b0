package config

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/matzehuels/modgraph/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("max-bacon", DefaultMaxBacon, "")
	fs.Int("noise-level", DefaultNoiseLevel, "")
	fs.StringSlice("exclude", nil, "")
	fs.StringSlice("format", []string{DefaultFormat}, "")
	fs.Bool("reverse", false, "")
	fs.Bool("verbose", false, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	opts, err := Load(nil, "")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(opts, Defaults()) {
		t.Errorf("Load() = %+v, want %+v", opts, Defaults())
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, t.TempDir(), FileName, `
max_bacon = 4
exclude = ["tests.*", "docs"]
rankdir = "lr"
cluster = true
`)
	opts, err := Load(nil, path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if opts.MaxBacon != 4 {
		t.Errorf("MaxBacon = %d, want 4", opts.MaxBacon)
	}
	if !reflect.DeepEqual(opts.Exclude, []string{"tests.*", "docs"}) {
		t.Errorf("Exclude = %v", opts.Exclude)
	}
	if opts.Rankdir != "LR" {
		t.Errorf("Rankdir = %q, want LR", opts.Rankdir)
	}
	if opts.NoiseLevel != DefaultNoiseLevel {
		t.Errorf("NoiseLevel = %d, want default", opts.NoiseLevel)
	}
}

func TestLoad_Pyproject(t *testing.T) {
	path := writeFile(t, t.TempDir(), PyprojectName, `
[project]
name = "mypkg"

[tool.black]
line-length = 100

[tool.modgraph]
noise_level = 5
only = ["mypkg"]
`)
	opts, err := Load(nil, path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if opts.NoiseLevel != 5 {
		t.Errorf("NoiseLevel = %d, want 5", opts.NoiseLevel)
	}
	if !reflect.DeepEqual(opts.Only, []string{"mypkg"}) {
		t.Errorf("Only = %v", opts.Only)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(nil, filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want ErrCodeFileNotFound", err)
	}
}

func TestLoad_BadFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), FileName, "max_bacon = [")
	_, err := Load(nil, path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load() error = %v, want ErrCodeInvalidConfig", err)
	}
}

func TestLoad_Precedence(t *testing.T) {
	path := writeFile(t, t.TempDir(), FileName, "max_bacon = 4\nnoise_level = 10\nreverse = true\n")
	t.Setenv("MODGRAPH_MAX_BACON", "6")
	t.Setenv("MODGRAPH_FORMAT", "png,dot")

	fs := newFlags()
	if err := fs.Parse([]string{"--noise-level=3", "--verbose"}); err != nil {
		t.Fatal(err)
	}

	opts, err := Load(fs, path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if opts.MaxBacon != 6 {
		t.Errorf("MaxBacon = %d, want 6 (env over file, unset flag ignored)", opts.MaxBacon)
	}
	if opts.NoiseLevel != 3 {
		t.Errorf("NoiseLevel = %d, want 3 (flag over file)", opts.NoiseLevel)
	}
	if !opts.Reverse {
		t.Error("Reverse = false, want true from file (unset flag ignored)")
	}
	if !reflect.DeepEqual(opts.Format, []string{"png", "dot"}) {
		t.Errorf("Format = %v, want [png dot]", opts.Format)
	}
}

func TestLoad_FlagList(t *testing.T) {
	fs := newFlags()
	if err := fs.Parse([]string{"--exclude=a.*,b", "--exclude", "c", "--format=svg,json"}); err != nil {
		t.Fatal(err)
	}
	opts, err := Load(fs, "")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(opts.Exclude, []string{"a.*", "b", "c"}) {
		t.Errorf("Exclude = %v", opts.Exclude)
	}
	if !reflect.DeepEqual(opts.Format, []string{"svg", "json"}) {
		t.Errorf("Format = %v", opts.Format)
	}
}

func TestNormalize_ClusterImplied(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want bool
	}{
		{"none", Options{}, false},
		{"keep", Options{KeepTargetCluster: true}, true},
		{"collapse", Options{CollapseTargetCluster: true}, true},
		{"min", Options{MinClusterSize: 2}, true},
		{"max", Options{MaxClusterSize: 10}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.normalize()
			if tt.opts.Cluster != tt.want {
				t.Errorf("Cluster = %v, want %v", tt.opts.Cluster, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
		code   errors.Code
	}{
		{"rankdir", func(o *Options) { o.Rankdir = "XY" }, errors.ErrCodeInvalidConfig},
		{"start color", func(o *Options) { o.StartColor = 400 }, errors.ErrCodeInvalidConfig},
		{"both policies", func(o *Options) { o.KeepTargetCluster, o.CollapseTargetCluster = true, true }, errors.ErrCodeInvalidConfig},
		{"format", func(o *Options) { o.Format = []string{"pdf"} }, errors.ErrCodeInvalidFormat},
		{"no format", func(o *Options) { o.Format = nil }, errors.ErrCodeInvalidFormat},
		{"negative", func(o *Options) { o.MaxBacon = -1 }, errors.ErrCodeInvalidConfig},
		{"target", func(o *Options) { o.Target = "bad name" }, errors.ErrCodeInvalidInput},
		{"dummy", func(o *Options) { o.DummyName = "" }, errors.ErrCodeInvalidConfig},
		{"pattern", func(o *Options) { o.Exclude = []string{"[abc"} }, errors.ErrCodeInvalidPattern},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Defaults()
			tt.modify(opts)
			if err := opts.Validate(); !errors.Is(err, tt.code) {
				t.Errorf("Validate() = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestSkipList(t *testing.T) {
	opts := Defaults()
	opts.Exclude = []string{"tests.*"}
	opts.ExcludeExact = []string{"setup"}
	skip, err := opts.SkipList()
	if err != nil {
		t.Fatal(err)
	}
	for name, want := range map[string]bool{"tests.unit": true, "setup": true, "setuptools": false, "app": false} {
		if got := skip.Match(name); got != want {
			t.Errorf("Match(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	if got := Discover(dir); got != "" {
		t.Errorf("Discover(empty) = %q, want \"\"", got)
	}

	writeFile(t, dir, PyprojectName, "[tool.black]\nline-length = 100\n")
	if got := Discover(dir); got != "" {
		t.Errorf("Discover() = %q, want \"\" without [tool.modgraph]", got)
	}

	py := writeFile(t, dir, PyprojectName, "[tool.modgraph]\nmax_bacon = 3\n")
	if got := Discover(dir); got != py {
		t.Errorf("Discover() = %q, want %q", got, py)
	}

	own := writeFile(t, dir, FileName, "max_bacon = 1\n")
	if got := Discover(dir); got != own {
		t.Errorf("Discover() = %q, want %q", got, own)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(Defaults(), &buf); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if !strings.Contains(buf.String(), "noise_level = 200") {
		t.Errorf("Write() output missing noise_level:\n%s", buf.String())
	}

	path := writeFile(t, t.TempDir(), FileName, buf.String())
	opts, err := Load(nil, path)
	if err != nil {
		t.Fatalf("Load() of written config: %v", err)
	}
	if !reflect.DeepEqual(opts, Defaults()) {
		t.Errorf("round trip = %+v, want %+v", opts, Defaults())
	}
}
