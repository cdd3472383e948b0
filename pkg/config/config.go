package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	ktoml "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/matzehuels/modgraph/pkg/errors"
)

// Config file names searched by [Discover], in order.
const (
	FileName      = "modgraph.toml"
	PyprojectName = "pyproject.toml"

	// pyprojectSection is the table holding settings inside pyproject.toml.
	pyprojectSection = "tool.modgraph"

	// EnvPrefix prefixes environment variables, e.g. MODGRAPH_MAX_BACON.
	EnvPrefix = "MODGRAPH_"
)

// Load builds the effective options from, lowest priority first: the
// built-in defaults, the config file at path (skipped when path is ""),
// MODGRAPH_* environment variables, and the flags set on fs (nil skips
// flags). Flags are matched to keys by replacing "-" with "_".
//
// A pyproject.toml file contributes only its [tool.modgraph] table.
// Load does not validate; call [Options.Validate].
func Load(fs *pflag.FlagSet, path string) (*Options, error) {
	k := koanf.New(".")

	if err := k.Load(mapProvider(defaultMap()), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if fs != nil {
		if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, any) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if !knownKeys[key] {
				return "", nil
			}
			return key, posflag.FlagVal(fs, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var opts Options
	if err := k.Unmarshal("", &opts); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode configuration")
	}
	opts.normalize()
	return &opts, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if filepath.Base(path) != PyprojectName {
		if err := k.Load(file.Provider(path), ktoml.Parser()); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
		}
		return nil
	}

	pk := koanf.New(".")
	if err := pk.Load(file.Provider(path), ktoml.Parser()); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if err := k.Merge(pk.Cut(pyprojectSection)); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "merge [%s] from %s", pyprojectSection, path)
	}
	return nil
}

// Discover returns the config file to use in dir: modgraph.toml if it
// exists, otherwise pyproject.toml if it has a [tool.modgraph] table,
// otherwise "".
func Discover(dir string) string {
	if p := filepath.Join(dir, FileName); fileExists(p) {
		return p
	}
	p := filepath.Join(dir, PyprojectName)
	data, err := os.ReadFile(p)
	if err != nil {
		return ""
	}
	var pyproject struct {
		Tool map[string]toml.Primitive `toml:"tool"`
	}
	if _, err := toml.Decode(string(data), &pyproject); err != nil {
		return ""
	}
	if _, ok := pyproject.Tool["modgraph"]; ok {
		return p
	}
	return ""
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}

// Write encodes opts as a TOML config file.
func Write(opts *Options, w io.Writer) error {
	fmt.Fprintln(w, "# modgraph configuration")
	if err := toml.NewEncoder(w).Encode(opts); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// mapProvider loads a fixed map into koanf.
type mapProvider map[string]any

func (p mapProvider) Read() (map[string]any, error) { return p, nil }

func (p mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
