// Package config loads HCL game configuration and exposes it to the CLI
// as a kong resolver, so flags given on the command line take precedence.
package config

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// File is the decoded configuration file. Unset attributes stay nil so
// the CLI default applies.
type File struct {
	TargetScore *int    `hcl:"target_score,optional"`
	MaxRounds   *int    `hcl:"max_rounds,optional"`
	Sleep       *int    `hcl:"sleep,optional"`
	Verbose     *int    `hcl:"verbose,optional"`
	Mode        *string `hcl:"mode,optional"`
	Seed        *string `hcl:"seed,optional"`
	SeedMode    *string `hcl:"seed_mode,optional"`
	LogLevel    *string `hcl:"log_level,optional"`

	Player   *Side     `hcl:"player,block"`
	Computer *Side     `hcl:"computer,block"`
	Simulate *Simulate `hcl:"simulate,block"`
}

// Side configures one role
type Side struct {
	Name  *string `hcl:"name,optional"`
	Score *int    `hcl:"score,optional"`
}

// Simulate configures the batch simulation command
type Simulate struct {
	Matches *int `hcl:"matches,optional"`
	Workers *int `hcl:"workers,optional"`
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(hclFile.Body)
}

func decode(body hcl.Body) (*File, error) {
	var f File
	if diags := gohcl.DecodeBody(body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return &f, nil
}

// Loader is a kong.ConfigurationLoader for HCL files
func Loader(r io.Reader) (kong.Resolver, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	f, err := Parse(src, "config.hcl")
	if err != nil {
		return nil, err
	}
	return f.Resolver(), nil
}

// Values flattens the file into flag-name keyed strings
func (f *File) Values() map[string]string {
	v := make(map[string]string)
	setInt(v, "target-score", f.TargetScore)
	setInt(v, "max-rounds", f.MaxRounds)
	setInt(v, "sleep", f.Sleep)
	setInt(v, "verbose", f.Verbose)
	setString(v, "mode", f.Mode)
	setString(v, "seed", f.Seed)
	setString(v, "seed-mode", f.SeedMode)
	setString(v, "log-level", f.LogLevel)
	if f.Player != nil {
		setString(v, "player-name", f.Player.Name)
		setInt(v, "player-score", f.Player.Score)
	}
	if f.Computer != nil {
		setString(v, "computer-name", f.Computer.Name)
		setInt(v, "computer-score", f.Computer.Score)
	}
	if f.Simulate != nil {
		setInt(v, "matches", f.Simulate.Matches)
		setInt(v, "workers", f.Simulate.Workers)
	}
	return v
}

// Resolver returns a kong resolver that supplies values for flags with a
// matching name. Kong consults it only for flags not set on the command line.
func (f *File) Resolver() kong.Resolver {
	values := f.Values()
	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		if v, ok := values[flag.Name]; ok {
			return v, nil
		}
		return nil, nil
	})
}

func setInt(m map[string]string, key string, v *int) {
	if v != nil {
		m[key] = strconv.Itoa(*v)
	}
}

func setString(m map[string]string, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}
