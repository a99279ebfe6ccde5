// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plambda.toml")
	writeFile(t, path, "max_steps = 50\ncolor = \"never\"\ndebug = true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Config{MaxSteps: 50, UnifyFuel: DefaultUnifyFuel, Color: "never", Debug: true}, cfg)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plambda.yaml")
	writeFile(t, path, "unify_fuel: 20\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Config{MaxSteps: DefaultMaxSteps, UnifyFuel: 20, Color: DefaultColor}, cfg)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "plambda.json"))
	require.ErrorContains(t, err, "unsupported config format")

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)

	negative := filepath.Join(dir, "negative.toml")
	writeFile(t, negative, "max_steps = -1\n")
	_, err = Load(negative)
	require.ErrorContains(t, err, "max_steps must not be negative")

	color := filepath.Join(dir, "color.yml")
	writeFile(t, color, "color: sometimes\n")
	_, err = Load(color)
	require.ErrorContains(t, err, "color must be auto, always or never")

	malformed := filepath.Join(dir, "malformed.yaml")
	writeFile(t, malformed, "max_steps: [1\n")
	_, err = Load(malformed)
	require.Error(t, err)
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	path, cfg, err := Find(nested)
	require.NoError(t, err)
	require.Empty(t, path)
	require.Equal(t, Default(), cfg)

	writeFile(t, filepath.Join(root, "plambda.yaml"), "max_steps: 7\n")
	path, cfg, err = Find(nested)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "plambda.yaml"), path)
	require.Equal(t, 7, cfg.MaxSteps)

	// TOML is preferred, and the nearest file wins
	writeFile(t, filepath.Join(root, "a", "plambda.toml"), "max_steps = 9\n")
	writeFile(t, filepath.Join(root, "a", "plambda.yaml"), "max_steps: 8\n")
	path, cfg, err = Find(nested)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "a", "plambda.toml"), path)
	require.Equal(t, 9, cfg.MaxSteps)
}
