package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/heatmap/config"
)

func sampleOptions(t *testing.T) *options {
	t.Helper()
	data, err := json.Marshal(sampleDataset())
	require.NoError(t, err)

	input := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(input, data, 0o644))
	return &options{
		input:  input,
		cfg:    config.Default(),
		logger: discard(),
	}
}

func TestRunRender(t *testing.T) {
	var (
		opts = sampleOptions(t)
		dir  = t.TempDir()
		ro   = renderOptions{
			svg:    filepath.Join(dir, "heatmap.svg"),
			legend: filepath.Join(dir, "legend.svg"),
			png:    filepath.Join(dir, "heatmap.png"),
			html:   filepath.Join(dir, "index.html"),
		}
	)
	require.NoError(t, runRender(context.Background(), opts, ro, nil))

	for file, want := range map[string]string{
		ro.svg:    `<?xml`,
		ro.legend: `id="legend"`,
		ro.png:    "PNG",
		ro.html:   "<!DOCTYPE html>",
	} {
		data, err := os.ReadFile(file)
		require.NoError(t, err, file)
		assert.Contains(t, string(data), want, file)
	}

	page, err := os.ReadFile(ro.html)
	require.NoError(t, err)
	assert.Contains(t, string(page), "1753 - 2015: base temperature 8.66°C")
	assert.NotContains(t, string(page), "<?xml")
}

func TestRunRender_Stdout(t *testing.T) {
	var (
		opts = sampleOptions(t)
		out  bytes.Buffer
	)
	require.NoError(t, runRender(context.Background(), opts, renderOptions{svg: "-"}, &out))
	assert.True(t, strings.HasPrefix(out.String(), "<?xml"))
	assert.Equal(t, 3, strings.Count(out.String(), `class="cell"`))
}

func TestRunRender_MissingInput(t *testing.T) {
	opts := sampleOptions(t)
	opts.input = filepath.Join(t.TempDir(), "missing.json")

	dir := t.TempDir()
	err := runRender(context.Background(), opts, renderOptions{svg: filepath.Join(dir, "heatmap.svg")}, nil)
	require.Error(t, err)

	_, err = os.Stat(filepath.Join(dir, "heatmap.svg"))
	assert.True(t, os.IsNotExist(err))
}

func TestRootCmd_Render(t *testing.T) {
	opts := sampleOptions(t)
	out := filepath.Join(t.TempDir(), "heatmap.svg")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--input", opts.input, "render", "-o", out})
	cmd.SetErr(new(bytes.Buffer))
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `id="heatmap"`)
}

func TestRunRender_SharedDestination(t *testing.T) {
	var (
		opts = sampleOptions(t)
		dir  = t.TempDir()
		out  bytes.Buffer
	)
	tests := []renderOptions{
		{svg: "-", html: "-"},
		{svg: filepath.Join(dir, "out"), png: filepath.Join(dir, "out")},
	}
	for _, ro := range tests {
		err := runRender(context.Background(), opts, ro, &out)
		require.ErrorContains(t, err, "used by several outputs")
	}
	assert.Zero(t, out.Len())
	_, err := os.Stat(filepath.Join(dir, "out"))
	assert.True(t, os.IsNotExist(err))
}
