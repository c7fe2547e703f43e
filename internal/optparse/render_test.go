package optparse

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxiaolu1981/cretem/cmdopts/code"
	"github.com/maxiaolu1981/cretem/cmdopts/component-base/json"
	"github.com/maxiaolu1981/cretem/cmdopts/errors"
	"github.com/maxiaolu1981/cretem/cmdopts/options"
)

func sampleResult(t *testing.T, collect bool) Result {
	t.Helper()
	opts := []options.Option{
		options.New(options.NewNames("--directory", "-d"), options.Mandatory),
		options.NewWithDefault(options.NewNames("--port", "-p"), options.Optional, "8080"),
		options.New(options.NewNames("--join", "-j"), options.OptionalRepeat),
		options.New(options.NewNames("--dry-run"), options.OptionalNoParameter),
	}
	args := []string{"-d", "/var/lib/my data", "extra", "-j", "it's", "--dry-run"}

	var r Result
	var err error
	if collect {
		r.Values, r.Unrecognized, err = options.ParseAndCollectUnrecognized(args, opts)
	} else {
		r.Values, err = options.Parse(args[3:], opts)
	}
	require.NoError(t, err)
	return r
}

func TestRenderShell(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, "shell", "", sampleResult(t, true)))
	assert.Equal(t,
		"DIRECTORY=('/var/lib/my data')\n"+
			"JOIN=('it'\"'\"'s')\n"+
			"DRY_RUN=('')\n"+
			"PORT=(8080)\n"+
			"UNRECOGNIZED=(extra)\n",
		buf.String())

	buf.Reset()
	require.NoError(t, render(&buf, "SHELL", "OPT_", sampleResult(t, false)))
	assert.Equal(t,
		"OPT_JOIN=('it'\"'\"'s')\n"+
			"OPT_DRY_RUN=('')\n"+
			"OPT_PORT=(8080)\n",
		buf.String(), "未收集时不输出 UNRECOGNIZED")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, "json", "", sampleResult(t, true)))

	var decoded struct {
		Values       map[string][]string `json:"values"`
		Unrecognized []string            `json:"unrecognized"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, map[string][]string{
		"--directory": {"/var/lib/my data"},
		"--join":      {"it's"},
		"--dry-run":   {""},
		"--port":      {"8080"},
	}, decoded.Values)
	assert.Equal(t, []string{"extra"}, decoded.Unrecognized)

	out := buf.String()
	assert.Less(t, strings.Index(out, `"--join"`), strings.Index(out, `"--port"`), "保持插入顺序")
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, "table", "", sampleResult(t, true)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "OPTION"))
	assert.Contains(t, lines[1], "--directory")
	assert.Contains(t, lines[1], "/var/lib/my data")
	assert.Contains(t, lines[5], "(unrecognized)")
	assert.Contains(t, lines[5], "extra")
}

func TestShellName(t *testing.T) {
	assert.Equal(t, "PORT", shellName("--port"))
	assert.Equal(t, "P", shellName("-p"))
	assert.Equal(t, "DRY_RUN", shellName("--dry-run"))
	assert.Equal(t, "LOG_LEVEL", shellName("--log.level"))
	assert.Equal(t, "_2FA", shellName("--2fa"))
	assert.Equal(t, "_", shellName("--"))

	assert.True(t, isShellName("OPT_"))
	assert.True(t, isShellName("_x1"))
	assert.False(t, isShellName("1x"))
	assert.False(t, isShellName("a-b"))
	assert.False(t, isShellName(""))
}

func TestRenderShellNameConflict(t *testing.T) {
	tests := []struct {
		name    string
		opts    []options.Option
		args    []string
		collect bool
		wantMsg string
	}{
		{
			name: "前导短横线数量不同",
			opts: []options.Option{
				options.New(options.NewNames("--port"), options.Optional),
				options.New(options.NewNames("-port"), options.Optional),
			},
			args:    []string{"--port", "1", "-port", "2"},
			wantMsg: "options '--port' and '-port' both map to shell variable PORT",
		},
		{
			name: "连字符与下划线",
			opts: []options.Option{
				options.New(options.NewNames("--a-b"), options.Optional),
				options.New(options.NewNames("--a_b"), options.Optional),
			},
			args:    []string{"--a-b", "1"},
			wantMsg: "options '--a-b' and '--a_b' both map to shell variable A_B",
		},
		{
			name: "与未识别参数变量同名",
			opts: []options.Option{
				options.New(options.NewNames("--unrecognized"), options.Optional),
			},
			args:    []string{"--unrecognized", "x", "stray"},
			collect: true,
			wantMsg: "options '--unrecognized' and '(unrecognized)' both map to shell variable UNRECOGNIZED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Result
			var err error
			if tt.collect {
				r.Values, r.Unrecognized, err = options.ParseAndCollectUnrecognized(tt.args, tt.opts)
			} else {
				r.Values, err = options.Parse(tt.args, tt.opts)
			}
			require.NoError(t, err)

			var buf bytes.Buffer
			err = render(&buf, "shell", "", r)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.True(t, errors.IsCode(err, code.ErrShellNameConflict))
			assert.Empty(t, buf.String())
		})
	}

	t.Run("变量名互不相同时正常输出", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, "shell", "OPT_", sampleResult(t, false)))
		assert.NotEmpty(t, buf.String())
	})
}
