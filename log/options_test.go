// Copyright (c) 2025 马晓璐
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package log

import (
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewOptions(t *testing.T) {
	opts := NewOptions()

	assert.Equal(t, zapcore.InfoLevel.String(), opts.Level)
	assert.Equal(t, consoleFormat, opts.Format)
	assert.False(t, opts.EnableColor)
	assert.False(t, opts.EnableCaller)
	assert.Equal(t, []string{"stderr"}, opts.OutputPaths)
	assert.Equal(t, []string{"stderr"}, opts.ErrorOutputPaths)
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    *Options
		wantErr int
	}{
		{name: "有效配置", opts: &Options{Level: "info", Format: consoleFormat}},
		{name: "格式大小写不敏感", opts: &Options{Level: "warn", Format: "JSON"}},
		{name: "无效日志级别", opts: &Options{Level: "loud", Format: consoleFormat}, wantErr: 1},
		{name: "级别和格式都无效", opts: &Options{Level: "loud", Format: "xml"}, wantErr: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.opts.Validate(), tt.wantErr)
		})
	}
}

func TestOptions_AddFlags(t *testing.T) {
	opts := NewOptions()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	opts.AddFlags(fs)

	err := fs.Parse([]string{"--log.level=debug", "--log.format=json", "--log.output-paths=stdout,/tmp/a.log"})
	require.NoError(t, err)

	assert.Equal(t, "debug", opts.Level)
	assert.Equal(t, "json", opts.Format)
	assert.Equal(t, []string{"stdout", "/tmp/a.log"}, opts.OutputPaths)
	assert.Contains(t, opts.String(), `"level":"debug"`)
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	opts := &Options{
		Level:            "debug",
		Format:           jsonFormat,
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
	}
	Init(opts)
	defer Init(NewOptions())

	assert.True(t, Enabled(DebugLevel))
	Debugw("parsed", "names", 2)
	Flush()

	assert.FileExists(t, path)
}
