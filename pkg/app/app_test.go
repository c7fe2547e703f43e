package app

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxiaolu1981/cretem/cmdopts/code"
	cliflag "github.com/maxiaolu1981/cretem/cmdopts/component-base/cli/flag"
	"github.com/maxiaolu1981/cretem/cmdopts/errors"
	"github.com/maxiaolu1981/cretem/cmdopts/log"
)

type greetOptions struct {
	Log  *log.Options `mapstructure:"log"`
	Name string       `mapstructure:"name"`
}

func newGreetOptions() *greetOptions {
	return &greetOptions{Log: log.NewOptions()}
}

func (o *greetOptions) Flags() (fss cliflag.NamedFlagSets) {
	o.Log.AddFlags(fss.FlagSet("log"))
	fss.FlagSet("greet").StringVar(&o.Name, "name", o.Name, "Who to greet.")
	return fss
}

func (o *greetOptions) Validate() []error {
	errs := o.Log.Validate()
	if o.Name == "" {
		errs = append(errs, fmt.Errorf("--name must not be empty"))
	}
	return errs
}

func (o *greetOptions) LogOptions() *log.Options { return o.Log }

func newGreetApp(t *testing.T, opts ...Option) (*App, *bytes.Buffer) {
	t.Helper()
	o := newGreetOptions()
	greet := NewCommand("greet", "Print a greeting.",
		WithCommandRunFunc(func(out io.Writer, args []string) error {
			_, err := fmt.Fprintf(out, "hello %s %v\n", o.Name, args)
			return err
		}),
	)
	a := NewApp("apptest", "app test", append([]Option{
		WithOptions(o),
		WithSilence(),
		WithCommands(greet),
	}, opts...)...)

	var buf bytes.Buffer
	a.Command().SetOut(&buf)
	a.Command().SetErr(&buf)
	return a, &buf
}

func TestAppRunsSubcommand(t *testing.T) {
	a, out := newGreetApp(t)
	require.NoError(t, a.Execute([]string{"greet", "--name", "bob", "extra"}))
	assert.Equal(t, "hello bob [extra]\n", out.String())
}

func TestAppValidatesOptions(t *testing.T) {
	a, _ := newGreetApp(t)
	err := a.Execute([]string{"greet"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--name must not be empty")
}

func TestAppLoadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "apptest.yaml")
	require.NoError(t, os.WriteFile(file, []byte("name: alice\nlog:\n  level: warn\n"), 0o600))

	t.Run("配置文件中的值", func(t *testing.T) {
		a, out := newGreetApp(t)
		require.NoError(t, a.Execute([]string{"greet", "-c", file}))
		assert.Equal(t, "hello alice []\n", out.String())
		assert.Equal(t, "warn", a.Viper().GetString("log.level"))
	})

	t.Run("命令行优先于配置文件", func(t *testing.T) {
		a, out := newGreetApp(t)
		require.NoError(t, a.Execute([]string{"greet", "--config", file, "--name", "carol"}))
		assert.Equal(t, "hello carol []\n", out.String())
	})

	t.Run("指定的文件不存在", func(t *testing.T) {
		a, _ := newGreetApp(t)
		err := a.Execute([]string{"greet", "-c", filepath.Join(dir, "missing.yaml")})
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, code.ErrLoadConfig))
		assert.Equal(t, 1, errors.ParseCoder(err).ExitStatus())
	})
}

func TestAppVersion(t *testing.T) {
	a, out := newGreetApp(t)
	require.NoError(t, a.Execute([]string{"--version=raw"}))
	assert.Contains(t, out.String(), `"gitVersion"`)

	b, out := newGreetApp(t)
	require.NoError(t, b.Execute([]string{"--version"}))
	assert.Contains(t, out.String(), "gitVersion:")
}

func TestAppHelp(t *testing.T) {
	a, out := newGreetApp(t)
	require.NoError(t, a.Execute([]string{"--help"}))

	text := out.String()
	assert.Contains(t, text, "Usage:")
	assert.Contains(t, text, "Available commands:")
	assert.Contains(t, text, "greet")
	assert.Contains(t, text, "Log flags:")
	assert.Contains(t, text, "--log.level <LEVEL>")
	assert.Contains(t, text, "Global flags:")
	assert.Contains(t, text, "--config, -c <FILE>")
	assert.Contains(t, text, "--version")
}

func TestAppWithoutConfigAndVersion(t *testing.T) {
	a, out := newGreetApp(t, WithNoConfig(), WithNoVersion())
	require.NoError(t, a.Execute([]string{"--help"}))
	assert.NotContains(t, out.String(), "--config")
	assert.NotContains(t, out.String(), "--version")
}

func TestAppRunFunc(t *testing.T) {
	var called string
	a := NewApp("runner", "runner", WithNoConfig(), WithDefaultValidArgs(),
		WithRunFunc(func(basename string) error {
			called = basename
			return nil
		}))
	require.NoError(t, a.Execute(nil))
	assert.Equal(t, "runner", called)

	assert.Error(t, a.Execute([]string{"unexpected"}))
}

func TestExitStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "成功", err: nil, want: 0},
		{name: "普通错误", err: fmt.Errorf("plain"), want: 1},
		{name: "配置错误", err: errors.WithCode(code.ErrLoadConfig, "read"), want: 1},
		{name: "用法错误", err: errors.WithCode(code.ErrUnrecognizedOption, "unrecognized option '--x'"), want: 2},
		{
			name: "聚合中的用法错误",
			err:  errors.NewAggregate([]error{errors.WithCode(code.ErrMissingOption, "missing")}),
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitStatus(tt.err))
		})
	}
}

func TestFormatBaseName(t *testing.T) {
	assert.Equal(t, "optparse", FormatBaseName("optparse"))
}
