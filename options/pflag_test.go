package options

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxiaolu1981/cretem/cmdopts/code"
	"github.com/maxiaolu1981/cretem/cmdopts/errors"
)

type serverFlags struct {
	directory string
	port      int
	join      []string
	verbose   bool
}

func newServerFlagSet(f *serverFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	fs.StringVarP(&f.directory, "directory", "d", "", "data directory")
	fs.IntVarP(&f.port, "port", "p", 8080, "listen port")
	fs.StringSliceVarP(&f.join, "join", "j", []string{"localhost:7946"}, "peers to join")
	fs.BoolVar(&f.verbose, "verbose", false, "verbose output")
	fs.String("secret", "", "internal")
	_ = fs.MarkHidden("secret")
	return fs
}

func TestFromFlagSet(t *testing.T) {
	var f serverFlags
	opts := FromFlagSet(newServerFlagSet(&f))
	require.Len(t, opts, 4, "隐藏标志不转换")

	byName := map[string]Option{}
	for _, o := range opts {
		byName[o.CanonicalName()] = o
	}

	dir := byName["--directory"]
	assert.Equal(t, Names{"--directory", "-d"}, dir.Names())
	assert.Equal(t, Optional, dir.Appearance())
	assert.Empty(t, dir.DefaultValues())

	port := byName["--port"]
	assert.Equal(t, Optional, port.Appearance())
	assert.Equal(t, []string{"8080"}, port.DefaultValues())

	join := byName["--join"]
	assert.Equal(t, OptionalRepeat, join.Appearance())
	assert.Equal(t, []string{"localhost:7946"}, join.DefaultValues())

	verbose := byName["--verbose"]
	assert.Equal(t, OptionalNoParameter, verbose.Appearance())
	assert.Equal(t, Names{"--verbose"}, verbose.Names())
}

func TestApply(t *testing.T) {
	t.Run("写回显式给出的值", func(t *testing.T) {
		var f serverFlags
		fs := newServerFlagSet(&f)
		opts := FromFlagSet(fs)

		values, err := Parse([]string{"-d", "/data", "-j", "a:1", "--join", "b:2", "--verbose", "-p", "9090"}, opts)
		require.NoError(t, err)
		require.NoError(t, Apply(fs, opts, values))

		assert.Equal(t, "/data", f.directory)
		assert.Equal(t, 9090, f.port)
		assert.Equal(t, []string{"a:1", "b:2"}, f.join)
		assert.True(t, f.verbose)
		assert.True(t, fs.Changed("join"))
	})

	t.Run("默认值不标记为已修改", func(t *testing.T) {
		var f serverFlags
		fs := newServerFlagSet(&f)
		opts := FromFlagSet(fs)

		values, err := Parse(nil, opts)
		require.NoError(t, err)
		require.NoError(t, Apply(fs, opts, values))

		assert.Equal(t, 8080, f.port)
		assert.Equal(t, []string{"localhost:7946"}, f.join)
		assert.False(t, f.verbose)
		assert.False(t, fs.Changed("port"))
		assert.False(t, fs.Changed("join"))
	})

	t.Run("类型转换失败", func(t *testing.T) {
		var f serverFlags
		fs := newServerFlagSet(&f)
		opts := FromFlagSet(fs)

		values, err := Parse([]string{"--port", "http"}, opts)
		require.NoError(t, err)

		err = Apply(fs, opts, values)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, code.ErrApplyFlag))
		assert.Equal(t, 1, errors.ParseCoder(err).ExitStatus())
	})
}
