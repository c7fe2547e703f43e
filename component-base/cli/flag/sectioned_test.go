package flag

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedFlagSets(t *testing.T) {
	var nfs NamedFlagSets
	nfs.FlagSet("global").Bool("verbose", false, "Verbose output.")
	nfs.FlagSet("empty")
	nfs.FlagSet("log").String("log.level", "info", "Minimum log output `LEVEL`.")

	assert.Equal(t, []string{"global", "empty", "log"}, nfs.Order)
	assert.Same(t, nfs.FlagSet("global"), nfs.FlagSets["global"])

	var buf bytes.Buffer
	require.NoError(t, PrintSections(&buf, nfs, 79))
	want := "Global flags:\n" +
		"  --verbose            Verbose output.\n" +
		"\n" +
		"Log flags:\n" +
		"  --log.level <LEVEL>  Minimum log output LEVEL. (default \"info\")\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestWordSepNormalizeFunc(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetNormalizeFunc(WordSepNormalizeFunc)
	level := fs.String("log-level", "info", "")

	require.NoError(t, fs.Parse([]string{"--log_level=debug"}))
	assert.Equal(t, "debug", *level)

	assert.Equal(t, pflag.NormalizedName("a-b"), WarnWordSepNormalizeFunc(fs, "a_b"))
	assert.Equal(t, pflag.NormalizedName("plain"), WarnWordSepNormalizeFunc(fs, "plain"))
}
