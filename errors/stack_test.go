package errors

import (
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:noinline
func currentFrame() Frame {
	var pcs [1]uintptr
	runtime.Callers(2, pcs[:])
	return Frame(pcs[0])
}

func TestFrameFormat(t *testing.T) {
	f := currentFrame()
	_, _, line, _ := runtime.Caller(0)
	line--

	tests := []struct {
		format string
		want   func(string) bool
	}{
		{"%s", func(s string) bool { return s == "stack_test.go" }},
		{"%d", func(s string) bool { return s == fmt.Sprint(line) }},
		{"%n", func(s string) bool { return s == "TestFrameFormat" }},
		{"%v", func(s string) bool { return s == fmt.Sprintf("stack_test.go:%d", line) }},
		{"%+s", func(s string) bool {
			return strings.HasPrefix(s, "github.com/maxiaolu1981/cretem/cmdopts/errors.TestFrameFormat\n\t") &&
				strings.HasSuffix(s, "/errors/stack_test.go")
		}},
		{"%+v", func(s string) bool { return strings.HasSuffix(s, fmt.Sprintf("/errors/stack_test.go:%d", line)) }},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got := fmt.Sprintf(tt.format, f)
			assert.True(t, tt.want(got), "unexpected %q", got)
		})
	}
}

func TestUnknownFrame(t *testing.T) {
	var f Frame
	assert.Equal(t, "unknown", fmt.Sprintf("%s", f))
	assert.Equal(t, "0", fmt.Sprintf("%d", f))
	assert.Equal(t, "unknown:0", fmt.Sprintf("%v", f))
}

func TestFuncname(t *testing.T) {
	tests := map[string]string{
		"":                                      "",
		"runtime.main":                          "main",
		"github.com/a/b/errors.funcname":        "funcname",
		"github.com/a/b/errors.(*stack).Format": "(*stack).Format",
		"funcname":                              "funcname",
	}
	for in, want := range tests {
		assert.Equal(t, want, funcname(in), in)
	}
}

func TestStackTrace(t *testing.T) {
	st := callersFromHelper().StackTrace()
	require.NotEmpty(t, st)
	assert.Equal(t, "TestStackTrace", fmt.Sprintf("%n", st[0]))

	short := fmt.Sprintf("%s", st[:1])
	assert.Equal(t, "[stack_test.go]", short)

	long := fmt.Sprintf("%+v", st[:1])
	assert.True(t, strings.HasPrefix(long, "\ngithub.com/maxiaolu1981/cretem/cmdopts/errors.TestStackTrace\n\t"), long)
}

// callersFromHelper 让 callers 跳过本函数，栈顶为调用者
//
//go:noinline
func callersFromHelper() *stack { return callers() }
