package errors

import (
	"fmt"
	"io"
	"path"
	"runtime"
	"strconv"
	"strings"
)

// Frame 调用栈中的一帧，值为 PC+1（与 runtime.Callers 的返回约定一致）
type Frame uintptr

func (f Frame) pc() uintptr { return uintptr(f) - 1 }

func (f Frame) location() (file string, line int, name string) {
	fn := runtime.FuncForPC(f.pc())
	if fn == nil {
		return "unknown", 0, "unknown"
	}
	file, line = fn.FileLine(f.pc())
	return file, line, fn.Name()
}

// Format 支持的动词：
//
//	%s   文件名
//	%d   行号
//	%n   函数名
//	%v   文件名:行号
//	%+s  完整函数名 + 换行 + 文件绝对路径
//	%+v  完整函数名 + 换行 + 文件绝对路径:行号
func (f Frame) Format(s fmt.State, verb rune) {
	file, line, name := f.location()
	switch verb {
	case 's':
		if s.Flag('+') {
			io.WriteString(s, name)
			io.WriteString(s, "\n\t")
			io.WriteString(s, file)
			return
		}
		io.WriteString(s, path.Base(file))
	case 'd':
		io.WriteString(s, strconv.Itoa(line))
	case 'n':
		io.WriteString(s, funcname(name))
	case 'v':
		f.Format(s, 's')
		io.WriteString(s, ":")
		f.Format(s, 'd')
	}
}

// StackTrace 由栈顶到栈底排列的帧
type StackTrace []Frame

func (st StackTrace) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			for _, f := range st {
				io.WriteString(s, "\n")
				f.Format(s, verb)
			}
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, "[")
		for i, f := range st {
			if i > 0 {
				io.WriteString(s, " ")
			}
			f.Format(s, verb)
		}
		io.WriteString(s, "]")
	}
}

type stack []uintptr

func (s *stack) Format(st fmt.State, verb rune) {
	if verb == 'v' && st.Flag('+') {
		for _, pc := range *s {
			io.WriteString(st, "\n")
			Frame(pc).Format(st, 'v')
		}
	}
}

func (s *stack) StackTrace() StackTrace {
	frames := make(StackTrace, len(*s))
	for i, pc := range *s {
		frames[i] = Frame(pc)
	}
	return frames
}

// callers 跳过 runtime.Callers、callers 本身和构造函数，最多记录 32 帧
func callers() *stack {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	var st stack = pcs[0:n]
	return &st
}

// funcname 去掉包路径前缀，只保留函数名
func funcname(name string) string {
	i := strings.LastIndex(name, "/")
	name = name[i+1:]
	i = strings.Index(name, ".")
	return name[i+1:]
}
