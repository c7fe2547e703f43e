// Package errors
// errors.go
// 提供带堆栈跟踪和错误码的错误类型，供解析器和宿主命令统一报告失败原因。
//
// 核心概念：
//   - 基础错误（fundamental）：New/Errorf 创建，记录消息和调用栈
//   - 包装错误（withStack/withMessage）：Wrap/WithStack/WithMessage 为已有错误附加上下文
//   - 带码错误（withCode）：WithCode/WrapC 为错误绑定已注册的错误码，ExitStatus 决定进程退出码
//
// 格式化约定：
//   - %s / %v：只输出消息
//   - %-v：带错误码输出 "[code: N] msg"
//   - %+v：逐层输出错误链和调用栈
package errors

import (
	stderrors "errors"
	"fmt"
	"io"
)

// fundamental 基础错误：消息 + 调用栈
type fundamental struct {
	msg string
	*stack
}

// New 返回带调用栈的错误
func New(message string) error {
	return &fundamental{
		msg:   message,
		stack: callers(),
	}
}

// Errorf 按格式生成消息，返回带调用栈的错误
func Errorf(format string, args ...interface{}) error {
	return &fundamental{
		msg:   fmt.Sprintf(format, args...),
		stack: callers(),
	}
}

func (f *fundamental) Error() string { return f.msg }

func (f *fundamental) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v':
		if st.Flag('+') {
			io.WriteString(st, f.msg)
			f.stack.Format(st, verb)
			return
		}
		fallthrough
	case 's':
		io.WriteString(st, f.msg)
	case 'q':
		fmt.Fprintf(st, "%q", f.msg)
	}
}

type withStack struct {
	error
	*stack
}

// WithStack 为 err 附加当前调用栈，err 为 nil 时返回 nil。
// 带码错误会保持错误码不变。
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*withCode); ok {
		return &withCode{
			err:   e.err,
			code:  e.code,
			cause: err,
			stack: callers(),
		}
	}
	return &withStack{err, callers()}
}

func (w *withStack) Cause() error  { return w.error }
func (w *withStack) Unwrap() error { return w.error }

func (w *withStack) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v':
		if st.Flag('+') {
			fmt.Fprintf(st, "%+v", w.Cause())
			w.stack.Format(st, verb)
			return
		}
		fallthrough
	case 's':
		io.WriteString(st, w.Error())
	case 'q':
		fmt.Fprintf(st, "%q", w.Error())
	}
}

// Wrap 为 err 附加消息和调用栈，err 为 nil 时返回 nil
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*withCode); ok {
		return &withCode{
			err:   stderrors.New(message),
			code:  e.code,
			cause: err,
			stack: callers(),
		}
	}
	return &withStack{
		&withMessage{cause: err, msg: message},
		callers(),
	}
}

// Wrapf 同 Wrap，消息按格式生成
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

type withMessage struct {
	cause error
	msg   string
}

// WithMessage 只附加消息，不记录调用栈
func WithMessage(err error, message string) error {
	if err == nil {
		return nil
	}
	return &withMessage{cause: err, msg: message}
}

// WithMessagef 同 WithMessage，消息按格式生成
func WithMessagef(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &withMessage{cause: err, msg: fmt.Sprintf(format, args...)}
}

func (w *withMessage) Error() string { return w.msg }
func (w *withMessage) Cause() error  { return w.cause }
func (w *withMessage) Unwrap() error { return w.cause }

func (w *withMessage) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v':
		if st.Flag('+') {
			fmt.Fprintf(st, "%+v\n", w.Cause())
			io.WriteString(st, w.msg)
			return
		}
		fallthrough
	case 's', 'q':
		io.WriteString(st, w.Error())
	}
}

// withCode 绑定错误码的错误
type withCode struct {
	err   error // 当前层的消息
	code  int   // 已注册的错误码
	cause error // 上一层错误
	*stack
}

// WithCode 创建一个新的带码错误
func WithCode(code int, format string, args ...interface{}) error {
	return &withCode{
		err:   fmt.Errorf(format, args...),
		code:  code,
		stack: callers(),
	}
}

// WrapC 用错误码和新消息包装 err，err 为 nil 时返回 nil
func WrapC(err error, code int, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &withCode{
		err:   fmt.Errorf(format, args...),
		code:  code,
		cause: err,
		stack: callers(),
	}
}

// Error 只返回当前层的消息，错误码通过 %-v 或 ParseCoder 获取
func (w *withCode) Error() string { return w.err.Error() }

func (w *withCode) Cause() error  { return w.cause }
func (w *withCode) Unwrap() error { return w.cause }

// Code 返回绑定的错误码
func (w *withCode) Code() int { return w.code }

func (w *withCode) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v':
		if st.Flag('+') {
			if w.cause != nil {
				fmt.Fprintf(st, "  ↳ %+v\n", w.cause)
			}
			fmt.Fprintf(st, "[code: %d][exit: %d] %s", w.code, ParseCoderByCode(w.code).ExitStatus(), w.err.Error())
			if w.stack != nil {
				w.stack.Format(st, verb)
			}
			return
		}
		if st.Flag('-') {
			fmt.Fprintf(st, "[code: %d] %s", w.code, w.err.Error())
			return
		}
		fallthrough
	case 's':
		io.WriteString(st, w.Error())
	case 'q':
		fmt.Fprintf(st, "%q", w.Error())
	}
}

// Cause 沿错误链找到最底层的错误
func Cause(err error) error {
	type causer interface {
		Cause() error
	}
	for err != nil {
		c, ok := err.(causer)
		if !ok || c.Cause() == nil {
			break
		}
		err = c.Cause()
	}
	return err
}

// Is 与 As 转发到标准库，调用方无需同时导入两个 errors 包
func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target interface{}) bool { return stderrors.As(err, target) }
