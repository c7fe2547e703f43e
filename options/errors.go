package options

import (
	"fmt"

	"github.com/maxiaolu1981/cretem/cmdopts/code"
	"github.com/maxiaolu1981/cretem/cmdopts/errors"
)

// ErrorKind 解析失败的类别
type ErrorKind int

const (
	// UnrecognizedOption 形如选项（以 '-' 开头）但没有声明
	UnrecognizedOption ErrorKind = iota + 1
	// UnexpectedValue 不像选项，也不属于任何选项
	UnexpectedValue
	// TooManyAppearances 出现次数将超过上限
	TooManyAppearances
	// MissingParameter 需要参数的选项位于末尾
	MissingParameter
	// ParameterLooksLikeOption 紧随其后的参数以 '-' 开头
	ParameterLooksLikeOption
	// MissingOption 必选选项没有出现，仅由 CheckRequired 产生
	MissingOption
)

var kindNames = map[ErrorKind]string{
	UnrecognizedOption:       "UnrecognizedOption",
	UnexpectedValue:          "UnexpectedValue",
	TooManyAppearances:       "TooManyAppearances",
	MissingParameter:         "MissingParameter",
	ParameterLooksLikeOption: "ParameterLooksLikeOption",
	MissingOption:            "MissingOption",
}

func (k ErrorKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Code 对应的已注册错误码
func (k ErrorKind) Code() int {
	switch k {
	case UnrecognizedOption:
		return code.ErrUnrecognizedOption
	case UnexpectedValue:
		return code.ErrUnexpectedValue
	case TooManyAppearances:
		return code.ErrTooManyAppearances
	case MissingParameter:
		return code.ErrMissingParameter
	case ParameterLooksLikeOption:
		return code.ErrParameterLooksLikeOption
	case MissingOption:
		return code.ErrMissingOption
	}
	return 0
}

// ParseError 由用户输入引起的解析失败。
// Option 是用户实际输入的拼写，而不是规范名。
type ParseError struct {
	Kind      ErrorKind
	Option    string
	Parameter string
	Max       int
	cause     error
}

func (e *ParseError) Error() string { return e.cause.Error() }

// Cause 返回带错误码的底层错误
func (e *ParseError) Cause() error { return e.cause }

func (e *ParseError) Unwrap() error { return e.cause }

// Code 错误码
func (e *ParseError) Code() int { return e.Kind.Code() }

func newParseError(kind ErrorKind, option, parameter string, max int) *ParseError {
	var cause error
	switch kind {
	case UnrecognizedOption:
		cause = errors.WithCode(kind.Code(), "unrecognized option '%s'", option)
	case UnexpectedValue:
		cause = errors.WithCode(kind.Code(),
			"unexpected unnamed value '%s' (did you forget the option name, or forget to quote a parameter list?)", option)
	case TooManyAppearances:
		cause = errors.WithCode(kind.Code(), "option '%s' appears too many times (i.e. more than %d times)", option, max)
	case MissingParameter:
		cause = errors.WithCode(kind.Code(), "option '%s' is missing its parameter", option)
	case ParameterLooksLikeOption:
		cause = errors.WithCode(kind.Code(),
			"option '%s' is missing its parameter (because '%s' looks like another option name)", option, parameter)
	case MissingOption:
		cause = errors.WithCode(kind.Code(), "option '%s' is mandatory but was not given", option)
	default:
		panic(fmt.Sprintf("unknown parse error kind %d", int(kind)))
	}
	return &ParseError{Kind: kind, Option: option, Parameter: parameter, Max: max, cause: cause}
}

// KindOf 取出错误链上第一个 ParseError 的类别
func KindOf(err error) (ErrorKind, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}
