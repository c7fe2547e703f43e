/*
package errors
code.go
错误码注册表：每个错误码对应一个 Coder，描述用户可见的说明、参考文档，
以及宿主程序因该错误退出时应使用的进程退出码。

退出码约定：
- 0：成功
- 1：一般错误（默认）
- 2：命令行用法错误（未知选项、缺少参数等）
*/
package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"sync"
)

const (
	_unknownMsg = `an internal error occurred`
)

var (
	_codes     = map[int]Coder{}
	_codeMutex = &sync.Mutex{}

	// _unknownCode 未注册错误码的兜底 Coder
	_unknownCode = defaultCoder{C: 1, Exit: 1, Ext: _unknownMsg}
)

// Coder 错误码对外暴露的行为
type Coder interface {
	// Code 唯一错误码
	Code() int
	// ExitStatus 进程因此错误退出时使用的退出码
	ExitStatus() int
	// String 面向用户的说明
	String() string
	// Reference 参考文档地址
	Reference() string
}

type defaultCoder struct {
	C    int
	Exit int
	Ext  string
	Ref  string
}

func (d defaultCoder) Code() int { return d.C }

func (d defaultCoder) ExitStatus() int {
	if d.Exit == 0 {
		return 1
	}
	return d.Exit
}

func (d defaultCoder) String() string    { return d.Ext }
func (d defaultCoder) Reference() string { return d.Ref }

// NewCoder 构造一个 Coder，供 Register/MustRegister 使用
func NewCoder(code int, exit int, msg string, ref string) Coder {
	return defaultCoder{C: code, Exit: exit, Ext: msg, Ref: ref}
}

// Register 注册错误码，已存在则覆盖。编码 0 保留，注册时 panic。
func Register(coder Coder) {
	if coder.Code() == 0 {
		panic("code `0` is reserved as unknownCode error code")
	}
	withLock(func() {
		_codes[coder.Code()] = coder
	})
}

// MustRegister 注册错误码，重复注册时 panic
func MustRegister(coder Coder) {
	if coder.Code() == 0 {
		panic("code `0` is reserved as unknownCode error code")
	}
	withLock(func() {
		if _, ok := _codes[coder.Code()]; ok {
			panic(fmt.Sprintf("code: %d already exist", coder.Code()))
		}
		_codes[coder.Code()] = coder
	})
}

// ParseCoder 返回错误链中第一个带码错误对应的 Coder。
// err 为 nil 时返回 nil；链上没有带码错误或错误码未注册时返回兜底 Coder。
func ParseCoder(err error) Coder {
	if err == nil {
		return nil
	}
	var wc *withCode
	if stderrors.As(err, &wc) {
		return ParseCoderByCode(wc.code)
	}
	return _unknownCode
}

// ParseCoderByCode 按错误码查找 Coder，未注册时返回兜底 Coder
func ParseCoderByCode(code int) Coder {
	var coder Coder = _unknownCode
	withLock(func() {
		if c, ok := _codes[code]; ok {
			coder = c
		}
	})
	return coder
}

// IsCode 判断错误链上是否存在指定错误码，聚合错误中的每个分支都会检查
func IsCode(err error, code int) bool {
	for err != nil {
		if wc, ok := err.(*withCode); ok && wc.code == code {
			return true
		}
		if multi, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range multi.Unwrap() {
				if IsCode(e, code) {
					return true
				}
			}
			return false
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// Codes 返回已注册的错误码，按升序排列
func Codes() []int {
	var codes []int
	withLock(func() {
		for c := range _codes {
			codes = append(codes, c)
		}
	})
	sort.Ints(codes)
	return codes
}

func withLock(fn func()) {
	_codeMutex.Lock()
	defer _codeMutex.Unlock()
	fn()
}

func init() {
	Register(_unknownCode)
}
