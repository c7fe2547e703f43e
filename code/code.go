// Package code 定义选项解析相关的错误码，并在包初始化时注册到 errors 包。
//
// 编码规则：服务11 + 模块 + 序号
//   - 1101xx：命令行解析失败（用户输入问题，退出码 2）
//   - 1102xx：选项声明与配置加载失败（退出码 1）
package code

import (
	"github.com/maxiaolu1981/cretem/cmdopts/errors"
)

// 命令行解析错误（1101xx）
const (
	// ErrUnrecognizedOption - 2: 形如选项但未声明
	ErrUnrecognizedOption int = iota + 110101

	// ErrUnexpectedValue - 2: 不属于任何选项的裸值
	ErrUnexpectedValue

	// ErrTooManyAppearances - 2: 选项出现次数超过上限
	ErrTooManyAppearances

	// ErrMissingParameter - 2: 需要参数的选项位于末尾
	ErrMissingParameter

	// ErrParameterLooksLikeOption - 2: 参数以 '-' 开头
	ErrParameterLooksLikeOption

	// ErrMissingOption - 2: 必选选项没有出现
	ErrMissingOption
)

// 声明与配置错误（1102xx）
const (
	// ErrInvalidDeclaration - 1: 选项声明文件内容无效
	ErrInvalidDeclaration int = iota + 110201

	// ErrLoadConfig - 1: 读取配置文件失败
	ErrLoadConfig

	// ErrApplyFlag - 1: 把解析结果写入 pflag 标志失败
	ErrApplyFlag

	// ErrShellNameConflict - 1: 两个选项映射到同一个 shell 变量名
	ErrShellNameConflict
)

const (
	exitGeneral = 1
	exitUsage   = 2
)

// ErrCode 实现 errors.Coder
type ErrCode struct {
	C    int
	Exit int
	Ext  string
	Ref  string
}

var _ errors.Coder = ErrCode{}

func (coder ErrCode) Code() int { return coder.C }

func (coder ErrCode) String() string { return coder.Ext }

func (coder ErrCode) Reference() string { return coder.Ref }

// ExitStatus 未设置时按一般错误处理
func (coder ErrCode) ExitStatus() int {
	if coder.Exit == 0 {
		return exitGeneral
	}
	return coder.Exit
}

func register(code int, exit int, message string, refs ...string) {
	var reference string
	if len(refs) > 0 {
		reference = refs[0]
	}
	errors.MustRegister(ErrCode{C: code, Exit: exit, Ext: message, Ref: reference})
}

func init() {
	register(ErrUnrecognizedOption, exitUsage, "Unrecognized option")
	register(ErrUnexpectedValue, exitUsage, "Unexpected unnamed value")
	register(ErrTooManyAppearances, exitUsage, "Option appears too many times")
	register(ErrMissingParameter, exitUsage, "Option is missing its parameter")
	register(ErrParameterLooksLikeOption, exitUsage, "Option parameter looks like another option name")
	register(ErrMissingOption, exitUsage, "Mandatory option was not given")

	register(ErrInvalidDeclaration, exitGeneral, "Invalid option declaration")
	register(ErrLoadConfig, exitGeneral, "Failed to load configuration")
	register(ErrApplyFlag, exitGeneral, "Failed to apply parsed value to flag")
	register(ErrShellNameConflict, exitGeneral, "Options map to the same shell variable")
}
