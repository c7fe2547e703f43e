package app

import (
	cliflag "github.com/maxiaolu1981/cretem/cmdopts/component-base/cli/flag"
	"github.com/maxiaolu1981/cretem/cmdopts/log"
)

// CliOptions 从命令行和配置文件读取的应用配置
type CliOptions interface {
	Flags() cliflag.NamedFlagSets
	Validate() []error
}

// CompleteableOptions 在校验前补全默认值
type CompleteableOptions interface {
	Complete() error
}

// PrintableOptions 可打印到调试日志
type PrintableOptions interface {
	String() string
}

// LoggableOptions 提供日志配置，加载配置后用来重新初始化全局日志
type LoggableOptions interface {
	LogOptions() *log.Options
}
