// Package flag
// flags.go
// 基于 spf13/pflag 的辅助函数：标志名规范化与调试打印。
package flag

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/maxiaolu1981/cretem/cmdopts/log"
)

// WordSepNormalizeFunc 把标志名中的 "_" 转换为 "-"，如 log_level → log-level
func WordSepNormalizeFunc(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if strings.Contains(name, "_") {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	}
	return pflag.NormalizedName(name)
}

// WarnWordSepNormalizeFunc 同 WordSepNormalizeFunc，并对旧写法输出警告
func WarnWordSepNormalizeFunc(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if strings.Contains(name, "_") {
		nname := strings.ReplaceAll(name, "_", "-")
		log.Warnf("%s is DEPRECATED and will be removed in a future version. Use %s instead.", name, nname)

		return pflag.NormalizedName(nname)
	}
	return pflag.NormalizedName(name)
}

// PrintFlags 以 Debug 级别输出所有标志及其值
func PrintFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(flag *pflag.Flag) {
		log.Debugf("FLAG: --%s=%q", flag.Name, flag.Value)
	})
}
