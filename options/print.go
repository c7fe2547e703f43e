package options

import (
	"github.com/maxiaolu1981/cretem/cmdopts/log"
)

// PrintValues 以 Debug 级别逐项输出解析结果，便于排查参数问题
func PrintValues(values *Values) {
	if !log.Enabled(log.DebugLevel) {
		return
	}
	for _, name := range values.Names() {
		vals, _ := values.Get(name)
		log.Debug("OPTION", log.String("name", name), log.Strings("values", vals))
	}
}
