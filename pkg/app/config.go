/*
package app
config.go
基于 viper 的配置加载：--config/-c 指定配置文件（JSON、TOML、YAML 等），
未指定时依次在当前目录、~/.<basename>、/etc/<basename> 下查找名为 <basename> 的文件；
环境变量以 <BASENAME>_ 为前缀覆盖配置项，如 log.level 对应 OPTPARSE_LOG_LEVEL。
*/

package app

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/maxiaolu1981/cretem/cmdopts/code"
	"github.com/maxiaolu1981/cretem/cmdopts/errors"
	"github.com/maxiaolu1981/cretem/cmdopts/log"
)

const configFlagName = "config"

// addConfigFlag 注册 --config/-c，并设置环境变量前缀
func (a *App) addConfigFlag(fs *pflag.FlagSet) {
	fs.StringVarP(&a.cfgFile, configFlagName, "c", a.cfgFile,
		"Read configuration from specified `FILE`, support JSON, TOML, YAML, HCL, or Java properties formats.")

	a.viper.AutomaticEnv()
	a.viper.SetEnvPrefix(strings.ReplaceAll(strings.ToUpper(a.basename), "-", "_"))
	a.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
}

// loadConfig 读取配置文件。显式指定的文件读取失败时报错，默认位置找不到文件时忽略。
func (a *App) loadConfig() error {
	if a.cfgFile != "" {
		a.viper.SetConfigFile(a.cfgFile)
	} else {
		a.viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.viper.AddConfigPath(filepath.Join(home, "."+a.basename))
		}
		a.viper.AddConfigPath(filepath.Join("/etc", a.basename))
		a.viper.SetConfigName(a.basename)
	}

	if err := a.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile == "" && stderrors.As(err, &notFound) {
			return nil
		}
		return errors.WrapC(err, code.ErrLoadConfig, "read config file %q", a.cfgFile)
	}
	return nil
}

// printConfig 以表格形式把生效的配置项输出到调试日志
func (a *App) printConfig() {
	if !log.Enabled(log.DebugLevel) {
		return
	}
	keys := a.viper.AllKeys()
	if len(keys) == 0 {
		return
	}
	table := uitable.New()
	table.Separator = " "
	table.MaxColWidth = 80
	table.RightAlign(0)
	for _, k := range keys {
		table.AddRow(fmt.Sprintf("%s:", k), a.viper.Get(k))
	}
	log.Debugf("%v Config file used: %s\n%v", progressMessage, a.viper.ConfigFileUsed(), table)
}
