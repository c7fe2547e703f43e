// optparse 按声明解析 shell 脚本参数的命令行工具
package main

import (
	"github.com/maxiaolu1981/cretem/cmdopts/internal/optparse"
)

func main() {
	optparse.NewApp("optparse").Run()
}
