// Package version
// version.go
// 构建信息（版本号、提交、构建时间）由 -ldflags 注入，支持表格和 JSON 两种输出。
package version

import (
	"fmt"
	"runtime"

	"github.com/gosuri/uitable"

	"github.com/maxiaolu1981/cretem/cmdopts/component-base/json"
)

var (
	// GitVersion 语义化版本号，如 v1.2.3
	GitVersion = "v0.0.0-master+$Format:%h$"
	// BuildDate ISO8601 格式的构建时间
	BuildDate = "1970-01-01T00:00:00Z"
	// GitCommit 完整的提交哈希
	GitCommit = "$Format:%H$"
	// GitTreeState "clean" 或 "dirty"
	GitTreeState = ""
)

// Info 版本元数据
type Info struct {
	GitVersion   string `json:"gitVersion"`
	GitCommit    string `json:"gitCommit"`
	GitTreeState string `json:"gitTreeState"`
	BuildDate    string `json:"buildDate"`
	GoVersion    string `json:"goVersion"`
	Compiler     string `json:"compiler"`
	Platform     string `json:"platform"`
}

// String 返回表格形式的版本信息
func (info Info) String() string {
	return string(info.Text())
}

// ToJSON 返回单行 JSON
func (info Info) ToJSON() string {
	s, _ := json.Marshal(info)
	return string(s)
}

// Text 以右对齐表格输出
func (info Info) Text() []byte {
	table := uitable.New()
	table.RightAlign(0)
	table.MaxColWidth = 80
	table.Separator = " "
	table.AddRow("gitVersion:", info.GitVersion)
	table.AddRow("gitCommit:", info.GitCommit)
	table.AddRow("gitTreeState:", info.GitTreeState)
	table.AddRow("buildDate:", info.BuildDate)
	table.AddRow("goVersion:", info.GoVersion)
	table.AddRow("compiler:", info.Compiler)
	table.AddRow("platform:", info.Platform)

	return table.Bytes()
}

// Get 汇总注入的构建信息和运行时信息
func Get() Info {
	return Info{
		GitVersion:   GitVersion,
		GitCommit:    GitCommit,
		GitTreeState: GitTreeState,
		BuildDate:    BuildDate,
		GoVersion:    runtime.Version(),
		Compiler:     runtime.Compiler,
		Platform:     fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
