// Copyright (c) 2025 马晓璐
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package verflag
// verflag.go
// 提供 --version 标志：--version 打印表格形式的版本信息，--version=raw 打印 JSON。
package verflag

import (
	"fmt"
	"io"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/maxiaolu1981/cretem/cmdopts/component-base/version"
)

type versionValue int

const (
	VersionFalse versionValue = 0
	VersionTrue  versionValue = 1
	VersionRaw   versionValue = 2
)

const strRawVersion = "raw"

func (v *versionValue) IsBoolFlag() bool { return true }

func (v *versionValue) Get() interface{} { return v }

func (v *versionValue) Set(s string) error {
	if s == strRawVersion {
		*v = VersionRaw
		return nil
	}
	boolVal, err := strconv.ParseBool(s)
	if boolVal {
		*v = VersionTrue
	} else {
		*v = VersionFalse
	}
	return err
}

func (v *versionValue) String() string {
	if *v == VersionRaw {
		return strRawVersion
	}
	return fmt.Sprintf("%v", *v == VersionTrue)
}

func (v *versionValue) Type() string { return "version" }

const versionFlagName = "version"

// Flag 一个可注册到任意 FlagSet 的版本标志
type Flag struct {
	value versionValue
}

// AddFlags 在 fs 上注册 --version，不带值时等价于 --version=true
func (f *Flag) AddFlags(fs *flag.FlagSet) {
	fs.Var(&f.value, versionFlagName, "Print version information and quit. Use --version=raw for JSON output.")
	fs.Lookup(versionFlagName).NoOptDefVal = "true"
}

// Requested 是否指定了 --version
func (f *Flag) Requested() bool { return f.value != VersionFalse }

// Print 按标志状态向 w 输出版本信息，未指定时不输出
func (f *Flag) Print(w io.Writer) {
	switch f.value {
	case VersionRaw:
		fmt.Fprintln(w, version.Get().ToJSON())
	case VersionTrue:
		fmt.Fprintln(w, version.Get().String())
	}
}
