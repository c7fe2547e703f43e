package options

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/maxiaolu1981/cretem/cmdopts/code"
	"github.com/maxiaolu1981/cretem/cmdopts/errors"
)

// FromFlagSet 把 pflag 标志集中的可见标志转换为选项声明，便于已有程序复用标志定义。
// 转换规则：
//   - 名字为 --name，有短名时追加 -x
//   - bool 标志 → OptionalNoParameter
//   - slice/array 标志 → OptionalRepeat，默认值取当前元素
//   - 其他标志 → Optional，默认值取 DefValue（为空时不设默认值）
//
// 声明顺序与 fs.VisitAll 一致（按名字排序，除非关闭了 SortFlags）。
func FromFlagSet(fs *pflag.FlagSet) []Option {
	var opts []Option
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		names := NewNames("--" + f.Name)
		if f.Shorthand != "" {
			names = append(names, "-"+f.Shorthand)
		}

		switch {
		case f.Value.Type() == "bool":
			opts = append(opts, New(names, OptionalNoParameter))
		case isSliceFlag(f):
			var defaults []string
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				defaults = sv.GetSlice()
			}
			opts = append(opts, NewWithDefaults(names, OptionalRepeat, defaults...))
		case f.DefValue != "":
			opts = append(opts, NewWithDefault(names, Optional, f.DefValue))
		default:
			opts = append(opts, New(names, Optional))
		}
	})
	return opts
}

func isSliceFlag(f *pflag.Flag) bool {
	t := f.Value.Type()
	return strings.HasSuffix(t, "Slice") || strings.HasSuffix(t, "Array")
}

// Apply 把解析结果写回标志集：值的类型转换交给 pflag 完成。
// 只处理实际出现在命令行上的选项（出现次数大于 0 且不是默认值），
// 开关类选项设置为 "true"。
func Apply(fs *pflag.FlagSet, opts []Option, values *Values) error {
	for _, opt := range opts {
		name := strings.TrimPrefix(opt.CanonicalName(), "--")
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		vals, _ := values.Get(opt.CanonicalName())
		if !explicit(opt, vals) {
			continue
		}
		if isSliceFlag(f) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				if err := sv.Replace(vals); err != nil {
					return errors.WrapC(err, code.ErrApplyFlag, "apply %s", opt.CanonicalName())
				}
				f.Changed = true
				continue
			}
		}
		for _, v := range vals {
			if opt.NoParameter() {
				v = "true"
			}
			if err := fs.Set(name, v); err != nil {
				return errors.WrapC(err, code.ErrApplyFlag, "apply %s=%q", opt.CanonicalName(), v)
			}
		}
	}
	return nil
}

// explicit 区分用户给出的值和补入的默认值
func explicit(opt Option, vals []string) bool {
	if len(vals) == 0 {
		return false
	}
	defaults := opt.DefaultValues()
	if len(defaults) != len(vals) {
		return true
	}
	for i := range vals {
		if vals[i] != defaults[i] {
			return true
		}
	}
	return false
}
