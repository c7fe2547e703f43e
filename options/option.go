// Package options 声明式命令行选项解析。
//
// 程序先用 New/NewWithDefault 声明选项（可接受的名字、出现次数策略、默认值），
// 再用 Parse 从左到右扫描参数向量，得到「规范名 → 参数值列表」的映射。
// 解析器不做类型转换，也不支持 -abc 形式的短选项合并或 --opt=value 写法。
//
// 必选选项（Mandatory/MandatoryRepeat）是否出现不由 Parse 检查，
// 需要时在解析后调用 CheckRequired。
package options

import (
	"fmt"
	"strings"
)

// Unbounded 表示出现次数没有上限
const Unbounded = -1

// Appearance 选项的出现次数与是否带参数的约定
type Appearance int

const (
	// Mandatory 必须出现且只出现一次，带参数
	Mandatory Appearance = iota
	// MandatoryRepeat 至少出现一次，带参数
	MandatoryRepeat
	// Optional 最多出现一次，带参数
	Optional
	// OptionalRepeat 可出现任意次，带参数
	OptionalRepeat
	// OptionalNoParameter 最多出现一次，不带参数的开关
	OptionalNoParameter
)

var appearanceNames = [...]string{
	Mandatory:           "mandatory",
	MandatoryRepeat:     "mandatory_repeat",
	Optional:            "optional",
	OptionalRepeat:      "optional_repeat",
	OptionalNoParameter: "optional_no_parameter",
}

func (a Appearance) String() string {
	if a < 0 || int(a) >= len(appearanceNames) {
		return fmt.Sprintf("Appearance(%d)", int(a))
	}
	return appearanceNames[a]
}

// ParseAppearance 解析声明文件中的策略名，大小写不敏感，'-' 与 '_' 等价
func ParseAppearance(s string) (Appearance, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, n := range appearanceNames {
		if n == name {
			return Appearance(i), nil
		}
	}
	return 0, fmt.Errorf("unknown appearance %q", s)
}

// Names 选项可接受的拼写，第一个是规范名
type Names []string

// NewNames 至少需要一个名字
func NewNames(name string, more ...string) Names {
	return append(Names{name}, more...)
}

// Option 一个选项声明，构造后只读
type Option struct {
	names          Names
	minAppearances int
	maxAppearances int
	noParameter    bool
	defaultValues  []string
}

// New 按策略声明一个没有默认值的选项。
// names 为空或策略未知属于声明程序的错误，直接 panic。
func New(names Names, a Appearance) Option {
	o := newOption(names, a)
	o.defaultValues = []string{}
	return o
}

// NewWithDefault 声明一个带默认值的选项，只允许 Optional 和 OptionalRepeat，
// 其他策略 panic。
func NewWithDefault(names Names, a Appearance, value string) Option {
	return NewWithDefaults(names, a, value)
}

// NewWithDefaults 同 NewWithDefault，但允许多个默认值；多个默认值只对 OptionalRepeat 有意义。
func NewWithDefaults(names Names, a Appearance, values ...string) Option {
	if a != Optional && a != OptionalRepeat {
		panic(fmt.Sprintf("option %v: a default value is only allowed for %s and %s, not %s",
			[]string(names), Optional, OptionalRepeat, a))
	}
	if a == Optional && len(values) > 1 {
		panic(fmt.Sprintf("option %v: %s accepts at most one default value, got %d",
			[]string(names), Optional, len(values)))
	}
	o := newOption(names, a)
	o.defaultValues = append([]string{}, values...)
	return o
}

func newOption(names Names, a Appearance) Option {
	if len(names) == 0 {
		panic("option declared without any name")
	}
	o := Option{names: append(Names{}, names...)}
	switch a {
	case Mandatory:
		o.minAppearances, o.maxAppearances = 1, 1
	case MandatoryRepeat:
		o.minAppearances, o.maxAppearances = 1, Unbounded
	case Optional:
		o.minAppearances, o.maxAppearances = 0, 1
	case OptionalRepeat:
		o.minAppearances, o.maxAppearances = 0, Unbounded
	case OptionalNoParameter:
		o.minAppearances, o.maxAppearances = 0, 1
		o.noParameter = true
	default:
		panic(fmt.Sprintf("option %v: unknown appearance %d", []string(names), int(a)))
	}
	return o
}

// Names 返回名字列表的副本
func (o Option) Names() Names { return append(Names{}, o.names...) }

// CanonicalName 第一个名字，用作结果映射的键
func (o Option) CanonicalName() string { return o.names[0] }

func (o Option) MinAppearances() int { return o.minAppearances }

// MaxAppearances 上限，无上限时为 Unbounded
func (o Option) MaxAppearances() int { return o.maxAppearances }

// NoParameter 为 true 时选项是不消耗后续参数的开关
func (o Option) NoParameter() bool { return o.noParameter }

// DefaultValues 返回默认值的副本
func (o Option) DefaultValues() []string { return append([]string{}, o.defaultValues...) }

// Mandatory 至少要出现一次
func (o Option) Mandatory() bool { return o.minAppearances > 0 }

// Appearance 还原声明时的策略
func (o Option) Appearance() Appearance {
	switch {
	case o.noParameter:
		return OptionalNoParameter
	case o.minAppearances > 0 && o.maxAppearances == 1:
		return Mandatory
	case o.minAppearances > 0:
		return MandatoryRepeat
	case o.maxAppearances == 1:
		return Optional
	default:
		return OptionalRepeat
	}
}

// hasName 名字按字节精确比较
func (o Option) hasName(name string) bool {
	for _, n := range o.names {
		if n == name {
			return true
		}
	}
	return false
}

// atLimit 当前已记录 count 次时是否已达上限
func (o Option) atLimit(count int) bool {
	return o.maxAppearances != Unbounded && count == o.maxAppearances
}
