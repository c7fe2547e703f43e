package options

import "strings"

// LooksLikeOptionName 以 '-' 开头的串被视为选项名。
// 这是启发式判断：像 "-5" 这样的负数参数同样会被当成选项名。
func LooksLikeOptionName(s string) bool {
	return strings.HasPrefix(s, "-")
}

// FindOption 返回第一个拥有名字 name 的选项。
// 只做精确匹配，不支持前缀或缩写；选项表很小，线性扫描即可。
func FindOption(name string, opts []Option) (*Option, bool) {
	for i := range opts {
		if opts[i].hasName(name) {
			return &opts[i], true
		}
	}
	return nil, false
}
