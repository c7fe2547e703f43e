package options

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Values 解析结果：规范名 → 参数值列表，保持插入顺序。
// 顺序为解析过程中首次引用的顺序，随后是按声明顺序补入的默认值。
// 不带参数的开关每出现一次记录一个空串。
type Values struct {
	m *orderedmap.OrderedMap[string, []string]
}

func newValues() *Values {
	return &Values{m: orderedmap.New[string, []string]()}
}

// slot 返回 name 当前已记录的值，首次引用时创建空列表
func (v *Values) slot(name string) []string {
	if vals, ok := v.m.Get(name); ok {
		return vals
	}
	v.m.Set(name, []string{})
	return []string{}
}

func (v *Values) append(name, value string) {
	vals, _ := v.m.Get(name)
	v.m.Set(name, append(vals, value))
}

// setIfAbsent 只在 name 不存在时写入
func (v *Values) setIfAbsent(name string, vals []string) {
	if _, ok := v.m.Get(name); !ok {
		v.m.Set(name, vals)
	}
}

// Get 返回 name 对应值列表的副本。
// 存在但为空（如没有默认值的可选选项）时返回空切片和 true。
func (v *Values) Get(name string) ([]string, bool) {
	vals, ok := v.m.Get(name)
	if !ok {
		return nil, false
	}
	return append([]string{}, vals...), true
}

// Has 结果中是否存在 name
func (v *Values) Has(name string) bool {
	_, ok := v.m.Get(name)
	return ok
}

// Count name 对应的值个数，不存在时为 0
func (v *Values) Count(name string) int {
	vals, _ := v.m.Get(name)
	return len(vals)
}

// Len 结果中的选项个数
func (v *Values) Len() int { return v.m.Len() }

// Names 按插入顺序返回规范名
func (v *Values) Names() []string {
	names := make([]string, 0, v.m.Len())
	for pair := v.m.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Map 转为普通 map，值列表为副本
func (v *Values) Map() map[string][]string {
	out := make(map[string][]string, v.m.Len())
	for pair := v.m.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = append([]string{}, pair.Value...)
	}
	return out
}

// MarshalJSON 输出保持插入顺序的 JSON 对象
func (v *Values) MarshalJSON() ([]byte, error) {
	return v.m.MarshalJSON()
}
