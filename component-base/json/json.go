// Package json
// json.go
// 基于 json-iterator 的 JSON 门面，行为与标准库兼容，调用方只依赖本包。
package json

import (
	jsoniter "github.com/json-iterator/go"
)

// RawMessage 延迟解码的原始 JSON
type RawMessage = jsoniter.RawMessage

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	Marshal       = json.Marshal
	Unmarshal     = json.Unmarshal
	MarshalIndent = json.MarshalIndent
	NewDecoder    = json.NewDecoder
	NewEncoder    = json.NewEncoder
)
