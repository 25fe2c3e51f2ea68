// Package data 内置的叠塔配置文件
//
// //go:embed 只能嵌入当前包目录及其子目录的文件，
// 因此嵌入声明放在 data/ 目录下，桌面端、移动端和 towersim 共用同一份数据。
package data

import "embed"

// FS 以 data/ 目录为根的嵌入文件系统
//
//go:embed tower.yaml
var FS embed.FS
