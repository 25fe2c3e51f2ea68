//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.dochi486.zombietower -o build/android/tower.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/ZombieTower.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/dochi486/ZombieDefence/data"
	"github.com/dochi486/ZombieDefence/pkg/app"
	"github.com/dochi486/ZombieDefence/pkg/embedded"
	"github.com/dochi486/ZombieDefence/pkg/game"
	"github.com/dochi486/ZombieDefence/pkg/utils"
)

func init() {
	embedded.Init(data.FS)

	towerConfig, err := embedded.ReadFile("data/tower.yaml")
	if err != nil {
		log.Fatalf("读取配置失败: %v", err)
	}

	gdataManager, err := utils.OpenStorage("zombie_tower")
	if err != nil {
		log.Printf("[mobile] Warning: settings storage unavailable: %v", err)
		gdataManager = nil
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:     true,
		TowerConfig: towerConfig,
		Settings:    game.NewSettingsManager(gdataManager),
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
