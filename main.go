package main

import (
	"flag"
	"log"
	"os"

	"github.com/dochi486/ZombieDefence/data"
	"github.com/dochi486/ZombieDefence/pkg/app"
	"github.com/dochi486/ZombieDefence/pkg/embedded"
	"github.com/dochi486/ZombieDefence/pkg/game"
	"github.com/dochi486/ZombieDefence/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configPath = flag.String("config", "", "叠塔配置文件路径（为空使用内置 data/tower.yaml）")
	seed       = flag.Int64("seed", 0, "随机种子，0 表示使用配置文件中的值")
	verbose    = flag.Bool("verbose", false, "详细日志")
)

func main() {
	flag.Parse()

	if *verbose {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}

	embedded.Init(data.FS)

	towerConfig, err := loadTowerConfig(*configPath)
	if err != nil {
		log.Fatalf("读取配置失败: %v", err)
	}

	// 设置存储不可用时退化为仅内存设置
	gdataManager, err := utils.OpenStorage("zombie_tower")
	if err != nil {
		log.Printf("[main] Warning: settings storage unavailable: %v", err)
		gdataManager = nil
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		TowerConfig: towerConfig,
		Seed:        *seed,
		Settings:    game.NewSettingsManager(gdataManager),
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowTitle("Zombie Tower")

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}

// loadTowerConfig 优先读取命令行指定的文件，否则使用嵌入的默认配置
func loadTowerConfig(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return embedded.ReadFile("data/tower.yaml")
}
