package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/machinesim/pkg/app"
	"github.com/decker502/machinesim/pkg/config"
	"github.com/decker502/machinesim/pkg/embedded"
	"github.com/decker502/machinesim/pkg/game"
)

// 嵌入的默认场景配置
const defaultScenePath = "data/machines.yaml"

var (
	configPath = flag.String("config", "", "场景配置文件路径（默认使用内置的 data/machines.yaml）")
	resources  = flag.String("resources", "", "资源目录（覆盖配置中的 resourcesDir）")
	verbose    = flag.Bool("verbose", false, "详细日志")
	noSave     = flag.Bool("no-save", false, "不读取也不写入存档")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	scene, err := loadScene(*configPath)
	if err != nil {
		log.Fatalf("场景配置加载失败: %v", err)
	}
	if *resources != "" {
		scene.ResourcesDir = *resources
	}

	var saves *game.SaveManager
	if !*noSave {
		saves = game.NewSaveManager(openGdata())
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Scene:   scene,
		Images:  game.NewResourceManager(scene.ResourcesDir),
		Saves:   saves,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(scene.Window.Width, scene.Window.Height)
	ebiten.SetWindowTitle("Machine Simulator")

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}

// loadScene 读取指定的配置文件，未指定时使用内置配置
func loadScene(path string) (*config.MachinesConfig, error) {
	if path != "" {
		return config.LoadMachinesConfig(path)
	}
	data, err := embedded.ReadFile(defaultScenePath)
	if err != nil {
		return nil, err
	}
	return config.ParseMachinesConfig(data)
}

// openGdata 打开存档目录，失败时返回 nil 进入降级模式
func openGdata() *gdata.Manager {
	m, err := gdata.Open(gdata.Config{AppName: "machinesim"})
	if err != nil {
		log.Printf("[Main] Failed to open save storage, records stay in memory: %v", err)
		return nil
	}
	return m
}
