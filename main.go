package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gravityball/common"
)

func main() {
	debug := flag.Bool("debug", false, "draw physics shapes and field state")
	watch := flag.Bool("watch", false, "hot reload tuning from ./prefabs")
	arena := flag.String("arena", "arena.yaml", "arena prefab to load")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.ScreenWidth, common.ScreenHeight)
	ebiten.SetWindowTitle("gravity ball")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(*arena, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
