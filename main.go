package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/roundface/face"
)

func main() {
	presetFile := flag.String("presets", "presets.yaml", "preset tuning file (facespec/ on disk overrides the embedded copy)")
	scriptName := flag.String("script", "", "choreography script in choreo/scripts/ (e.g. boot.tengo)")
	watch := flag.Bool("watch", true, "reload preset tuning when facespec/ changes on disk")
	scale := flag.Int("scale", 1, "window scale factor")
	flag.Parse()

	s := *scale
	if s < 1 {
		s = 1
	}
	ebiten.SetWindowSize(face.DisplayWidth*s, face.DisplayHeight*s)
	ebiten.SetWindowTitle("roundface")
	ebiten.SetTPS(30)

	game, err := NewGame(*presetFile, *scriptName, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
