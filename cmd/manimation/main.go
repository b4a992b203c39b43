package main

import (
	"github.com/architmishra-15/manimation/internal/app"
	"github.com/architmishra-15/manimation/internal/logger"
	"github.com/architmishra-15/manimation/internal/prefs"
)

func main() {
	log := logger.New()
	app.New(prefs.Load(), log).Run()
}
