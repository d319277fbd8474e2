package main

import (
	"embed"
	"log"

	"Pomodoro/resource"
	"Pomodoro/timer"
	"Pomodoro/ui"

	"fyne.io/fyne/v2/app"
)

//go:embed assets/*
var content embed.FS

func main() {
	fyneApp := app.New()
	fyneApp.Settings().SetTheme(ui.NewCustomTheme())

	a, err := NewAppManager(resource.NewResolver(content), timer.NewClockScheduler())
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	w := ui.CreateMainWindow(a, fyneApp, a.icons)
	a.mainWindow = w
	w.SetOnClosed(a.Shutdown)

	w.ShowAndRun()
}
