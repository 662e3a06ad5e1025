package main

import (
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/ytget/yt2music/internal/config"
	"github.com/ytget/yt2music/internal/download"
	"github.com/ytget/yt2music/internal/pipeline"
	"github.com/ytget/yt2music/internal/platform"
	"github.com/ytget/yt2music/internal/tag"
	"github.com/ytget/yt2music/internal/ui"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	myApp := app.NewWithID("com.ytget.yt2music")
	myWindow := myApp.NewWindow("YT2Music")

	settings := config.NewSettings(myApp)

	destinations, err := platform.NewDestinations(settings.GetDownloadFolder())
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to resolve destination folders")
	}

	svc := pipeline.NewService(
		platform.NewClient(logger),
		download.NewService(logger),
		tag.NewService(logger),
		destinations,
		logger,
	)

	ui.NewRootUI(myWindow, svc, settings, logger)

	myWindow.ShowAndRun()
}
