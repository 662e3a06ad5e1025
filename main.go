package main

import (
	"fmt"
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

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt2music"
	AppName = "YT2Music"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	logger.Info().Str("version", version).Msg("Starting")

	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))

	settings := config.NewSettings(myApp)

	destinations, err := platform.NewDestinations(settings.GetDownloadFolder())
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to resolve destination folders")
	}

	client := platform.NewClient(logger)
	downloader := download.NewService(logger)
	tagger := tag.NewService(logger)
	svc := pipeline.NewService(client, downloader, tagger, destinations, logger)

	ui.NewRootUI(myWindow, svc, settings, logger)

	myWindow.ShowAndRun()
}
