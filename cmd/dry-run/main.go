package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-bot-launcher/internal/app"
	"github.com/MKhiriev/go-bot-launcher/internal/profile"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := app.BuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}
	build.Print(os.Stderr)

	os.Exit(app.NewApp(profile.ModeDryRun, build).Run(context.Background()))
}
