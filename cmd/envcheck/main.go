package main

import (
	"os"

	"github.com/MKhiriev/go-bot-launcher/internal/app"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := app.BuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}
	os.Exit(app.NewCheckCommand(build, os.Environ()).Execute())
}
