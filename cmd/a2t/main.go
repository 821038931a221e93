package main

import (
	"mp3-transcriber/cmd/a2t/cmd"
)

// @title Audio to Text API
// @version 1.0
// @description Batch audio transcription with CSV, ZIP and XLSX export.
// @license.name MIT
// @BasePath /api/v1
func main() {
	// Execute the CLI command
	cmd.Execute()
}
