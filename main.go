package main

import "github.com/flowiq/ingest-api/cmd"

// @title           FlowIQ Recording Ingestion API
// @version         1.0.0
// @description     Webhook ingestion endpoint for Plaud voice recordings with tenant resolution and transcription dispatch
// @contact.name    FlowIQ Support
// @contact.email   support@flowiq.example.com
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
