package serverless

import (
	"log"
	"os"
)

// CloudRunMain is the Cloud Run entrypoint; the platform injects PORT.
func CloudRunMain() {
	app := GetApp()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(app.Listen(":" + port))
}
