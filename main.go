package main

import (
	"flag"
	"log"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set properties of the predefined Logger, including the log entry
	// prefix and a flag to disable printing the time, source file, and
	// line number.
	log.SetPrefix("jarvis-calories: ")
	log.SetFlags(0)

	serve := flag.Bool("serve", false, "run the HTTP API instead of the interactive command")
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if *serve {
		runServer(cfg)
		return
	}

	// Default mode: one interactive run of the calories command, the way
	// the assistant shell invokes it.
	if err := runCalories(newTermConsole()); err != nil {
		log.Fatalf("calories command: %v", err)
	}
}

// runServer exposes the recommendation pipeline over HTTP until killed.
func runServer(cfg config) {
	router := gin.Default()
	router.SetTrustedProxies(nil)

	h := &Handler{}
	h.registerRoutes(router)

	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
