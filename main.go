package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/lazharichir/tribulation/server"
)

func main() {
	fmt.Println("Starting Tribulation Card Game Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or error loading it:", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "7777"
	}

	saveDir := os.Getenv("SAVE_DIR")
	if saveDir == "" {
		saveDir = "saves"
	}

	s, err := server.NewServer(server.Options{
		SaveDir: saveDir,
		Debug:   os.Getenv("DEBUG") == "1",
	})
	if err != nil {
		log.Fatalf("Server setup failed: %v", err)
	}

	if err := s.Start(port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
