package main

import (
	"log"
	"os"

	"github.com/valyala/fasthttp"

	"wellness-engine/internal/handler"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Wellness engine starting on port %s", port)
	if err := fasthttp.ListenAndServe(":"+port, handler.HandleRequest); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
