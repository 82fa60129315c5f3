package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"sipstation/internal/catalog"
	"sipstation/internal/llm"
	"sipstation/internal/order"
	"sipstation/internal/router"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	// ───────────────────────── CATALOG ─────────────────────────
	catalogDir := os.Getenv("CATALOG_DIR")
	if catalogDir == "" {
		catalogDir = "./config"
	}

	cat, err := catalog.Load(catalogDir)
	if err != nil {
		log.Fatalf("❌ Catalog load failed: %v", err)
	}
	log.Printf("Catalog loaded: %d beverages, %d condiments",
		len(cat.Beverages()), len(cat.Condiments()))

	// ───────────────────────── PROVIDERS ─────────────────────────
	// Providers without credentials simply stay unavailable; the
	// recommendation and chat paths fall back to local heuristics.
	registry := llm.NewRegistry(
		llm.NewGeminiClient(),
		llm.NewLLaMAClient(),
	)
	if names := registry.Providers(); len(names) > 0 {
		log.Printf("AI providers available: %v", names)
	} else {
		log.Println("No AI providers configured, running with local heuristics only")
	}

	// ───────────────────────── SERVICES ─────────────────────────
	orders := order.NewService()

	r := router.New(router.Deps{
		Catalog:   cat,
		Orders:    orders,
		Providers: registry,
	})

	// ───────────────────────── START ─────────────────────────
	addr := ":8000"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	log.Printf("🚀 API running at http://localhost%s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
