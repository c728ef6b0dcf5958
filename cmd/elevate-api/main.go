package main

import (
	"context"
	"log"
	"net/http"

	httpadapter "github.com/NARENN143/Career/internal/adapters/http"
	"github.com/NARENN143/Career/internal/adapters/llm"
	firestorestore "github.com/NARENN143/Career/internal/adapters/storage/firestore"
	memstore "github.com/NARENN143/Career/internal/adapters/storage/memory"
	"github.com/NARENN143/Career/internal/app/insights"
	profileapp "github.com/NARENN143/Career/internal/app/profile"
	"github.com/NARENN143/Career/internal/config"
	"github.com/NARENN143/Career/internal/domain"
)

// remoteSurface is everything the Gemini client provides; the mock covers
// the same surface for local mode.
type remoteSurface interface {
	domain.MentorClient
	domain.CareerAdvisor
	domain.RoadmapGenerator
	domain.NewsletterGenerator
	domain.OpportunityFinder
}

func main() {
	ctx := context.Background()
	cfg := config.Load()

	var (
		remote remoteSurface
		err    error
	)

	if cfg.UseMockLLM {
		log.Println("[LLM] Using MOCK client")
		remote = llm.NewMockMentor()
	} else {
		log.Println("[LLM] Using Vertex Gemini client")
		remote, err = llm.NewGeminiClient(ctx, cfg.MentorModel, cfg.WorkerModel)
		if err != nil {
			log.Fatalf("error initializing Gemini client: %v", err)
		}
	}

	// Storage: Firestore or Memory
	var store domain.ProfileStore

	switch cfg.StorageBackend {
	case "firestore":
		log.Printf("[STORE] Using Firestore storage (project=%s)", cfg.GCPProjectID)
		fsStore, err := firestorestore.NewStore(ctx, cfg.GCPProjectID)
		if err != nil {
			log.Fatalf("error initializing Firestore store: %v", err)
		}
		store = fsStore

	default:
		log.Println("[STORE] Using in-memory storage")
		store = memstore.NewProfileStore()
	}

	profileSvc := profileapp.NewService(store, remote, remote)
	insightsSvc := insights.NewService(remote, remote)

	handler := httpadapter.NewServer(profileSvc, insightsSvc, remote, store, httpadapter.SessionConfig{
		RemoteTimeout: cfg.MentorTimeout,
		FallbackDelay: cfg.FallbackDelay,
	})

	port := ":" + cfg.Port
	log.Println("ElevateAI API listening on port:", port)
	if err := http.ListenAndServe(port, handler); err != nil {
		log.Fatal(err)
	}
}
