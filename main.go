package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"

	"go-tripsentry/aggregator"
	"go-tripsentry/analytics"
	"go-tripsentry/cache"
	"go-tripsentry/community"
	"go-tripsentry/cronjobs"
	"go-tripsentry/gazetteer"
	"go-tripsentry/geocode"
	"go-tripsentry/handlers"
	"go-tripsentry/infer"
	"go-tripsentry/mcptool"
	"go-tripsentry/routes"
	"go-tripsentry/upstream"
)

func main() {
	mcpMode := flag.Bool("mcp", false, "serve the MCP tool over stdio instead of the REST API")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	gaz := gazetteer.New()

	// Fill in coordinates for cities that ship without them, before the
	// server starts taking requests.
	if mapsClient, err := geocode.NewMapsClient(); err != nil {
		log.Printf("Geocode backfill skipped: %v", err)
	} else {
		geocode.BackfillGazetteer(mapsClient, gaz)
	}

	upstreamClient := upstream.NewClient()
	agCache := cache.New(cache.Fetchers{
		Advisory:  upstreamClient.FetchAdvisory,
		Secondary: upstreamClient.FetchUKAdvisory,
		Conflict:  upstreamClient.FetchConflict,
		Sentiment: upstreamClient.FetchSentiment,
	}, cache.DefaultPolicy())

	agg := aggregator.New(gaz, agCache)

	// Community votes: Firestore when configured, JSON file otherwise.
	var store community.Store
	if fsClient, err := community.InitFirestore(); err != nil {
		path := os.Getenv("SENTIMENT_STORE_PATH")
		if path == "" {
			path = "./data/community_sentiment.json"
		}
		log.Printf("Firestore unavailable (%v), using file store at %s", err, path)
		store = &community.FileStore{Path: path}
	} else {
		defer fsClient.Close()
		store = &community.FirestoreStore{Client: fsClient}
	}
	communitySvc := community.New(store, rand.New(rand.NewSource(time.Now().UnixNano())))

	if *mcpMode {
		s := mcptool.NewServer(mcptool.Deps{Gazetteer: gaz, Aggregator: agg})
		if err := mcptool.ServeStdio(s); err != nil {
			log.Fatal("MCP server error:", err)
		}
		return
	}

	events := analytics.NewLog()
	cronjobs.InitCronJobs(events)

	var openaiClient *openai.Client
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		openaiClient = openai.NewClient(key)
		log.Println("OPENAI_API_KEY loaded, briefings enabled")
	}

	inferrer := &infer.Inferrer{Gazetteer: gaz}
	if nlpClient, err := infer.InitLanguageClient(); err != nil {
		log.Printf("Entity-based inference disabled: %v", err)
	} else {
		defer nlpClient.Close()
		inferrer.NLP = nlpClient
	}

	env := &handlers.Env{
		Gazetteer:  gaz,
		Cache:      agCache,
		Aggregator: agg,
		Community:  communitySvc,
		Events:     events,
		OpenAI:     openaiClient,
		Inferrer:   inferrer,
	}

	r := routes.SetupRouter(env)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
