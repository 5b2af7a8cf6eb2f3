package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/getidex/idex/config"
	"github.com/getidex/idex/pkg/models"
	"github.com/getidex/idex/pkg/providers"
	"github.com/getidex/idex/pkg/server"
)

// run is the entrypoint for the idex server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring idex: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting idex server version %s", config.VersionString)

	config.SetLogLevel(cfg)
	appState := NewAppState(cfg)

	srv := server.Create(appState)

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}

// NewAppState creates an AppState struct from the config file / ENV and
// initializes the document and audio provider clients
func NewAppState(cfg *config.Config) *models.AppState {
	ctx := context.Background()

	extractor, err := providers.NewDocAIExtractor(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create document extractor: %s", err)
	}

	transcriber, err := providers.NewGeminiTranscriber(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create audio transcriber: %s", err)
	}

	appState := &models.AppState{
		Extractor:   extractor,
		Transcriber: transcriber,
		Config:      cfg,
	}

	setupSignalHandler(appState)

	return appState
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if dumpConfig {
		// The API key is redacted from the dump.
		redacted := *cfg
		redacted.Gemini.APIKey = ""
		out, err := json.MarshalIndent(redacted, "", "  ")
		if err != nil {
			log.Fatalf("Error dumping config: %s", err)
		}
		fmt.Println(string(out))
		os.Exit(0)
	}
}

// setupSignalHandler sets up a signal handler to close the provider clients on termination
func setupSignalHandler(appState *models.AppState) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		if err := appState.Extractor.Close(); err != nil {
			log.Errorf("Error closing document extractor: %v", err)
		}
		if err := appState.Transcriber.Close(); err != nil {
			log.Errorf("Error closing audio transcriber: %v", err)
		}
		os.Exit(0)
	}()
}
