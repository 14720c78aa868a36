// Command toolmap converts a JSON list of tool specs into the declaration
// list a provider API expects, and normalizes inbound tool-call records back
// into canonical form.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/AuriMyth/aury-ai-model/core/callname"
	"github.com/AuriMyth/aury-ai-model/core/toolspec"
	"github.com/AuriMyth/aury-ai-model/observability"
	"github.com/AuriMyth/aury-ai-model/provider"
)

func main() {
	var (
		toolsFile    = flag.String("tools", "", "Path to JSON file with an array of tool specs")
		configFile   = flag.String("config", "", "Path to provider capabilities JSON file (optional)")
		providerName = flag.String("provider", "", "Provider name for capability overrides")
		callRecord   = flag.String("call", "", "Inbound call record JSON to normalize instead of mapping")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	if *toolsFile == "" && *callRecord == "" {
		fmt.Fprintln(os.Stderr, "Usage: toolmap -tools <file> [-config <file>] | -call <json>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *callRecord != "" {
		var raw callname.RawCall
		if err := json.Unmarshal([]byte(*callRecord), &raw); err != nil {
			log.Fatalf("Failed to parse call record: %v", err)
		}
		printJSON(callname.NormalizeCall(raw))
		return
	}

	data, err := os.ReadFile(*toolsFile)
	if err != nil {
		log.Fatalf("Failed to read tools file: %v", err)
	}

	var specs []toolspec.ToolSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		log.Fatalf("Failed to parse tools file: %v", err)
	}

	caps := provider.DefaultCapabilities()
	if *configFile != "" {
		loaded, err := provider.LoadCapabilities(*configFile)
		if err != nil {
			log.Fatalf("Failed to load capabilities: %v", err)
		}
		caps = *loaded
	}

	mapper := provider.NewMapper(caps, observability.NewSlogObserver(logger))
	printJSON(mapper.Map(context.Background(), *providerName, specs))
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
	fmt.Println(string(out))
}
