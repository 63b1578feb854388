package main

import (
	"bufio"
	"context"
	"corpintel/app/client/duckduckgo"
	"corpintel/app/client/newsapi"
	"corpintel/app/client/wikipedia"
	"corpintel/app/client/yahoo"
	"corpintel/app/config"
	"corpintel/app/server"
	"corpintel/app/service/analyst"
	"corpintel/app/service/bot"
	"corpintel/app/service/collector"
	"corpintel/app/service/pipeline"
	"corpintel/app/util/mylog"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
)

func main() {
	company := flag.String("company", "", "company to analyze; runs the pipeline once and prints the report")
	threadID := flag.String("thread", "default", "session identifier for the run")
	chatMode := flag.Bool("chat", false, "start the knowledge bot REPL")
	serveMode := flag.Bool("serve", false, "start the web dashboard")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	di := do.New()
	defer di.Shutdown()

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg, *verbose); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	if cfg.OpenAI.Token == "" {
		slog.Warn("OPENAI_API_KEY not set, LLM-backed steps will use deterministic output")
	}

	do.Provide(di, newsapi.NewClient)
	do.Provide(di, yahoo.NewClient)
	do.Provide(di, wikipedia.NewClient)
	do.Provide(di, duckduckgo.NewClient)
	do.Provide(di, collector.New)
	do.Provide(di, analyst.New)
	do.Provide(di, pipeline.New)
	do.Provide(di, bot.New)
	do.Provide(di, server.New)

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	switch {
	case *company != "":
		runReport(appCtx, di, *company, *threadID)
	case *chatMode:
		runChat(appCtx, di)
	case *serveMode:
		runServe(appCtx, di)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runReport(ctx context.Context, di *do.Injector, company, threadID string) {
	record := do.MustInvoke[*pipeline.Service](di).Run(ctx, company, threadID)

	if record.FinalReport == "" {
		fmt.Fprintln(os.Stderr, "Error: could not generate report")
		os.Exit(1)
	}

	fmt.Println(record.FinalReport)
}

func runChat(ctx context.Context, di *do.Injector) {
	botSvc := do.MustInvoke[*bot.Service](di)

	fmt.Println("Knowledge Bot - ask me anything. Type 'quit' to exit, 'clear' to reset memory, 'history' to review.")

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			return
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "quit":
			fmt.Println("Goodbye!")
			return
		case "clear":
			botSvc.ClearMemory()
			fmt.Println("Memory cleared.")
			continue
		case "history":
			history := botSvc.HistoryText()
			if history == "" {
				history = "No history yet."
			}
			fmt.Println(history)
			continue
		}

		fmt.Printf("Bot: %s\n", botSvc.Chat(ctx, input))

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

func runServe(ctx context.Context, di *do.Injector) {
	slog.Info("Service started")

	if err := do.MustInvoke[*server.Service](di).Run(ctx); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
