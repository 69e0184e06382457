package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/handiism/lyrics-corpus/internal/config"
	"github.com/handiism/lyrics-corpus/internal/download"
	"github.com/handiism/lyrics-corpus/internal/genius"
)

func main() {
	// Command line flags
	var (
		outputFlag  = flag.String("output", "", "Output directory (overrides config)")
		configFlag  = flag.String("config", "", "Path to config file")
		maxFlag     = flag.Int("max-songs", 0, "Maximum number of songs to download (overrides config)")
		timeoutFlag = flag.Int("timeout", 0, "Request timeout in seconds for the Genius API (overrides config)")
		sortFlag    = flag.String("sort", "", "Song sort mode: popularity or title (overrides config)")
		tokenFlag   = flag.String("token", "", "Genius API access token (falls back to GENIUS_ACCESS_TOKEN)")
		imageFlag   = flag.Bool("image", false, "Save the artist image into the lyrics folder")
		verboseFlag = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Println("Lyrics Corpus - Download and analyze an artist's lyrics from Genius")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  lyrics-dl [options] <artist name>")
		fmt.Println()
		fmt.Println("For interactive mode, use: lyrics-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}
	artistName := flag.Arg(0)

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *outputFlag != "" {
		settings.OutputDir = *outputFlag
	}
	if *maxFlag > 0 {
		settings.MaxSongs = *maxFlag
	}
	if *timeoutFlag > 0 {
		settings.TimeoutSeconds = *timeoutFlag
	}
	if *sortFlag != "" {
		settings.Sort = *sortFlag
	}
	if *imageFlag {
		settings.SaveArtistImage = true
	}

	token, err := config.LoadToken(*tokenFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	client := genius.NewClient(genius.ClientOptions{
		Token:              token,
		Timeout:            time.Duration(settings.TimeoutSeconds) * time.Second,
		SkipNonSongs:       settings.SkipNonSongs,
		ExcludedTerms:      settings.ExcludedTerms,
		MaxConcurrentFetch: settings.MaxConcurrentFetch,
		MaxRetries:         settings.FetchMaxRetries,
		RetryCooldown:      time.Duration(settings.FetchRetryCooldown * float64(time.Second)),
	})

	manager := download.NewManager(settings, client, func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := "   "
		switch event.Level {
		case download.LevelError:
			prefix = "✗ "
		case download.LevelWarning:
			prefix = "! "
		case download.LevelSuccess:
			prefix = "✓ "
		case download.LevelInfo:
			prefix = "› "
		}

		fmt.Println(prefix + event.Message)
	})

	result, err := manager.Run(ctx, artistName)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nDownload cancelled.")
			os.Exit(130)
		}
		if errors.Is(err, genius.ErrArtistNotFound) || errors.Is(err, download.ErrNoSongsFound) {
			fmt.Fprintf(os.Stderr, "No songs found for artist %q.\n", artistName)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Failed to download lyrics: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Corpus created at: %s\n", result.CorpusPath)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRow(table.Row{"Songs saved", len(result.Files)})
	t.AppendRow(table.Row{"Total words (excluding stopwords)", result.Stats.TotalWords})
	t.AppendRow(table.Row{"Unique words (excluding stopwords)", result.Stats.UniqueWords})
	t.AppendRow(table.Row{"Unique words per 1,000 words", fmt.Sprintf("%.2f", result.Stats.UniquePerThousand)})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
