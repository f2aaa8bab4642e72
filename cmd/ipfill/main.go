package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ipfill/internal/config"
	"ipfill/internal/gapfill"
	"ipfill/internal/monitor"
	"ipfill/internal/reader"
	"ipfill/internal/writer"
)

const defaultConfigFile = "ipfill.ini"

func main() {
	var (
		listFile   string
		outputFile string
		configFile string
		maxGap     uint
		watch      bool
	)

	flag.StringVar(&listFile, "l", "", "input file with one IPv4 address per line")
	flag.StringVar(&listFile, "list", "", "input file with one IPv4 address per line")
	flag.StringVar(&outputFile, "o", "", "output file (default is stdout)")
	flag.StringVar(&outputFile, "output", "", "output file (default is stdout)")
	flag.StringVar(&configFile, "c", defaultConfigFile, "INI configuration file")
	flag.StringVar(&configFile, "config", defaultConfigFile, "INI configuration file")
	flag.UintVar(&maxGap, "g", gapfill.DefaultMaxGap, "largest gap between neighbouring addresses to fill")
	flag.UintVar(&maxGap, "maxgap", gapfill.DefaultMaxGap, "largest gap between neighbouring addresses to fill")
	flag.BoolVar(&watch, "w", false, "keep running and reprocess the input file on change")
	flag.BoolVar(&watch, "watch", false, "keep running and reprocess the input file on change")
	flag.Parse()

	// Load configuration, then override with any flags given on the
	// command line
	cfg := config.New(configFile)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "l", "list":
			cfg.ListFile = listFile
		case "o", "output":
			cfg.OutputFile = outputFile
		case "g", "maxgap":
			cfg.MaxGap = maxGap
		case "w", "watch":
			cfg.Watch = watch
		}
	})

	if cfg.ListFile == "" {
		flag.Usage()
		log.Fatalf("Missing required input file (-l/--list)")
	}
	if cfg.Watch && cfg.OutputFile == "" {
		log.Fatalf("Watch mode requires an output file (-o/--output)")
	}

	run := func() error { return process(cfg) }
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}

	if !cfg.Watch {
		return
	}

	mon := monitor.New(cfg.ListFile, run)
	if err := mon.Start(); err != nil {
		log.Fatalf("Failed to start monitor: %v", err)
	}
	defer mon.Stop()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down...")
}

// process runs the read, sort, fill, write pipeline once
func process(cfg *config.Config) error {
	log.Printf("Processing IP list %s", cfg.ListFile)

	addrs, stats, err := reader.LoadFile(cfg.ListFile)
	if err != nil {
		return err
	}
	if len(addrs) == 0 {
		return fmt.Errorf("no valid addresses in %s", cfg.ListFile)
	}
	log.Printf("Read %d valid addresses (%d skipped)", stats.Valid, stats.Skipped)

	gapfill.Sort(addrs)
	result := gapfill.Fill(addrs, uint32(cfg.MaxGap))

	return writer.Write(result, cfg.OutputFile)
}
