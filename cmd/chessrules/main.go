package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/storage"
	"github.com/hailam/chessrules/internal/uci"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	useCache   = flag.Bool("cache", false, "cache perft results on disk")
	cacheDir   = flag.String("cachedir", "", "perft cache directory (default: user cache directory)")
	debug      = flag.Bool("debug", false, "check board consistency after every move")
)

func main() {
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	board.DebugMoveValidation = *debug

	var cache uci.PerftCache
	if *useCache || *cacheDir != "" {
		store, err := openCache(*cacheDir)
		if err != nil {
			log.Printf("Warning: perft cache disabled: %v", err)
		} else {
			defer store.Close()
			cache = store
		}
	}

	// Create and run the protocol handler
	protocol := uci.New(cache)
	if err := protocol.Run(os.Stdin, os.Stdout); err != nil {
		log.Printf("input error: %v", err)
	}
}

// openCache opens the perft cache in dir, or in the platform data
// directory when dir is empty.
func openCache(dir string) (*storage.Storage, error) {
	if dir == "" {
		return storage.NewStorage()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return storage.Open(dir)
}
