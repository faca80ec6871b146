// Package uci implements a UCI-style line protocol for driving the rules
// engine: set up positions, list and play moves, take them back and run
// perft.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/storage"
)

// PerftCache stores perft node counts between runs.
type PerftCache interface {
	LookupPerft(fen string, depth int) (int64, bool, error)
	StorePerft(fen string, depth int, nodes int64) error
	PerftResults() ([]storage.PerftResult, error)
	ClearPerft() error
}

// UCI implements the protocol handler.
type UCI struct {
	position *board.Position
	cache    PerftCache
	out      io.Writer

	quit bool

	// CPU profiling
	profileFile *os.File
}

// New creates a new protocol handler. cache may be nil.
func New(cache PerftCache) *UCI {
	return &UCI{
		position: board.NewPosition(),
		cache:    cache,
		out:      os.Stdout,
	}
}

// Position returns the current position.
func (u *UCI) Position() *board.Position {
	return u.position
}

// Run reads commands from r and writes responses to w until "quit" or the
// end of input.
func (u *UCI) Run(r io.Reader, w io.Writer) error {
	u.out = w
	u.quit = false
	scanner := bufio.NewScanner(r)

	for !u.quit && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		u.Handle(line)
	}
	return scanner.Err()
}

// Handle executes a single command line.
func (u *UCI) Handle(line string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}
	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "uci":
		u.handleUCI()
	case "isready":
		u.println("readyok")
	case "ucinewgame":
		u.position = board.NewPosition()
	case "position":
		if board.DebugMoveValidation {
			log.Printf("DEBUG: position %s", strings.Join(args, " "))
		}
		u.handlePosition(args)
	case "setoption":
		u.handleSetOption(args)
	case "move":
		u.handleMove(args)
	case "undo":
		u.handleUndo()
	case "legal":
		u.handleLegal()
	case "status":
		u.println(u.status())
	case "quit":
		u.handleQuit()
	// Debug commands
	case "d":
		u.println(u.position.String())
	case "fen":
		u.println(u.position.ToFEN())
	case "perft":
		u.handlePerft(args)
	case "cache":
		u.handleCache(args)
	default:
		u.info("Unknown command: %s", cmd)
	}
}

func (u *UCI) println(s string) {
	fmt.Fprintln(u.out, s)
}

func (u *UCI) info(format string, args ...any) {
	fmt.Fprintf(u.out, "info string "+format+"\n", args...)
}

// handleUCI responds to the "uci" command.
func (u *UCI) handleUCI() {
	u.println("id name ChessRules")
	u.println("id author ChessRules Team")
	u.println("")
	u.println("option name Debug type check default false")
	u.println("option name CPUProfile type string default <empty>")
	u.println("uciok")
}

// handlePosition parses and sets up a position.
// Formats:
//   - position startpos
//   - position startpos moves e2e4 e7e5
//   - position fen <fen>
//   - position fen <fen> moves e2e4
//
// The position is replaced only when the FEN and every move are valid.
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	// Find "moves" keyword
	setupEnd := len(args)
	for i, arg := range args {
		if arg == "moves" {
			setupEnd = i
			break
		}
	}
	moveStart := min(setupEnd+1, len(args))

	var pos *board.Position
	switch args[0] {
	case "startpos":
		pos = board.NewPosition()
	case "fen":
		fenStr := strings.Join(args[1:setupEnd], " ")
		parsed, err := board.ParseFEN(fenStr)
		if err != nil {
			u.info("Invalid FEN: %v", err)
			return
		}
		pos = parsed
	default:
		u.info("Invalid position command: %s", args[0])
		return
	}

	for _, moveStr := range args[moveStart:] {
		if err := play(pos, moveStr); err != nil {
			u.info("Invalid move: %s (%v)", moveStr, err)
			return
		}
	}
	u.position = pos

	if board.DebugMoveValidation {
		if err := u.position.Validate(); err != nil {
			log.Printf("DEBUG: position setup left an inconsistent board: %v", err)
		}
	}
}

// play parses a long algebraic move and plays it for the side to move.
func play(pos *board.Position, moveStr string) error {
	m, err := board.ParseMove(moveStr)
	if err != nil {
		return err
	}
	_, err = pos.Play(m)
	return err
}

// handleMove plays a batch of moves on the current position. If one fails,
// the moves already played from the batch are taken back.
func (u *UCI) handleMove(args []string) {
	if len(args) == 0 {
		u.info("Usage: move <from><to>[promotion]")
		return
	}
	for i, moveStr := range args {
		if err := play(u.position, moveStr); err != nil {
			u.info("Invalid move: %s (%v)", moveStr, err)
			for ; i > 0; i-- {
				if err := u.position.Undo(); err != nil {
					u.info("Undo failed: %v", err)
					return
				}
			}
			return
		}
	}
}

// handleUndo takes back the last move. The loaded position itself is not
// undone.
func (u *UCI) handleUndo() {
	if u.position.Plies() == 0 {
		u.info("Nothing to undo")
		return
	}
	if err := u.position.Undo(); err != nil {
		u.info("Undo failed: %v", err)
	}
}

// handleLegal prints the legal moves of the side to move, sorted.
func (u *UCI) handleLegal() {
	moves := u.position.LegalMoves()
	strs := make([]string, len(moves))
	for i, m := range moves {
		strs[i] = m.String()
	}
	slices.Sort(strs)

	u.println(strings.Join(strs, " "))
}

// status describes the position from the side to move's point of view.
func (u *UCI) status() string {
	side := u.position.SideToMove()
	switch {
	case u.position.IsCheckmate(side):
		return "checkmate"
	case u.position.IsStalemate(side):
		return "stalemate"
	case u.position.InCheck(side):
		return "check"
	}
	return "ongoing"
}

// handleQuit stops profiling and ends the loop.
func (u *UCI) handleQuit() {
	u.stopProfile()
	u.quit = true
}

func (u *UCI) stopProfile() {
	if u.profileFile != nil {
		pprof.StopCPUProfile()
		u.profileFile.Close()
		u.profileFile = nil
		log.Printf("CPU profile saved")
	}
}

// handleSetOption processes "setoption" commands.
func (u *UCI) handleSetOption(args []string) {
	// Format: setoption name <name> value <value>
	var name, value string
	readingName := false
	readingValue := false

	for _, arg := range args {
		switch arg {
		case "name":
			readingName = true
			readingValue = false
		case "value":
			readingName = false
			readingValue = true
		default:
			if readingName {
				if name != "" {
					name += " "
				}
				name += arg
			} else if readingValue {
				if value != "" {
					value += " "
				}
				value += arg
			}
		}
	}

	switch strings.ToLower(name) {
	case "debug":
		enabled := strings.ToLower(value) == "true"
		board.DebugMoveValidation = enabled
		if enabled {
			u.info("Debug mode enabled")
		}
	case "cpuprofile":
		u.stopProfile()
		// Start new profile if path provided
		if value != "" && value != "stop" {
			f, err := os.Create(value)
			if err != nil {
				u.info("Failed to create profile: %v", err)
				return
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				f.Close()
				u.info("Failed to start profile: %v", err)
				return
			}
			u.profileFile = f
			u.info("CPU profiling to %s", value)
		}
	default:
		u.info("Unknown option: %s", name)
	}
}

// handlePerft runs a perft test, printing the per-move breakdown.
func (u *UCI) handlePerft(args []string) {
	depth := 5
	if len(args) > 0 {
		d, err := strconv.Atoi(args[0])
		if err != nil || d < 1 {
			u.info("Invalid depth: %s", args[0])
			return
		}
		depth = d
	}

	fen := u.position.ToFEN()
	if u.cache != nil {
		nodes, found, err := u.cache.LookupPerft(fen, depth)
		if err != nil {
			log.Printf("Warning: perft cache lookup failed: %v", err)
		} else if found {
			fmt.Fprintf(u.out, "Nodes: %d (cached)\n", nodes)
			return
		}
	}

	start := time.Now()
	var nodes int64
	for _, e := range u.position.Divide(depth) {
		fmt.Fprintf(u.out, "%s: %d\n", e.Move, e.Nodes)
		nodes += e.Nodes
	}
	elapsed := time.Since(start)

	fmt.Fprintln(u.out)
	fmt.Fprintf(u.out, "Nodes: %d\n", nodes)
	fmt.Fprintf(u.out, "Time: %v\n", elapsed)
	if elapsed > 0 {
		nps := float64(nodes) / elapsed.Seconds()
		fmt.Fprintf(u.out, "NPS: %.0f\n", nps)
	}

	if u.cache != nil {
		if err := u.cache.StorePerft(fen, depth, nodes); err != nil {
			log.Printf("Warning: perft cache store failed: %v", err)
		}
	}
}

// handleCache lists or clears the perft cache.
// Formats:
//   - cache list
//   - cache clear
func (u *UCI) handleCache(args []string) {
	if u.cache == nil {
		u.info("Perft cache disabled")
		return
	}
	if len(args) == 0 {
		u.info("Usage: cache list|clear")
		return
	}

	switch args[0] {
	case "list":
		results, err := u.cache.PerftResults()
		if err != nil {
			u.info("Cache list failed: %v", err)
			return
		}
		for _, r := range results {
			fmt.Fprintf(u.out, "depth %d nodes %d fen %s\n", r.Depth, r.Nodes, r.FEN)
		}
		u.info("%d cached results", len(results))
	case "clear":
		if err := u.cache.ClearPerft(); err != nil {
			u.info("Cache clear failed: %v", err)
			return
		}
		u.info("Perft cache cleared")
	default:
		u.info("Usage: cache list|clear")
	}
}
