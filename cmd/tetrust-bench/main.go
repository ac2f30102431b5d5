package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/tetrust/board"
	"github.com/plus3/tetrust/game"
	"github.com/plus3/tetrust/piece"
	"github.com/plus3/tetrust/replay"
)

const (
	maxMovesPerTick = 2
	gapBucketTicks  = 10
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the run should last for.")
	seed := flag.Uint64("seed", 1, "Seed for the piece spawner and the autoplayer.")
	realtime := flag.Bool("realtime", false, "Pace ticks at the configured tick length instead of running flat out.")
	record := flag.String("record", "", "Write a replay of the session to this YAML file.")
	flag.Parse()

	log.Println("Starting tetrust bench...")

	cfg := game.DefaultConfig()
	cfg.Seed = *seed

	gaps := NewHistogram(gapBucketTicks)
	var lastCommit uint64
	var session *game.Game

	session, err := game.New(cfg, game.WithHooks(board.Hooks{
		Committed: func(piece.Piece) {
			gaps.Add(int(session.Ticks() - lastCommit))
			lastCommit = session.Ticks()
		},
	}))
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	recorder := replay.NewRecorder(session)
	player := NewAutoPlayer(rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15)), maxMovesPerTick)

	report := &Report{
		Duration: *duration,
		Seed:     *seed,
		Realtime: *realtime,
		Record:   *record,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running session for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	var pace <-chan time.Time
	if *realtime {
		ticker := time.NewTicker(cfg.Tick)
		defer ticker.Stop()
		pace = ticker.C
	}

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		if pace != nil {
			select {
			case <-ctx.Done():
				break Loop
			case <-pace:
			}
		}

		report.TotalIntents += player.Play(recorder)

		updateStart := time.Now()
		recorder.Update()
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	stats := session.Stats()
	report.TotalTicks = stats.Ticks
	report.Pieces = stats.Pieces
	report.RowsCleared = stats.RowsCleared
	for _, kind := range piece.Kinds() {
		report.Spawns = append(report.Spawns, KindCount{Kind: kind, Count: stats.Spawns(kind)})
	}
	report.CommitGaps = gaps.Buckets()
	report.Systems = session.SchedulerStats().Systems

	log.Println("Session finished.")

	if *record != "" {
		if err := replay.SaveFile(*record, recorder.Log()); err != nil {
			log.Fatalf("Failed to write replay: %v", err)
		}
		log.Printf("Replay written to %s\n", *record)
	}

	fmt.Println("\n\n--- Bench Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Bench complete.")
}
