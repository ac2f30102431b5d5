package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/tetrust/loop"
	"github.com/plus3/tetrust/piece"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Seed     uint64
	Realtime bool
	Record   string

	// Results
	TotalTicks    uint64
	TotalIntents  int
	TotalTime     time.Duration
	UpdateTime    Stats
	Pieces        int
	RowsCleared   int
	Spawns        []KindCount
	CommitGaps    []Bucket
	Systems       []loop.SystemStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type KindCount struct {
	Kind  piece.Kind
	Count int
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetrust Bench Report

## Run Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Realtime:** {{.Realtime}}
{{- if .Record}}
- **Replay:** {{.Record}}
{{- end}}

## Session
- **Ticks:** {{.TotalTicks}}
- **Intents:** {{.TotalIntents}}
- **Pieces Committed:** {{.Pieces}}
- **Rows Cleared:** {{.RowsCleared}}
- **Spawns:**
{{- range .Spawns}}
  - {{.Kind}}: {{.Count}}
{{- end}}
- **Ticks Between Commits:**
{{- range .CommitGaps}}
  - {{.Low}}-{{.High}}: {{.Count}}
{{- end}}

## Performance Results
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Tick):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

| System | Runs | Min | Avg | Max |
|--------|------|-----|-----|-----|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.MinDuration}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}} ({{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}} MB)
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
