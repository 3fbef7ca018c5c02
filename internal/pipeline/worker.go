package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgallion1/lecturemap/internal/parser"
)

// Worker processes a single render job.
type Worker struct {
	renderer   *Renderer
	log        *slog.Logger
	parserOpts parser.Options
}

func NewWorker(renderer *Renderer, log *slog.Logger, parserOpts parser.Options) *Worker {
	return &Worker{
		renderer:   renderer,
		log:        log,
		parserOpts: parserOpts,
	}
}

// Process parses the uploaded file into a summary and renders it.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	summary, title, err := parser.Summary(job.Filename, job.FileData(), w.parserOpts)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	job.mu.Lock()
	if job.Title == "" {
		job.Title = title
	}
	job.mu.Unlock()

	if err := ctx.Err(); err != nil {
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if strings.TrimSpace(summary) == "" {
		log.Warn("no extractable content, rendering placeholder")
	}

	// Phase 2: Render
	job.SetStatus(StatusRendering, "rendering")
	res := w.renderer.Render(summary, job.Options)
	if res.MermaidError != "" {
		log.Warn("diagram text failed validation", "error", res.MermaidError)
		job.AddError("mermaid: " + res.MermaidError)
	}

	job.complete(summary, res)
	log.Info("render complete",
		"summary_bytes", len(summary),
		"graph_nodes", len(res.Graph.Nodes),
		"sections", len(res.Outline),
	)
}
