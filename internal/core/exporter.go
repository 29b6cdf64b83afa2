package core

import (
	"context"
	"log/slog"
	"time"

	"github.com/asphyxia-tools/tachi-export/internal/asphyxia"
	"github.com/asphyxia-tools/tachi-export/internal/config"
	"github.com/asphyxia-tools/tachi-export/internal/export"
	"github.com/asphyxia-tools/tachi-export/internal/schema"
	"github.com/google/uuid"
)

// scoreScope is the save-scope tag the SDVX plugin stamps on score rows.
// Rows with any other scope belong to different plugin data and are
// ignored even when the profile matches.
const scoreScope = "plugins_profile"

// Exporter runs the read/filter/convert/write pipeline. It is safe to
// create once and Run once; nothing persists between runs.
type Exporter struct {
	cfg      *config.Config
	log      *slog.Logger
	mappings *schema.Mappings
}

// Result summarizes one export run.
type Result struct {
	RunID           string
	Scanned         int // music documents in the database
	Matched         int // documents belonging to the configured profile
	Exported        int // records written to the output file
	SkippedFails    int // failed plays dropped because PreserveFails is off
	SkippedUnmapped int // rows dropped for unknown clear/difficulty codes
	OutputPath      string
	Duration        time.Duration
}

// New builds an Exporter, loading the embedded lookup tables.
func New(cfg *config.Config, log *slog.Logger) (*Exporter, error) {
	mappings, err := schema.LoadMappings()
	if err != nil {
		return nil, err
	}
	return &Exporter{cfg: cfg, log: log, mappings: mappings}, nil
}

// Run executes one full export. Either the complete batch is written to
// the output path or no file is touched; there is no partial-output mode.
func (e *Exporter) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	res := Result{
		RunID:      uuid.NewString(),
		OutputPath: e.cfg.Output.Path,
	}
	log := e.log.With("run_id", res.RunID)

	log.Info("starting export", "preserve_fails", e.cfg.Asphyxia.PreserveFails)

	// The database is fully read and closed before any conversion happens,
	// so no read cursor overlaps with a running Asphyxia instance.
	docs, err := asphyxia.ReadScores(e.cfg.Asphyxia.DatabasePath)
	if err != nil {
		return res, err
	}
	res.Scanned = len(docs)

	if err := ctx.Err(); err != nil {
		return res, err
	}

	scores := make([]schema.BatchManualScore, 0, len(docs))
	for _, doc := range docs {
		if doc.RefID != e.cfg.Asphyxia.ProfileID || doc.Scope != scoreScope {
			continue
		}
		res.Matched++

		rec, err := Convert(doc, e.mappings)
		if err != nil {
			// Unknown codes come from plugin versions ahead of the lookup
			// tables; skip the row so the rest of the batch still imports.
			log.Warn("skipping unmapped row", "song", doc.MusicID, "error", err)
			res.SkippedUnmapped++
			continue
		}

		if !e.cfg.Asphyxia.PreserveFails && rec.Lamp == schema.LampFailed {
			res.SkippedFails++
			continue
		}

		scores = append(scores, rec)
	}
	res.Exported = len(scores)

	log.Info("conversion finished",
		"scanned", res.Scanned,
		"matched", res.Matched,
		"exported", res.Exported,
		"skipped_fails", res.SkippedFails,
		"skipped_unmapped", res.SkippedUnmapped,
	)

	batch := schema.BatchManual{
		Meta:   schema.DefaultMeta(),
		Scores: scores,
	}
	if err := export.WriteBatch(e.cfg.Output.Path, batch); err != nil {
		return res, err
	}

	res.Duration = time.Since(start)
	log.Info("export written", "path", res.OutputPath, "duration", res.Duration)
	return res, nil
}
