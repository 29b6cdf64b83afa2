package core

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/asphyxia-tools/tachi-export/internal/asphyxia"
	"github.com/asphyxia-tools/tachi-export/internal/schema"
)

// ErrUnmappedCode means a document carried a clear or difficulty code with
// no entry in the lookup tables. Policy: the row is skipped with a logged
// warning rather than failing the run or guessing a fallback value.
var ErrUnmappedCode = errors.New("unmapped code")

// Convert maps one Asphyxia music document to a Kamaitachi batch-manual
// score. It does not apply profile or fail filtering; [Exporter.Run] owns
// that policy.
func Convert(doc asphyxia.ScoreDoc, m *schema.Mappings) (schema.BatchManualScore, error) {
	lamp, ok := m.Lamp(doc.ClearCode)
	if !ok {
		return schema.BatchManualScore{}, fmt.Errorf(
			"%w: clear code %d for song %d", ErrUnmappedCode, doc.ClearCode, doc.MusicID)
	}

	difficulty, ok := m.Difficulty(doc.DifficultyCode)
	if !ok {
		return schema.BatchManualScore{}, fmt.Errorf(
			"%w: difficulty code %d for song %d", ErrUnmappedCode, doc.DifficultyCode, doc.MusicID)
	}

	rec := schema.BatchManualScore{
		MatchType:    schema.MatchTypeInGameID,
		Identifier:   strconv.Itoa(doc.MusicID),
		Score:        doc.Score,
		Lamp:         lamp,
		Difficulty:   difficulty,
		TimeAchieved: doc.CreatedAt.Millis,
	}

	// EX score is only recorded under certain game settings and versions.
	if doc.ExScore > 0 {
		rec.Optional = &schema.OptionalMetrics{ExScore: doc.ExScore}
	}

	// The plugin's "error" judgement is Kamaitachi's "miss".
	if doc.HasJudgements() {
		rec.Judgements = &schema.Judgements{
			Critical: *doc.Critical,
			Near:     *doc.Near,
			Miss:     *doc.Error,
		}
	}

	return rec, nil
}
