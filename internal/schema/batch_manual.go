// Package schema defines the external data contracts the exporter speaks:
// the Kamaitachi "batch manual" import format and the lookup tables that
// translate Asphyxia plugin codes into Kamaitachi vocabulary.
//
// The batch-manual shape is an external, versioned contract owned by
// Kamaitachi. This package tracks it; it does not validate it semantically.
package schema

// Meta constants identifying the exported data on the Kamaitachi side.
const (
	MetaGame     = "sdvx"
	MetaPlaytype = "Single"
	MetaService  = "Asphyxia"
)

// MatchTypeInGameID tells Kamaitachi to resolve charts by the in-game
// song ID rather than by title/artist lookup.
const MatchTypeInGameID = "sdvxInGameID"

// LampFailed is the lamp value for a failed play. Fail filtering compares
// against the mapped lamp, not the raw plugin code.
const LampFailed = "FAILED"

// BatchManual is the top-level import document.
type BatchManual struct {
	Meta   BatchManualMeta    `json:"meta"`
	Scores []BatchManualScore `json:"scores"`
}

// BatchManualMeta identifies the game, playtype, and originating service.
type BatchManualMeta struct {
	Game     string `json:"game"`
	Playtype string `json:"playtype"`
	Service  string `json:"service"`
}

// BatchManualScore is a single exported play.
type BatchManualScore struct {
	MatchType    string           `json:"matchType"`
	Identifier   string           `json:"identifier"`
	Score        int              `json:"score"`
	Lamp         string           `json:"lamp"`
	Difficulty   string           `json:"difficulty"`
	TimeAchieved int64            `json:"timeAchieved"`
	Judgements   *Judgements      `json:"judgements,omitempty"`
	Optional     *OptionalMetrics `json:"optional,omitempty"`
}

// Judgements carries per-judgement hit counts for a play. Omitted when the
// plugin version did not record them.
type Judgements struct {
	Critical int `json:"critical"`
	Near     int `json:"near"`
	Miss     int `json:"miss"`
}

// OptionalMetrics holds metrics Kamaitachi accepts but does not require.
type OptionalMetrics struct {
	ExScore int `json:"exScore,omitempty"`
}

// DefaultMeta returns the meta block every export of this tool carries.
func DefaultMeta() BatchManualMeta {
	return BatchManualMeta{
		Game:     MetaGame,
		Playtype: MetaPlaytype,
		Service:  MetaService,
	}
}
