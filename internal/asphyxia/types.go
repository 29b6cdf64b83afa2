// Package asphyxia reads score records out of an Asphyxia CORE save
// database. Asphyxia persists plugin data as NeDB files: UTF-8 text, one
// JSON document per line. The database is only ever opened read-only; the
// plugin that owns the file is never interfered with.
package asphyxia

// ScoreDoc is one music-score document as written by the SDVX plugin.
// Documents are immutable inputs; nothing in this tool writes them back.
type ScoreDoc struct {
	// Collection discriminates document types within one database file.
	// Score rows live in the "music" collection.
	Collection string `json:"collection"`

	// RefID identifies the player profile the row belongs to.
	RefID string `json:"__refid"`

	// Scope is the save scope tag; score rows carry "plugins_profile".
	Scope string `json:"__s"`

	// MusicID is the in-game song ID.
	MusicID int `json:"mid"`

	// DifficultyCode is the plugin's difficulty tier (0=NOV .. 4=MXM).
	DifficultyCode int `json:"type"`

	Score   int `json:"score"`
	ExScore int `json:"exscore"`

	// ClearCode is the plugin's clear-lamp code (1=FAILED .. 6=MAXXIVE CLEAR).
	ClearCode int `json:"clear"`

	// Grade is recorded by the plugin but not exported; Kamaitachi derives
	// grades from the score.
	Grade int `json:"grade"`

	ButtonRate float64 `json:"buttonRate"`
	LongRate   float64 `json:"longRate"`
	VolRate    float64 `json:"volRate"`

	// Judgement counts exist only in some plugin versions, so absence must
	// be distinguishable from zero.
	Critical *int `json:"critical,omitempty"`
	Near     *int `json:"near,omitempty"`
	Error    *int `json:"error,omitempty"`

	CreatedAt Timestamp `json:"createdAt"`
}

// Timestamp is NeDB's persisted date wrapper.
type Timestamp struct {
	// Millis is the Unix timestamp in milliseconds.
	Millis int64 `json:"$$date"`
}

// HasJudgements reports whether the plugin recorded a full judgement
// breakdown for this play.
func (d ScoreDoc) HasJudgements() bool {
	return d.Critical != nil && d.Near != nil && d.Error != nil
}
