package asphyxia

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeDB writes a database file with the given content and returns its path.
func writeDB(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sdvx@asphyxia.db")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

const (
	musicLine = `{"collection":"music","mid":1300,"type":4,"score":9876543,"exscore":5120,"clear":3,"grade":8,"buttonRate":98.5,"longRate":100,"volRate":99,"createdAt":{"$$date":1678430000000},"__refid":"ACA11374C2D83E9A","__s":"plugins_profile","_id":"Xb0eK2qeDHmnQ9rT"}`
	paramLine = `{"collection":"param","param":[0,0,1],"__refid":"ACA11374C2D83E9A","__s":"plugins_profile","_id":"q1W2e3R4t5Y6u7I8"}`
)

func TestReadScores(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantCount int
	}{
		{
			name:      "single music document",
			content:   musicLine + "\n",
			wantCount: 1,
		},
		{
			name:      "non-music collections filtered",
			content:   paramLine + "\n" + musicLine + "\n" + paramLine + "\n",
			wantCount: 1,
		},
		{
			name:      "blank lines skipped",
			content:   "\n" + musicLine + "\n\n" + musicLine + "\n",
			wantCount: 2,
		},
		{
			name:      "utf-8 bom skipped",
			content:   "\xEF\xBB\xBF" + musicLine + "\n",
			wantCount: 1,
		},
		{
			name:      "missing trailing newline",
			content:   musicLine,
			wantCount: 1,
		},
		{
			name:      "empty file",
			content:   "",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := ReadScores(writeDB(t, tt.content))
			if err != nil {
				t.Fatalf("ReadScores() error = %v", err)
			}
			if len(docs) != tt.wantCount {
				t.Errorf("ReadScores() returned %d docs, want %d", len(docs), tt.wantCount)
			}
		})
	}
}

func TestReadScores_Fields(t *testing.T) {
	docs, err := ReadScores(writeDB(t, musicLine+"\n"))
	if err != nil {
		t.Fatalf("ReadScores() error = %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("ReadScores() returned %d docs, want 1", len(docs))
	}

	doc := docs[0]
	if doc.RefID != "ACA11374C2D83E9A" {
		t.Errorf("RefID = %q, want %q", doc.RefID, "ACA11374C2D83E9A")
	}
	if doc.Scope != "plugins_profile" {
		t.Errorf("Scope = %q, want %q", doc.Scope, "plugins_profile")
	}
	if doc.MusicID != 1300 {
		t.Errorf("MusicID = %d, want 1300", doc.MusicID)
	}
	if doc.DifficultyCode != 4 {
		t.Errorf("DifficultyCode = %d, want 4", doc.DifficultyCode)
	}
	if doc.Score != 9876543 {
		t.Errorf("Score = %d, want 9876543", doc.Score)
	}
	if doc.ExScore != 5120 {
		t.Errorf("ExScore = %d, want 5120", doc.ExScore)
	}
	if doc.ClearCode != 3 {
		t.Errorf("ClearCode = %d, want 3", doc.ClearCode)
	}
	if doc.CreatedAt.Millis != 1678430000000 {
		t.Errorf("CreatedAt.Millis = %d, want 1678430000000", doc.CreatedAt.Millis)
	}
	if doc.HasJudgements() {
		t.Error("HasJudgements() = true for a document without judgement counts")
	}
}

func TestReadScores_Judgements(t *testing.T) {
	line := `{"collection":"music","mid":9,"type":1,"score":100,"clear":2,"critical":1200,"near":44,"error":2,"createdAt":{"$$date":1},"__refid":"A","__s":"plugins_profile"}`
	docs, err := ReadScores(writeDB(t, line+"\n"))
	if err != nil {
		t.Fatalf("ReadScores() error = %v", err)
	}
	doc := docs[0]
	if !doc.HasJudgements() {
		t.Fatal("HasJudgements() = false, want true")
	}
	if *doc.Critical != 1200 || *doc.Near != 44 || *doc.Error != 2 {
		t.Errorf("judgements = %d/%d/%d, want 1200/44/2", *doc.Critical, *doc.Near, *doc.Error)
	}
}

func TestReadScores_Missing(t *testing.T) {
	_, err := ReadScores(filepath.Join(t.TempDir(), "does-not-exist.db"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ReadScores() error = %v, want ErrNotFound", err)
	}
}

func TestReadScores_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "not json",
			content: "SQLite format 3\x00garbage\n",
		},
		{
			name:    "truncated document",
			content: musicLine + "\n" + `{"collection":"music","mid":` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadScores(writeDB(t, tt.content))
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("ReadScores() error = %v, want ErrMalformed", err)
			}
		})
	}
}
