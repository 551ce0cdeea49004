package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/patrickprogramme/ytscript/internal/config"
	"github.com/patrickprogramme/ytscript/internal/subtitles"
	"github.com/patrickprogramme/ytscript/internal/yt"
	"github.com/patrickprogramme/ytscript/pkg/model"
)

// fakeUI enregistre ce qui est affiché ; GetVideoInput renvoie une valeur fixe.
type fakeUI struct {
	input  string
	infos  []string
	errors []string
}

func (f *fakeUI) GetVideoInput(ctx context.Context) (string, error) { return f.input, nil }

func (f *fakeUI) PrintInfo(ctx context.Context, s string) { f.infos = append(f.infos, s) }

func (f *fakeUI) PrintError(ctx context.Context, s string) { f.errors = append(f.errors, s) }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "ytscript.yaml"))
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return cfg
}

func testClient() *fakeClient {
	return &fakeClient{
		list: listWith(yt.TranscriptHandle{Lang: "en", Source: model.SubSourceAutomatic, BaseURL: "u"}),
		segs: []subtitles.Segment{
			{Start: 0.0, Text: "Hello world"},
			{Start: 65.0, Text: "One minute in"},
		},
	}
}

func TestRun_StdoutFlow(t *testing.T) {
	cfg := testConfig(t)
	tui := &fakeUI{}
	client := testClient()
	flags := &CLIFlags{Video: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}

	a := New(cfg, tui, flags, client)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	joined := strings.Join(tui.infos, "\n")
	if !strings.Contains(joined, "dQw4w9WgXcQ") {
		t.Error("l'identifiant résolu devrait être annoncé")
	}
	if !strings.Contains(joined, "--- TRANSCRIPT ---") {
		t.Error("le séparateur de transcript est attendu sur stdout")
	}
	if !strings.Contains(joined, "Hello world\nOne minute in") {
		t.Errorf("transcript attendu dans la sortie; got:\n%s", joined)
	}
}

func TestRun_TimestampsFlag(t *testing.T) {
	cfg := testConfig(t)
	tui := &fakeUI{}
	client := testClient()
	flags := &CLIFlags{Video: "dQw4w9WgXcQ", Timestamps: true}

	a := New(cfg, tui, flags, client)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	joined := strings.Join(tui.infos, "\n")
	want := "[00:00] Hello world\n[01:05] One minute in"
	if !strings.Contains(joined, want) {
		t.Errorf("sortie sans timestamps; got:\n%s", joined)
	}
}

func TestRun_OutputFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.OutputDir = t.TempDir()
	tui := &fakeUI{}
	client := testClient()
	flags := &CLIFlags{Video: "dQw4w9WgXcQ", Output: "transcript.txt"}

	a := New(cfg, tui, flags, client)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "transcript.txt"))
	if err != nil {
		t.Fatalf("lecture du fichier de sortie: %v", err)
	}
	if string(data) != "Hello world\nOne minute in" {
		t.Errorf("contenu = %q", data)
	}
}

func TestRun_OutputDirDerivesFilename(t *testing.T) {
	cfg := testConfig(t)
	outDir := t.TempDir()
	cfg.OutputDir = "." // chemin absolu : OutputDir ne doit pas s'appliquer
	tui := &fakeUI{}
	client := testClient()
	flags := &CLIFlags{Video: "dQw4w9WgXcQ", Output: outDir}

	a := New(cfg, tui, flags, client)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// nom dérivé du titre du listing : "Sample (en).txt"
	if _, err := os.Stat(filepath.Join(outDir, "Sample (en).txt")); err != nil {
		t.Errorf("fichier dérivé introuvable: %v", err)
	}
}

func TestRun_InvalidInput(t *testing.T) {
	cfg := testConfig(t)
	cfg.ClipboardLookup = false
	tui := &fakeUI{}
	flags := &CLIFlags{Video: "https://example.com"}

	a := New(cfg, tui, flags, testClient())
	err := a.Run(context.Background())
	if !errors.Is(err, yt.ErrNoVideoID) {
		t.Fatalf("err = %v; want ErrNoVideoID", err)
	}
}

func TestRun_NoInputNoClipboard(t *testing.T) {
	cfg := testConfig(t)
	cfg.ClipboardLookup = false
	tui := &fakeUI{}
	flags := &CLIFlags{}

	a := New(cfg, tui, flags, testClient())
	if err := a.Run(context.Background()); !errors.Is(err, yt.ErrNoVideoID) {
		t.Fatalf("err = %v; want ErrNoVideoID", err)
	}
}

func TestRun_UIInputUsedWhenNoArg(t *testing.T) {
	cfg := testConfig(t)
	tui := &fakeUI{input: "https://youtu.be/dQw4w9WgXcQ"}
	client := testClient()
	flags := &CLIFlags{}

	a := New(cfg, tui, flags, client)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if client.listCalls != 1 {
		t.Errorf("listCalls = %d; want 1", client.listCalls)
	}
}

func TestRun_LanguagePreferenceReported(t *testing.T) {
	cfg := testConfig(t)
	tui := &fakeUI{}
	client := &fakeClient{
		list: listWith(
			yt.TranscriptHandle{Lang: "fr", Source: model.SubSourceManual, BaseURL: "u"},
			yt.TranscriptHandle{Lang: "en", Source: model.SubSourceAutomatic, BaseURL: "u"},
		),
		segs: []subtitles.Segment{{Start: 0, Text: "bonjour"}},
	}
	flags := &CLIFlags{Video: "dQw4w9WgXcQ", Languages: []string{"de", "fr"}}

	a := New(cfg, tui, flags, client)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	joined := strings.Join(tui.infos, "\n")
	if !strings.Contains(joined, "fr (manual subtitles)") {
		t.Errorf("la langue retenue devrait être annoncée; got:\n%s", joined)
	}
}
