package subtitles

import "testing"

func ptrInt64(v int64) *int64 { return &v }

func TestSegmentsFromJSON3_Basic(t *testing.T) {
	payload := []byte(`{
		"wireMagic": "pb3",
		"events": [
			{"tStartMs": 0, "dDurationMs": 2500, "segs": [{"utf8": "Hello world"}]},
			{"tStartMs": 2500, "dDurationMs": 1500, "segs": [{"utf8": "This is "}, {"utf8": "a test", "tOffsetMs": 400}]}
		]
	}`)

	segs, err := SegmentsFromJSON3(payload)
	if err != nil {
		t.Fatalf("SegmentsFromJSON3: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2: %#v", len(segs), segs)
	}
	if segs[0].Start != 0 || segs[0].Text != "Hello world" {
		t.Errorf("segment 0 = %+v; want Start=0 Text=%q", segs[0], "Hello world")
	}
	if segs[0].Duration != 2.5 {
		t.Errorf("segment 0 duration = %v; want 2.5", segs[0].Duration)
	}
	if segs[1].Start != 2.5 || segs[1].Text != "This is a test" {
		t.Errorf("segment 1 = %+v; want Start=2.5 Text=%q", segs[1], "This is a test")
	}
}

func TestSegmentsFromJSON3_SkipsWindowAndNewlineEvents(t *testing.T) {
	payload := []byte(`{
		"events": [
			{"tStartMs": 0, "dDurationMs": 100},
			{"tStartMs": 10, "dDurationMs": 10, "segs": [{"utf8": "\n"}]},
			{"tStartMs": 20, "dDurationMs": 1000, "segs": [{"utf8": "du texte"}]}
		]
	}`)

	segs, err := SegmentsFromJSON3(payload)
	if err != nil {
		t.Fatalf("SegmentsFromJSON3: %v", err)
	}
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1: %#v", len(segs), segs)
	}
	if segs[0].Text != "du texte" {
		t.Errorf("segment text = %q; want %q", segs[0].Text, "du texte")
	}
}

func TestSegmentsFromJSON3_Errors(t *testing.T) {
	if _, err := SegmentsFromJSON3(nil); err == nil {
		t.Error("expected error on empty input")
	}
	if _, err := SegmentsFromJSON3([]byte("not json")); err == nil {
		t.Error("expected error on invalid JSON")
	}
}

func TestSegmentsFromRaw_NewlinesBecomeSpaces(t *testing.T) {
	raw := rawJSON3{
		Events: []rawEvent{
			{
				TStartMs:    ptrInt64(1000),
				DDurationMs: ptrInt64(2000),
				Segs: []rawSeg{
					{Utf8: "first line\nsecond line"},
				},
			},
		},
	}
	segs := segmentsFromRaw(raw)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	want := "first line second line"
	if segs[0].Text != want {
		t.Errorf("text = %q; want %q", segs[0].Text, want)
	}
	if segs[0].Start != 1.0 {
		t.Errorf("start = %v; want 1.0", segs[0].Start)
	}
}
