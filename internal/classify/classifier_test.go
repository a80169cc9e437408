package classify_test

import (
	"testing"

	"fansort/internal/classify"
)

func TestClassifyKnownGroupRelease(t *testing.T) {
	classifier := classify.New(nil, nil)
	got := classifier.Classify("[VCB-Studio] Attack on Titan [01][Ma10p_1080p]")
	want := classify.Classification{
		Scoped: classify.Scoped{
			Title:  "Attack on Titan",
			Season: "01",
			Group:  "VCB-Studio",
		},
		Episode: "01",
	}
	if got != want {
		t.Fatalf("Classify: got %+v want %+v", got, want)
	}
}

func TestClassifySeasonAndEpisodeMarkers(t *testing.T) {
	classifier := classify.New(nil, nil)
	got := classifier.Classify("[LoliHouse] Some Show S02 - 05 [WebRip][HEVC]")
	if got.Group != "LoliHouse" {
		t.Fatalf("group: got %q", got.Group)
	}
	if got.Season != "02" {
		t.Fatalf("season: got %q", got.Season)
	}
	if got.Episode != "05" {
		t.Fatalf("episode: got %q", got.Episode)
	}
	if got.Title != "Some Show" {
		t.Fatalf("title: got %q", got.Title)
	}
}

func TestClassifyBareFilenameDegradesToDefaults(t *testing.T) {
	classifier := classify.New(nil, nil)
	got := classifier.Classify("randomfile")
	want := classify.Classification{
		Scoped: classify.Scoped{
			Title:  "randomfile",
			Season: "01",
			Group:  "randomfile",
		},
		Episode: "01",
	}
	if got != want {
		t.Fatalf("Classify: got %+v want %+v", got, want)
	}
}

func TestClassifyEmptyNameUsesSentinels(t *testing.T) {
	classifier := classify.New(nil, nil)
	got := classifier.Classify("")
	if got.Title != classify.UnknownTitle {
		t.Fatalf("title: got %q", got.Title)
	}
	if got.Group != classify.UnknownGroup {
		t.Fatalf("group: got %q", got.Group)
	}
	if got.Season != "01" || got.Episode != "01" {
		t.Fatalf("expected default season/episode, got %+v", got)
	}
}

func TestClassifierInjectedConfiguration(t *testing.T) {
	keywords := classify.NewKeywordSet([]string{"480p"})
	registry := classify.NewRegistry([]string{"MySub"})
	classifier := classify.New(keywords, registry)
	got := classifier.Classify("[MySub] Tiny Show 480p - 03")
	if got.Group != "MySub" {
		t.Fatalf("group: got %q", got.Group)
	}
	if got.Title != "Tiny Show" {
		t.Fatalf("title: got %q", got.Title)
	}
	if got.Episode != "03" {
		t.Fatalf("episode: got %q", got.Episode)
	}
}
