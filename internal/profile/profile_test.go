package profile

import (
	"path/filepath"
	"testing"
)

func TestApplyCorrectionFixesKnownMisspelling(t *testing.T) {
	got := ApplyCorrection("я люлблю боевики")
	if got != "я люблю боевики" {
		t.Fatalf("unexpected correction result: %q", got)
	}
}

func TestApplyCorrectionIsCaseInsensitive(t *testing.T) {
	got := ApplyCorrection("Я ЛюлБлю фэнтези")
	if got != "Я люблю фэнтези" {
		t.Fatalf("unexpected correction result: %q", got)
	}
}

func TestApplyCorrectionLeavesOtherTokensAlone(t *testing.T) {
	in := "я очень люблю кино про космос"
	if got := ApplyCorrection(in); got != in {
		t.Fatalf("text without misspellings changed: %q", got)
	}
}

func TestApplyCorrectionRespectsWordBoundaries(t *testing.T) {
	// The misspelling inside a longer word must stay untouched.
	in := "слово перелюлблюние"
	if got := ApplyCorrection(in); got != in {
		t.Fatalf("substring inside a word was replaced: %q", got)
	}
}

func TestAddIsAppendOnlyAndCaseInsensitive(t *testing.T) {
	p := NewProfile()

	if !p.Add(CategoryGenre, "боевики") {
		t.Fatalf("expected first add to change the profile")
	}
	if p.Add(CategoryGenre, "Боевики") {
		t.Fatalf("expected case-insensitive duplicate to be ignored")
	}
	if got := p.Preferences[CategoryGenre]; len(got) != 1 || got[0] != "боевики" {
		t.Fatalf("unexpected genres: %#v", got)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory_store.json")
	store := NewStore(path)

	p := NewProfile()
	p.Name = "Аня"
	p.Add(CategoryGenre, "боевики")
	p.Add(CategoryGenre, "фэнтези")
	p.Add(CategoryDirector, "Нолан")
	p.Add(CategoryMovie, "Интерстеллар")

	if err := store.Save(p); err != nil {
		t.Fatalf("expected save to succeed, got %v", err)
	}

	loaded, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if loaded.Name != p.Name {
		t.Fatalf("expected name %q, got %q", p.Name, loaded.Name)
	}
	for _, category := range []Category{CategoryGenre, CategoryActor, CategoryDirector, CategoryMovie} {
		want := p.Preferences[category]
		got := loaded.Preferences[category]
		if len(want) != len(got) {
			t.Fatalf("category %s: expected %#v, got %#v", category, want, got)
		}
		for i := range want {
			if want[i] != got[i] {
				t.Fatalf("category %s: expected %#v, got %#v", category, want, got)
			}
		}
	}
}

func TestStoreLoadMissingFileYieldsEmptyProfile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"))

	p, err := store.Load()
	if err != nil {
		t.Fatalf("expected no error for a missing file, got %v", err)
	}
	if p.Name != "" || len(p.Preferences) != 0 {
		t.Fatalf("expected an empty profile, got %#v", p)
	}
}

func TestUpdateFromTextExtractsName(t *testing.T) {
	p := NewProfile()

	if !UpdateFromText(p, "Привет! Меня зовут Аня") {
		t.Fatalf("expected the profile to change")
	}
	if p.Name != "Аня" {
		t.Fatalf("expected name Аня, got %q", p.Name)
	}
}

func TestUpdateFromTextExtractsGenres(t *testing.T) {
	p := NewProfile()

	UpdateFromText(p, "я люблю боевики, фэнтези тоже")
	genres := p.Preferences[CategoryGenre]
	if len(genres) != 2 || genres[0] != "боевики" || genres[1] != "фэнтези" {
		t.Fatalf("unexpected genres: %#v", genres)
	}
}

func TestUpdateFromTextCorrectsBeforeExtracting(t *testing.T) {
	p := NewProfile()

	UpdateFromText(p, "я люлблю боевики")
	genres := p.Preferences[CategoryGenre]
	if len(genres) != 1 || genres[0] != "боевики" {
		t.Fatalf("unexpected genres: %#v", genres)
	}
}

func TestUpdateFromTextDirectorPhraseDoesNotBecomeGenre(t *testing.T) {
	p := NewProfile()

	UpdateFromText(p, "я люблю фильмы нолана")
	directors := p.Preferences[CategoryDirector]
	if len(directors) != 1 || directors[0] != "Нолана" {
		t.Fatalf("unexpected directors: %#v", directors)
	}
	if genres := p.Preferences[CategoryGenre]; len(genres) != 0 {
		t.Fatalf("director phrase leaked into genres: %#v", genres)
	}
}

func TestUpdateFromTextExtractsMovies(t *testing.T) {
	p := NewProfile()

	UpdateFromText(p, "Мне нравится фильм Интерстеллар")
	movies := p.Preferences[CategoryMovie]
	if len(movies) != 1 || movies[0] != "Интерстеллар" {
		t.Fatalf("unexpected movies: %#v", movies)
	}
}

func TestUpdateFromTextKnowsJackieChan(t *testing.T) {
	p := NewProfile()

	// Both mentions collapse into one canonical actor entry.
	UpdateFromText(p, "обожаю фильмы с Джеки Чаном")
	UpdateFromText(p, "джеки чан лучший")
	actors := p.Preferences[CategoryActor]
	if len(actors) != 1 || actors[0] != "Джеки Чан" {
		t.Fatalf("unexpected actors: %#v", actors)
	}
}

func TestUpdateFromTextNoFactsNoChange(t *testing.T) {
	p := NewProfile()

	if UpdateFromText(p, "посоветуй что-нибудь на вечер") {
		t.Fatalf("expected no change for a fact-free message")
	}
}
