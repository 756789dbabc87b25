package moodindex

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"

	"mood-backend/internal/models"
)

func testCatalog() *models.Catalog {
	return &models.Catalog{Entries: []models.MoodEntry{
		{Mood: "Happy", Movies: []models.Movie{
			{Title: "3 Idiots", Year: 2009, Language: "Hindi", Genre: []string{"Comedy", "Drama"}},
			{Title: "Jathi Ratnalu", Year: 2021, Language: "Telugu", Genre: []string{"Comedy"}},
		}},
		{Mood: " sad ", Movies: []models.Movie{
			{Title: "Kal Ho Naa Ho", Year: 2003, Language: "Hindi", Genre: []string{"Drama", "Romance"}},
		}},
		{Mood: "romantic", Movies: []models.Movie{
			{Title: "Geetha Govindam", Year: 2018, Language: "Telugu", Genre: []string{"Romance", "Comedy"}},
			{Title: "Kal Ho Naa Ho", Year: 2003, Language: "Hindi", Genre: []string{"Drama", "Romance"}},
		}},
		{Mood: "adventurous", Movies: []models.Movie{
			{Title: "RRR", Year: 2022, Language: "Telugu", Genre: []string{"Action", "Drama"}},
		}},
		{Mood: "angry", Movies: []models.Movie{}},
	}}
}

func TestNew_NormalizesAndKeepsOrder(t *testing.T) {
	ix := New(testCatalog())

	want := []string{"happy", "sad", "romantic", "adventurous", "angry"}
	if got := ix.Moods(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Moods() = %v, want %v", got, want)
	}
	if ix.MovieCount() != 6 {
		t.Errorf("MovieCount() = %d, want 6", ix.MovieCount())
	}
}

func TestNew_DuplicateAndBlankMoods(t *testing.T) {
	ix := New(&models.Catalog{Entries: []models.MoodEntry{
		{Mood: "happy", Movies: []models.Movie{{Title: "a"}}},
		{Mood: "   ", Movies: []models.Movie{{Title: "ignored"}}},
		{Mood: "sad", Movies: []models.Movie{{Title: "b"}}},
		{Mood: "HAPPY", Movies: []models.Movie{{Title: "c"}}},
	}})

	if got := ix.Moods(); !reflect.DeepEqual(got, []string{"happy", "sad"}) {
		t.Fatalf("Moods() = %v", got)
	}
	rec, err := ix.Recommend("happy")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(rec.Movies) != 2 || rec.Movies[1].Title != "c" {
		t.Errorf("duplicate mood should append movies, got %+v", rec.Movies)
	}
}

func TestNew_NilCatalog(t *testing.T) {
	ix := New(nil)
	if ix.Len() != 0 || len(ix.Moods()) != 0 {
		t.Fatal("nil catalog should produce an empty index")
	}
	if _, err := ix.RandomMovie(""); !errors.Is(err, ErrNoMovies) {
		t.Errorf("RandomMovie() on empty index error = %v, want ErrNoMovies", err)
	}
	var unknown *UnknownMoodError
	if _, err := ix.Recommend("happy"); !errors.As(err, &unknown) || len(unknown.Available) != 0 {
		t.Errorf("Recommend() on empty index error = %v", err)
	}
}

func TestRecommend_ExactReturnsStoredList(t *testing.T) {
	c := testCatalog()
	ix := New(c)

	for _, e := range c.Entries {
		rec, err := ix.Recommend(e.Mood)
		if err != nil {
			t.Fatalf("Recommend(%q) error = %v", e.Mood, err)
		}
		if rec.Match != MatchExact {
			t.Errorf("Recommend(%q) match = %s, want exact", e.Mood, rec.Match)
		}
		if !reflect.DeepEqual(rec.Movies, e.Movies) {
			t.Errorf("Recommend(%q) = %+v, want %+v", e.Mood, rec.Movies, e.Movies)
		}
	}
}

func TestRecommend_Fuzzy(t *testing.T) {
	ix := New(testCatalog())

	tests := []struct {
		input string
		want  string
	}{
		{"  HAPPY ", "happy"},
		{"hap", "happy"},
		{"very sad today", "sad"},
		{"roman", "romantic"},
		{"adventure", "adventurous"},
		// "a" is contained in happy, sad, romantic...; catalog order decides.
		{"a", "happy"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rec, err := ix.Recommend(tt.input)
			if err != nil {
				t.Fatalf("Recommend(%q) error = %v", tt.input, err)
			}
			if rec.Mood != tt.want {
				t.Errorf("Recommend(%q) mood = %q, want %q", tt.input, rec.Mood, tt.want)
			}
			if rec.Requested != Normalize(tt.input) {
				t.Errorf("Requested = %q", rec.Requested)
			}
		})
	}

	rec, _ := ix.Recommend("hap")
	if rec.Match != MatchFuzzy {
		t.Errorf("match = %s, want fuzzy", rec.Match)
	}
}

func TestRecommend_Unknown(t *testing.T) {
	ix := New(testCatalog())

	_, err := ix.Recommend("bored")
	if !errors.Is(err, ErrUnknownMood) {
		t.Fatalf("error = %v, want ErrUnknownMood", err)
	}
	var unknown *UnknownMoodError
	if !errors.As(err, &unknown) {
		t.Fatalf("error should be *UnknownMoodError")
	}
	if unknown.Mood != "bored" || !reflect.DeepEqual(unknown.Available, ix.Moods()) {
		t.Errorf("unexpected error payload %+v", unknown)
	}
	if !strings.Contains(err.Error(), "happy") {
		t.Errorf("message should list moods: %q", err.Error())
	}
}

func TestRecommend_EmptyMood(t *testing.T) {
	ix := New(testCatalog())
	for _, in := range []string{"", "   "} {
		if _, err := ix.Recommend(in); !errors.Is(err, ErrEmptyMood) {
			t.Errorf("Recommend(%q) error = %v, want ErrEmptyMood", in, err)
		}
	}
}

func TestRecommend_ResultIsACopy(t *testing.T) {
	ix := New(testCatalog())

	rec, _ := ix.Recommend("happy")
	rec.Movies[0] = models.Movie{Title: "changed"}

	again, _ := ix.Recommend("happy")
	if again.Movies[0].Title != "3 Idiots" {
		t.Fatal("mutating a result must not change the index")
	}
}

func TestRandomMovie_AlwaysFromIndex(t *testing.T) {
	ix := New(testCatalog(), WithRand(rand.New(rand.NewPCG(1, 2))))

	type placed struct {
		key  models.MovieKey
		mood string
	}
	known := make(map[placed]string)
	for _, mood := range ix.Moods() {
		rec, _ := ix.Recommend(mood)
		for _, m := range rec.Movies {
			known[placed{m.Key(), mood}] = mood
		}
	}

	for i := 0; i < 200; i++ {
		pick, err := ix.RandomMovie("")
		if err != nil {
			t.Fatalf("RandomMovie() error = %v", err)
		}
		if _, ok := known[placed{pick.Movie.Key(), pick.Mood}]; !ok {
			t.Fatalf("RandomMovie() returned %+v from %q, not in index", pick.Movie, pick.Mood)
		}
		if pick.Mood == "angry" {
			t.Fatal("empty mood must never be drawn")
		}
		if pick.Match != MatchRandom {
			t.Fatalf("match = %s, want random", pick.Match)
		}
	}
}

func TestRandomMovie_CoversAllMoods(t *testing.T) {
	ix := New(testCatalog(), WithRand(rand.New(rand.NewPCG(7, 7))))

	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		pick, err := ix.RandomMovie("")
		if err != nil {
			t.Fatalf("RandomMovie() error = %v", err)
		}
		seen[pick.Mood] = true
	}
	for _, mood := range []string{"happy", "sad", "romantic", "adventurous"} {
		if !seen[mood] {
			t.Errorf("mood %q never picked in 500 draws", mood)
		}
	}
}

func TestRandomMovie_WithMood(t *testing.T) {
	ix := New(testCatalog(), WithRand(rand.New(rand.NewPCG(3, 4))))

	for i := 0; i < 50; i++ {
		pick, err := ix.RandomMovie("Roman")
		if err != nil {
			t.Fatalf("RandomMovie() error = %v", err)
		}
		if pick.Mood != "romantic" || pick.Match != MatchFuzzy {
			t.Fatalf("pick = %+v", pick)
		}
		if pick.Movie.Title != "Geetha Govindam" && pick.Movie.Title != "Kal Ho Naa Ho" {
			t.Fatalf("unexpected movie %q", pick.Movie.Title)
		}
	}

	if _, err := ix.RandomMovie("angry"); !errors.Is(err, ErrNoMovies) {
		t.Errorf("RandomMovie(angry) error = %v, want ErrNoMovies", err)
	}
	if _, err := ix.RandomMovie("bored"); !errors.Is(err, ErrUnknownMood) {
		t.Errorf("RandomMovie(bored) error = %v, want ErrUnknownMood", err)
	}
}

func TestSearch_AllAndOnly(t *testing.T) {
	c := testCatalog()
	ix := New(c)

	for _, query := range []string{"kal", "COMEDY", "telugu", "drama, romance", "r", "zzz", "hindi"} {
		t.Run(query, func(t *testing.T) {
			got, err := ix.Search(query)
			if err != nil {
				t.Fatalf("Search(%q) error = %v", query, err)
			}

			q := strings.ToLower(query)
			want := make(map[models.MovieKey]bool)
			for _, e := range c.Entries {
				for _, m := range e.Movies {
					if strings.Contains(strings.ToLower(m.Title), q) ||
						strings.Contains(strings.ToLower(strings.Join(m.Genre, ", ")), q) ||
						strings.Contains(strings.ToLower(m.Language), q) {
						want[m.Key()] = true
					}
				}
			}

			if len(got) != len(want) {
				t.Fatalf("Search(%q) returned %d movies, want %d", query, len(got), len(want))
			}
			for _, m := range got {
				if !want[m.Key()] {
					t.Errorf("Search(%q) returned unexpected %q", query, m.Title)
				}
			}
		})
	}
}

func TestSearch_OrderAndDedup(t *testing.T) {
	ix := New(testCatalog())

	got, _ := ix.Search("romance")
	titles := make([]string, 0, len(got))
	for _, m := range got {
		titles = append(titles, m.Title)
	}
	want := []string{"Kal Ho Naa Ho", "Geetha Govindam"}
	if !reflect.DeepEqual(titles, want) {
		t.Errorf("Search(romance) = %v, want %v", titles, want)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	ix := New(testCatalog())
	if _, err := ix.Search("  "); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("Search(blank) error = %v, want ErrEmptyQuery", err)
	}
}

func TestAll_Distinct(t *testing.T) {
	ix := New(testCatalog())

	all := ix.All()
	if len(all) != 5 {
		t.Fatalf("All() returned %d movies, want 5", len(all))
	}
	if all[0].Title != "3 Idiots" || all[4].Title != "RRR" {
		t.Errorf("All() order = %+v", all)
	}
}

func TestSearch_KeepsMoviesWithSeparatorInNames(t *testing.T) {
	ix := New(&models.Catalog{Entries: []models.MoodEntry{
		{Mood: "happy", Movies: []models.Movie{
			{Title: "Up|Hindi", Year: 2009, Language: "x", Genre: []string{"Comedy"}},
			{Title: "Up", Year: 2009, Language: "Hindi|x", Genre: []string{"Comedy"}},
		}},
	}})

	got, err := ix.Search("comedy")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Search(comedy) returned %d movies, want 2", len(got))
	}
	if all := ix.All(); len(all) != 2 {
		t.Errorf("All() returned %d movies, want 2", len(all))
	}
}
