package helpers

import (
	"strings"
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"John & Jane":    "john-&-jane",
		"  Amy   Burns ": "amy-burns",
		"SOLO":           "solo",
		"":               "",
	}

	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSlugifyIsDeterministic(t *testing.T) {
	// Identical couple names collide by design; creation handles suffixing.
	if Slugify("John & Jane") != Slugify("John & Jane") {
		t.Fatal("slugify must be deterministic")
	}
}

func TestRandomFileNameKeepsExtension(t *testing.T) {
	a := RandomFileName("beach sunset.JPG")
	b := RandomFileName("beach sunset.JPG")

	if !strings.HasSuffix(a, ".JPG") {
		t.Fatalf("extension lost: %q", a)
	}
	if a == b {
		t.Fatal("two generated names collided")
	}
	if strings.ContainsAny(a, " /") {
		t.Fatalf("name is not storage safe: %q", a)
	}
}

func TestRandomSlugSuffix(t *testing.T) {
	if len(RandomSlugSuffix()) != 4 {
		t.Fatal("suffix should be four characters")
	}
}

func TestFormatWeddingDate(t *testing.T) {
	got := FormatWeddingDate(time.Date(2026, 11, 14, 17, 0, 0, 0, time.UTC))
	if got != "November 14, 2026" {
		t.Fatalf("got %q", got)
	}
}
