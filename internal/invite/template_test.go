package invite

import "testing"

func TestNormalizeTemplate(t *testing.T) {
	cases := map[string]TemplateID{
		"motion":   TemplateMotion,
		"elegant":  TemplateElegant,
		"romantic": TemplateRomantic,
		"simple":   TemplateSimple,
		"":         TemplateSimple,
		"sparkly":  TemplateSimple,
	}

	for in, want := range cases {
		if got := NormalizeTemplate(in); got != want {
			t.Errorf("NormalizeTemplate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConfigForEveryTemplate(t *testing.T) {
	for _, id := range TemplateIDs {
		cfg := ConfigFor(id)
		if len(cfg.Sections) == 0 {
			t.Errorf("%s: no sections", id)
		}
		if cfg.SliderIntervalMS <= 0 {
			t.Errorf("%s: slider interval %d", id, cfg.SliderIntervalMS)
		}
		if cfg.FooterTheme == "" {
			t.Errorf("%s: missing footer theme", id)
		}
	}
}

func TestRomanticSkipsCountdown(t *testing.T) {
	for _, s := range ConfigFor(TemplateRomantic).Sections {
		if s == SectionCountdown {
			t.Fatal("romantic layout must not include a countdown section")
		}
	}
}

func TestThemeForFallsBack(t *testing.T) {
	for _, id := range TemplateIDs {
		if ThemeFor(id).Board == "" {
			t.Errorf("%s: empty board style", id)
		}
	}
	if ThemeFor("nope") != ThemeFor(TemplateSimple) {
		t.Error("unknown template should use the simple theme")
	}
}
