package invite

// TemplateID names one of the fixed visual layouts a client can pick.
type TemplateID string

const (
	TemplateSimple   TemplateID = "simple"
	TemplateElegant  TemplateID = "elegant"
	TemplateMotion   TemplateID = "motion"
	TemplateRomantic TemplateID = "romantic"
)

// TemplateIDs lists every selectable template, in the order the admin form
// shows them.
var TemplateIDs = []TemplateID{TemplateElegant, TemplateSimple, TemplateMotion, TemplateRomantic}

// ValidTemplate reports whether s names a known template.
func ValidTemplate(s string) bool {
	switch TemplateID(s) {
	case TemplateSimple, TemplateElegant, TemplateMotion, TemplateRomantic:
		return true
	}
	return false
}

// NormalizeTemplate resolves a stored identifier to a renderable template.
// Unset or unrecognized values fall back to the simple layout.
func NormalizeTemplate(s string) TemplateID {
	if ValidTemplate(s) {
		return TemplateID(s)
	}
	return TemplateSimple
}

// Section names a block of an invitation page.
type Section string

const (
	SectionHero      Section = "hero"
	SectionCountdown Section = "countdown"
	SectionEvents    Section = "events"
	SectionSlider    Section = "slider"
	SectionGallery   Section = "gallery"
	SectionBlessings Section = "blessings"
	SectionFooter    Section = "footer"
)

// RenderConfig is the per-template layout: which sections appear, how many
// photos feed the hero, the carousel cadences and the footer treatment.
type RenderConfig struct {
	Sections         []Section `json:"sections"`
	HeroLimit        int       `json:"hero_limit"`
	HeroIntervalMS   int       `json:"hero_interval_ms"`
	SliderIntervalMS int       `json:"slider_interval_ms"`
	GalleryPreview   int       `json:"gallery_preview"`
	AutoPlay         bool      `json:"auto_play"`
	FooterTheme      string    `json:"footer_theme"`
}

var renderConfigs = map[TemplateID]RenderConfig{
	TemplateSimple: {
		Sections:         []Section{SectionHero, SectionCountdown, SectionEvents, SectionSlider, SectionBlessings, SectionFooter},
		HeroLimit:        1,
		SliderIntervalMS: 4000,
		GalleryPreview:   6,
		AutoPlay:         true,
		FooterTheme:      "light",
	},
	TemplateElegant: {
		Sections:         []Section{SectionHero, SectionCountdown, SectionEvents, SectionSlider, SectionBlessings, SectionFooter},
		HeroLimit:        5,
		HeroIntervalMS:   5000,
		SliderIntervalMS: 5000,
		GalleryPreview:   6,
		AutoPlay:         true,
		FooterTheme:      "dark",
	},
	TemplateMotion: {
		Sections:         []Section{SectionHero, SectionCountdown, SectionEvents, SectionSlider, SectionGallery, SectionFooter},
		HeroLimit:        5,
		HeroIntervalMS:   5000,
		SliderIntervalMS: 4000,
		GalleryPreview:   6,
		AutoPlay:         true,
		FooterTheme:      "gradient",
	},
	// The romantic layout skips the countdown on purpose.
	TemplateRomantic: {
		Sections:         []Section{SectionHero, SectionEvents, SectionSlider, SectionBlessings, SectionFooter},
		HeroLimit:        1,
		SliderIntervalMS: 4000,
		GalleryPreview:   6,
		AutoPlay:         true,
		FooterTheme:      "light",
	},
}

// ConfigFor returns the layout for a template id, falling back to the
// simple layout for anything unrecognized.
func ConfigFor(id TemplateID) RenderConfig {
	if cfg, ok := renderConfigs[id]; ok {
		return cfg
	}
	return renderConfigs[TemplateSimple]
}
