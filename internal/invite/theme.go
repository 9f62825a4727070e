package invite

// Theme styles the blessing board for one template. The values are utility
// class strings consumed verbatim by the rendering client; modelling them
// as data keeps one board component serving all four layouts.
type Theme struct {
	Board    string `json:"board"`
	Note     string `json:"note"`
	Button   string `json:"button"`
	Font     string `json:"font"`
	PinColor string `json:"pin_color"`
	Overlay  string `json:"overlay,omitempty"`
}

var themes = map[TemplateID]Theme{
	TemplateSimple: {
		Board:    "bg-gray-100 border-4 border-gray-200 shadow-inner",
		Note:     "bg-white shadow-md border border-gray-100 text-gray-800",
		Button:   "border-gray-300 text-gray-600 hover:bg-gray-50",
		Font:     "font-sans",
		PinColor: "bg-gray-400",
	},
	TemplateElegant: {
		Board:    "bg-[#1B3D2F] border-8 border-[#D4AF37] shadow-2xl",
		Note:     "bg-[#FFF8E6] text-[#1B3D2F] shadow-lg border border-[#D4AF37]/20",
		Button:   "border-[#D4AF37]/50 text-[#D4AF37] hover:bg-[#D4AF37]/10",
		Font:     "font-serif",
		PinColor: "bg-[#D4AF37]",
	},
	TemplateMotion: {
		Board:    "bg-black/80 backdrop-blur-md border border-white/10 shadow-[0_0_50px_rgba(168,85,247,0.2)]",
		Note:     "bg-white/10 backdrop-blur-md border border-white/20 text-white shadow-xl",
		Button:   "border-purple-500/50 text-purple-400 hover:bg-purple-500/10",
		Font:     "font-sans",
		PinColor: "bg-gradient-to-r from-purple-500 to-pink-500",
	},
	TemplateRomantic: {
		Board:    "bg-[#fdfbf7] border-8 border-[#eec0c6] shadow-inner",
		Note:     "bg-[#fff0f5] text-[#865c6c] shadow-md border border-pink-100",
		Button:   "border-[#eec0c6] text-[#eec0c6] hover:bg-[#fff0f5]",
		Font:     "font-serif",
		PinColor: "bg-[#eec0c6]",
		Overlay:  "https://www.transparenttextures.com/patterns/cork-board.png",
	},
}

// ThemeFor returns the blessing board theme for a template id, falling back
// to the simple theme for anything unrecognized.
func ThemeFor(id TemplateID) Theme {
	if t, ok := themes[id]; ok {
		return t
	}
	return themes[TemplateSimple]
}
