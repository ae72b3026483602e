package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pogpoggu3-cpu/ayursutra2/internal/content"
)

// Hero renders the top section. stats are the counter values to show before
// the live stream takes over.
func Hero(stats []int) g.Node {
	return Section(
		Class("relative py-20 lg:py-32 overflow-hidden"),
		ID("hero"),

		Div(
			Class("absolute inset-0 overflow-hidden"),
			Div(Class("absolute -top-40 -right-40 w-80 h-80 bg-green-100 rounded-full mix-blend-multiply filter blur-xl opacity-70 animate-blob")),
			Div(Class("absolute -bottom-40 -left-40 w-80 h-80 bg-teal-100 rounded-full mix-blend-multiply filter blur-xl opacity-70 animate-blob animation-delay-2000")),
			Div(Class("absolute top-40 left-40 w-80 h-80 bg-amber-50 rounded-full mix-blend-multiply filter blur-xl opacity-70 animate-blob animation-delay-4000")),
		),

		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 relative z-10"),
			Div(
				Class("text-center"),

				heroEmblem(),

				Div(
					Class("space-y-4 mb-8"),
					H1(Class("text-4xl lg:text-6xl font-serif font-bold text-charcoal animate-slide-up"), g.Text("AyurSutra")),
					H2(Class("text-2xl lg:text-3xl font-serif text-sage-600 animate-slide-up animation-delay-200"), g.Text("Intelligent Panchakarma, Simplified.")),
				),

				P(
					Class("text-lg lg:text-xl text-charcoal max-w-3xl mx-auto leading-relaxed mb-8 animate-slide-up animation-delay-400"),
					g.Text("Our AI-powered platform digitizes handwritten prescriptions, automates complex scheduling, and provides a seamless experience for doctors, therapists, and patients."),
				),

				Div(
					Class("grid grid-cols-2 lg:grid-cols-4 gap-4 mb-8 animate-slide-up animation-delay-600"),
					g.Group(g.Map(content.Benefits, func(b content.Benefit) g.Node {
						return Div(
							Class("flex items-center space-x-2 text-sm text-green-800 bg-white/50 backdrop-blur-sm rounded-lg px-3 py-2 hover:bg-white/70 transition-all duration-300"),
							Div(Class("text-sage-600"), Icon(b.Icon+" w-6 h-6", "")),
							Span(g.Text(b.Text)),
						)
					})),
				),

				Div(
					Class("flex flex-col sm:flex-row justify-center items-center space-y-4 sm:space-y-0 sm:space-x-4 mb-8 animate-slide-up animation-delay-800"),
					A(
						Href(content.DemoPath),
						Class("group relative inline-flex items-center px-8 py-4 bg-gradient-to-r from-teal-600 to-green-700 text-white font-semibold rounded-lg shadow-lg hover:shadow-2xl transition-all duration-500 hover:scale-105 overflow-hidden"),
						Span(Class("relative z-10"), g.Text("Request a Free Demo")),
						Icon("lucide--arrow-right relative z-10 ml-2 w-5 h-5 group-hover:translate-x-2 transition-transform duration-300", ""),
					),
					Button(
						Type("button"),
						Class("group flex items-center space-x-2 text-sage-600 hover:text-green-800 transition-colors duration-300"),
						Div(
							Class("w-12 h-12 bg-white rounded-full flex items-center justify-center shadow-md group-hover:shadow-lg transition-all duration-300 group-hover:scale-110"),
							Icon("lucide--play w-5 h-5 ml-1", ""),
						),
						Span(Class("font-medium"), g.Text("Watch Demo")),
					),
				),

				Stats(stats),
			),
		),
	)
}

func heroEmblem() g.Node {
	return Div(
		Class("flex justify-center mb-8"),
		Div(
			Class("relative animate-float"),
			Div(
				Class("p-6 bg-gradient-to-br from-green-50 to-amber-50 rounded-full shadow-lg hover:shadow-2xl transition-all duration-500 hover:scale-110"),
				Icon("lucide--leaf w-16 h-16 text-sage-600 animate-pulse", "AyurSutra"),
			),
			Div(
				Class("absolute -top-2 -right-2 w-6 h-6 bg-teal-600 rounded-full flex items-center justify-center animate-bounce"),
				Icon("lucide--brain w-3 h-3 text-white", ""),
			),
			Div(Class("absolute -top-4 -left-4 w-2 h-2 bg-green-400 rounded-full animate-ping")),
			Div(Class("absolute -bottom-4 -right-4 w-2 h-2 bg-teal-400 rounded-full animate-ping animation-delay-1000")),
		),
	)
}

// Stats renders the hero counters. values holds the displayed numbers in
// content.Stats order; nil renders zeros. Each number is bound to the
// "stats" signal so the live stream can animate it.
func Stats(values []int) g.Node {
	cells := make([]g.Node, 0, len(content.Stats))
	for i, stat := range content.Stats {
		value := 0
		if i < len(values) {
			value = values[i]
		}
		cells = append(cells, Div(
			Class("text-center group"),
			Div(
				Class("flex items-center justify-center mb-2 text-sage-600 group-hover:scale-110 transition-transform duration-300"),
				Icon(stat.Icon+" w-6 h-6", ""),
			),
			Div(
				Class("text-2xl lg:text-3xl font-bold text-charcoal"),
				Span(
					ID("stat-"+stat.Key),
					g.Attr("data-text", "$stats."+stat.Key),
					g.Text(strconv.Itoa(value)),
				),
				g.Text(stat.Suffix),
			),
			Div(Class("text-sm text-gray-600"), g.Text(stat.Label)),
		))
	}

	return Div(
		Class("grid grid-cols-2 lg:grid-cols-4 gap-6 animate-slide-up animation-delay-1000"),
		ID("stats"),
		g.Group(cells),
	)
}
