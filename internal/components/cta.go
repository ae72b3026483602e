package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pogpoggu3-cpu/ayursutra2/internal/content"
)

func CTA() g.Node {
	assurances := []string{
		"Free consultation",
		"No commitment",
	}

	return Section(
		ID("get-started"),
		Class("py-20 bg-gradient-to-br from-green-700 via-teal-600 to-green-800 text-white relative overflow-hidden"),

		Div(
			Class("absolute inset-0"),
			Div(Class("absolute top-0 left-0 w-full h-full bg-gradient-to-br from-green-700/90 to-teal-600/90")),
			Div(Class("absolute -top-40 -right-40 w-80 h-80 bg-white/10 rounded-full animate-pulse")),
			Div(Class("absolute -bottom-40 -left-40 w-80 h-80 bg-white/10 rounded-full animate-pulse animation-delay-2000")),
		),

		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 text-center relative z-10"),
			Div(
				Class("animate-on-scroll"),
				Revealable(content.RevealClosingCTA),
				H2(Class("text-3xl lg:text-4xl font-serif font-bold mb-6"), g.Text("Ready to bring intelligent healing to your center?")),
				P(
					Class("text-xl mb-8 opacity-90 max-w-3xl mx-auto"),
					g.Text("Join the future of Ayurvedic practice with AI-powered Panchakarma management. Transform your center today and provide exceptional care to your patients."),
				),

				Div(
					Class("flex flex-col sm:flex-row justify-center items-center space-y-4 sm:space-y-0 sm:space-x-6"),
					A(
						Href(content.DemoPath),
						Class("group relative inline-flex items-center px-8 py-4 bg-white text-teal-600 font-semibold rounded-lg shadow-lg hover:shadow-2xl hover:scale-105 transition-all duration-500 overflow-hidden"),
						Span(Class("relative z-10"), g.Text("Schedule Your Personalized Demo Today")),
						Icon("lucide--arrow-right relative z-10 ml-2 w-5 h-5 group-hover:translate-x-2 transition-transform duration-300", ""),
					),
					Div(
						Class("flex items-center space-x-4 text-white/80"),
						g.Group(g.Map(assurances, func(a string) g.Node {
							return Div(
								Class("flex items-center space-x-1"),
								Icon("lucide--check-circle w-5 h-5", ""),
								Span(g.Text(a)),
							)
						})),
					),
				),
			),
		),
	)
}
