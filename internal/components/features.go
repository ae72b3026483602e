package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pogpoggu3-cpu/ayursutra2/internal/content"
)

func Features() g.Node {
	cards := make([]g.Node, 0, len(content.Features))
	for i, f := range content.Features {
		cards = append(cards, Div(
			Class("group animate-on-scroll hover:scale-105 transition-all duration-500"),
			Revealable(content.FeatureRevealID(i)),
			Style(fmt.Sprintf("animation-delay: %dms", i*200)),
			Div(
				Class("h-full p-6 bg-white rounded-xl shadow-md hover:shadow-2xl transition-all duration-500 border border-green-100 relative overflow-hidden"),
				Div(Class("absolute inset-0 bg-gradient-to-br "+f.Gradient+" opacity-0 group-hover:opacity-5 transition-opacity duration-500")),
				Div(
					Class("flex items-center justify-center w-16 h-16 bg-gradient-to-br "+f.Gradient+" text-white rounded-lg mb-6 group-hover:scale-110 group-hover:rotate-3 transition-all duration-500 relative z-10"),
					Icon(f.Icon+" w-8 h-8", ""),
				),
				H3(Class("text-xl font-semibold text-charcoal mb-4 group-hover:text-green-800 transition-colors duration-300"), g.Text(f.Title)),
				P(Class("text-gray-600 leading-relaxed group-hover:text-gray-700 transition-colors duration-300"), g.Text(f.Description)),
				Div(Class("absolute bottom-0 left-0 w-0 h-1 bg-gradient-to-r from-green-700 to-teal-600 group-hover:w-full transition-all duration-500")),
			),
		))
	}

	return Section(
		ID("features"),
		Class("py-20 bg-white relative overflow-hidden"),
		Div(Class("absolute inset-0 bg-gradient-to-br from-green-50/50 to-amber-50/50")),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 relative z-10"),
			SectionHeading(content.RevealFeaturesHeading, "Your Complete Panchakarma Operating System"),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Group(cards),
			),
		),
	)
}

// HowItWorks renders the numbered onboarding steps.
func HowItWorks() g.Node {
	items := make([]g.Node, 0, len(content.Steps))
	for i, s := range content.Steps {
		items = append(items, Div(
			Class("text-center group animate-on-scroll"),
			Revealable(content.StepRevealID(i)),
			Style(fmt.Sprintf("animation-delay: %dms", s.Delay.Milliseconds())),
			Div(
				Class("relative mb-8"),
				Div(
					Class("flex items-center justify-center w-20 h-20 bg-white rounded-full shadow-lg mx-auto group-hover:scale-110 group-hover:shadow-2xl transition-all duration-500 relative z-10"),
					Div(
						Class("text-sage-600 group-hover:scale-110 transition-transform duration-300"),
						Icon(s.Icon+" w-12 h-12", ""),
					),
				),
				Div(
					Class("absolute -top-2 -right-2 w-8 h-8 bg-gradient-to-br from-teal-600 to-green-700 text-white rounded-full flex items-center justify-center text-sm font-bold shadow-lg group-hover:scale-110 transition-transform duration-300"),
					g.Text(strconv.Itoa(i+1)),
				),
				// Connector to the next step on wide screens.
				g.If(i < len(content.Steps)-1,
					Div(Class("hidden md:block absolute top-10 left-full w-full h-0.5 bg-gradient-to-r from-green-300 to-teal-300 transform -translate-y-1/2")),
				),
			),
			H3(Class("text-xl font-semibold text-charcoal mb-4 group-hover:text-green-800 transition-colors duration-300"), g.Text(s.Title)),
			P(Class("text-gray-600 leading-relaxed group-hover:text-gray-700 transition-colors duration-300"), g.Text(s.Description)),
		))
	}

	return Section(
		ID("how-it-works"),
		Class("py-20 bg-mint-50 relative"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			SectionHeading(content.RevealStepsHeading, "How It Works"),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Group(items),
			),
		),
	)
}
