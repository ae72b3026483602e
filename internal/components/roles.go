package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pogpoggu3-cpu/ayursutra2/internal/content"
)

func ForDoctors() g.Node {
	return Section(
		ID("for-doctors"),
		Class("py-20 bg-white"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("grid grid-cols-1 lg:grid-cols-2 gap-12 items-center"),
				Div(
					Class("animate-on-scroll"),
					Revealable(content.RevealDoctorsCopy),
					H2(Class("text-3xl lg:text-4xl font-serif font-bold text-charcoal mb-6"), g.Text("Empowering Ayurvedic Practitioners")),
					rolePoints(content.DoctorPoints),
					ArrowLink(content.RegisterPath,
						"group inline-flex items-center px-6 py-3 bg-sage-600 text-white font-semibold rounded-lg hover:shadow-lg transition-all duration-300 hover:scale-105",
						"Join as Doctor"),
				),
				Div(
					Class("relative animate-on-scroll"),
					Revealable(content.RevealDoctorsImage),
					Div(
						Class("bg-gradient-to-br from-green-50 to-amber-50 rounded-2xl p-8 shadow-lg hover:shadow-2xl transition-all duration-500 hover:scale-105"),
						Img(
							Src(content.DoctorImage),
							Alt("Ayurvedic Doctor"),
							Class("w-full h-64 object-cover rounded-lg hover:scale-105 transition-transform duration-500"),
						),
					),
					Div(
						Class("absolute -top-4 -right-4 w-8 h-8 bg-sage-600 rounded-full flex items-center justify-center animate-bounce"),
						Icon("lucide--check-circle w-4 h-4 text-white", ""),
					),
				),
			),
		),
	)
}

func ForPatients() g.Node {
	return Section(
		ID("for-patients"),
		Class("py-20 bg-mint-50"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("grid grid-cols-1 lg:grid-cols-2 gap-12 items-center"),
				Div(
					Class("order-2 lg:order-1 animate-on-scroll"),
					Revealable(content.RevealPatientsImage),
					Div(
						Class("bg-gradient-to-br from-amber-50 to-green-50 rounded-2xl p-8 shadow-lg hover:shadow-2xl transition-all duration-500 hover:scale-105 relative"),
						Img(
							Src(content.PatientImage),
							Alt("Patient receiving treatment"),
							Class("w-full h-64 object-cover rounded-lg hover:scale-105 transition-transform duration-500"),
						),
						Div(
							Class("absolute -bottom-4 -left-4 w-8 h-8 bg-teal-600 rounded-full flex items-center justify-center animate-pulse"),
							Icon("lucide--heart w-4 h-4 text-white", ""),
						),
					),
				),
				Div(
					Class("order-1 lg:order-2 animate-on-scroll"),
					Revealable(content.RevealPatientsCopy),
					H2(Class("text-3xl lg:text-4xl font-serif font-bold text-charcoal mb-6"), g.Text("A Healing Journey Made Simple")),
					rolePoints(content.PatientPoints),
					ArrowLink(content.RegisterPath,
						"group inline-flex items-center px-6 py-3 bg-teal-600 text-white font-semibold rounded-lg hover:bg-teal-700 hover:shadow-lg transition-all duration-300 hover:scale-105",
						"Start Your Journey"),
				),
			),
		),
	)
}
