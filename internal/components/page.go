package components

import (
	"encoding/json"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pogpoggu3-cpu/ayursutra2/internal/content"
)

// LiveStreamPath is opened by the page once it is loaded in the browser.
const LiveStreamPath = "/live/stream"

// PageState is the server-side snapshot the landing page is rendered from.
type PageState struct {
	// SessionID identifies the live session. Empty renders a static page
	// with no live stream.
	SessionID   string
	Testimonial int
	Stats       []int
	// RevealAll shows every scroll-reveal element up front.
	RevealAll bool
}

// Signals is the client-side state shared with the live endpoints. Live is
// set by the stream once the session is mounted.
type Signals struct {
	SessionID   string          `json:"sessionId"`
	Live        bool            `json:"live"`
	Testimonial int             `json:"testimonial"`
	Stats       map[string]int  `json:"stats"`
	Revealed    map[string]bool `json:"revealed"`
}

// StatsSignal maps counter values in content.Stats order to signal keys.
func StatsSignal(values []int) map[string]int {
	out := make(map[string]int, len(content.Stats))
	for i, s := range content.Stats {
		v := 0
		if i < len(values) {
			v = values[i]
		}
		out[s.Key] = v
	}
	return out
}

// RevealedSignal maps every reveal target to its visibility.
func RevealedSignal(revealed []string, all bool) map[string]bool {
	out := make(map[string]bool)
	for _, id := range content.RevealTargets() {
		out[id] = all
	}
	for _, id := range revealed {
		out[id] = true
	}
	return out
}

func (s PageState) signals() Signals {
	return Signals{
		SessionID:   s.SessionID,
		Testimonial: s.Testimonial,
		Stats:       StatsSignal(s.Stats),
		Revealed:    RevealedSignal(nil, s.RevealAll),
	}
}

// LandingPage renders the complete landing page.
func LandingPage(state PageState) g.Node {
	signals, _ := json.Marshal(state.signals())

	return Layout(
		PageConfig{
			Title:   "AyurSutra - Intelligent Panchakarma, Simplified",
			OGImage: content.DoctorImage,
		},
		Topbar(),
		Main(
			Class("min-h-screen bg-mint-50 overflow-hidden"),
			g.Attr("data-signals", string(signals)),
			g.If(state.SessionID != "",
				g.Attr("data-init", "@get('"+LiveStreamPath+"', {openWhenHidden: true})"),
			),
			Hero(state.Stats),
			Features(),
			HowItWorks(),
			ForDoctors(),
			ForPatients(),
			Testimonials(state.Testimonial, state.SessionID != ""),
			CTA(),
		),
		PageFooter(),
	)
}
