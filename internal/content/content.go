// Package content holds the literal data rendered on the landing page.
package content

import (
	"strconv"
	"time"
)

// Link targets. Every call-to-action on the page resolves to one of these.
const (
	DemoPath     = "/demo"
	RegisterPath = "/register"
)

type Feature struct {
	Icon        string
	Title       string
	Description string
	Gradient    string
}

type Step struct {
	Icon        string
	Title       string
	Description string
	Delay       time.Duration
}

type Testimonial struct {
	Quote  string
	Author string
	Clinic string
	Image  string
	Rating int
}

// Stat is a hero counter. Target is the value the counter animation ends on.
type Stat struct {
	Key    string
	Label  string
	Target int
	Suffix string
	Icon   string
}

type Benefit struct {
	Icon string
	Text string
}

type RolePoint struct {
	Icon        string
	Title       string
	Description string
}

var Features = []Feature{
	{"lucide--brain", "1. Arogya → AI Pathway Builder", "AI interprets handwritten notes and auto-builds a personalized, rule-compliant therapy plan.", "from-blue-500 to-purple-600"},
	{"lucide--clock", "2. Samay → Smart Scheduling", "Optimizes sessions based on therapist availability, room occupancy, and Ayurveda's body clock.", "from-green-500 to-teal-600"},
	{"lucide--users", "3. Setu → Multi-Role Ecosystem", "Seamless, connected dashboards for doctors, therapists, and patients.", "from-orange-500 to-red-600"},
	{"lucide--heart", "4. Pragati → Tracking & Feedback", "Visualize patient progress with real-time logs, feedback, and optional smartwatch integration.", "from-pink-500 to-rose-600"},
	{"lucide--smartphone", "5. Suchna → Guided Engagement", "Automated pre/post-therapy guidance and a multilingual doubt-resolution assistant.", "from-indigo-500 to-blue-600"},
}

var Steps = []Step{
	{"lucide--camera", "Digitize & Understand", "Scan handwritten prescriptions and let AI interpret treatment plans", 0},
	{"lucide--calendar", "Schedule & Optimize", "Auto-schedule therapy sessions based on Ayurvedic principles and availability", 200 * time.Millisecond},
	{"lucide--trending-up", "Track & Heal", "Monitor patient progress and adjust treatments in real-time", 400 * time.Millisecond},
}

var Testimonials = []Testimonial{
	{
		Quote:  "AyurSutra has revolutionized our Panchakarma center. The AI prescription interpretation is incredibly accurate.",
		Author: "Dr. Rajesh Sharma",
		Clinic: "Vedic Wellness Center, Mumbai",
		Image:  "https://images.pexels.com/photos/5327580/pexels-photo-5327580.jpeg?auto=compress&cs=tinysrgb&w=150",
		Rating: 5,
	},
	{
		Quote:  "The smart scheduling feature has improved our efficiency by 60%. Patients love the seamless experience.",
		Author: "Dr. Priya Nair",
		Clinic: "Ayur Healing Institute, Kerala",
		Image:  "https://images.pexels.com/photos/5327654/pexels-photo-5327654.jpeg?auto=compress&cs=tinysrgb&w=150",
		Rating: 5,
	},
	{
		Quote:  "As a patient, I appreciate the clear guidance and progress tracking. It makes me feel more involved in my healing.",
		Author: "Amit Patel",
		Clinic: "Patient at Holistic Ayurveda, Pune",
		Image:  "https://images.pexels.com/photos/6749753/pexels-photo-6749753.jpeg?auto=compress&cs=tinysrgb&w=150",
		Rating: 5,
	},
}

var Stats = []Stat{
	{"patients", "Happy Patients", 2500, "+", "lucide--users"},
	{"accuracy", "AI Accuracy", 99, "%", "lucide--brain"},
	{"centers", "Partner Centers", 150, "+", "lucide--globe"},
	{"satisfaction", "Satisfaction Rate", 98, "%", "lucide--award"},
}

var Benefits = []Benefit{
	{"lucide--zap", "60% faster patient processing"},
	{"lucide--shield", "99.2% prescription accuracy"},
	{"lucide--clock", "50% reduction in scheduling conflicts"},
	{"lucide--trending-up", "40% improvement in patient outcomes"},
}

var DoctorPoints = []RolePoint{
	{"lucide--star", "AI-Powered Prescription Analysis", "Convert handwritten notes into structured treatment plans instantly"},
	{"lucide--star", "Intelligent Scheduling", "Optimize therapy sessions based on Ayurvedic timing principles"},
	{"lucide--star", "Progress Monitoring", "Track patient outcomes with comprehensive analytics"},
}

var PatientPoints = []RolePoint{
	{"lucide--heart", "Personalized Care Plans", "Receive treatments tailored to your unique constitution"},
	{"lucide--heart", "Real-time Progress Tracking", "Monitor your healing journey with detailed insights"},
	{"lucide--heart", "24/7 Guidance", "Get multilingual support and therapy instructions anytime"},
}

// Images used outside the testimonial carousel.
const (
	DoctorImage  = "https://images.pexels.com/photos/5327580/pexels-photo-5327580.jpeg?auto=compress&cs=tinysrgb&w=600"
	PatientImage = "https://images.pexels.com/photos/6749753/pexels-photo-6749753.jpeg?auto=compress&cs=tinysrgb&w=600"
)

// StatTargets returns the counter targets in Stats order.
func StatTargets() []int {
	targets := make([]int, len(Stats))
	for i, s := range Stats {
		targets[i] = s.Target
	}
	return targets
}

// Scroll-reveal element ids. They double as keys of the "revealed" signal,
// so they must stay valid JavaScript identifiers.
const (
	RevealFeaturesHeading     = "featuresHeading"
	RevealStepsHeading        = "stepsHeading"
	RevealDoctorsCopy         = "doctorsCopy"
	RevealDoctorsImage        = "doctorsImage"
	RevealPatientsImage       = "patientsImage"
	RevealPatientsCopy        = "patientsCopy"
	RevealTestimonialsHeading = "testimonialsHeading"
	RevealClosingCTA          = "closingCta"
)

// FeatureRevealID is the reveal id of the i-th feature card.
func FeatureRevealID(i int) string {
	return "feature" + strconv.Itoa(i)
}

// StepRevealID is the reveal id of the i-th step.
func StepRevealID(i int) string {
	return "step" + strconv.Itoa(i)
}

// RevealTargets lists every element that takes part in scroll reveal.
func RevealTargets() []string {
	targets := []string{RevealFeaturesHeading}
	for i := range Features {
		targets = append(targets, FeatureRevealID(i))
	}
	targets = append(targets, RevealStepsHeading)
	for i := range Steps {
		targets = append(targets, StepRevealID(i))
	}
	return append(targets,
		RevealDoctorsCopy,
		RevealDoctorsImage,
		RevealPatientsImage,
		RevealPatientsCopy,
		RevealTestimonialsHeading,
		RevealClosingCTA,
	)
}
