package models

type LandingFeature struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type LandingStep struct {
	Step        string `json:"step" yaml:"step"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type Testimonial struct {
	Name  string `json:"name" yaml:"name"`
	Role  string `json:"role" yaml:"role"`
	Quote string `json:"quote" yaml:"quote"`
}

type CallToAction struct {
	Headline string `json:"headline" yaml:"headline"`
	Body     string `json:"body" yaml:"body"`
	Button   string `json:"button" yaml:"button"`
}

// LandingContent is the copy rendered on the public marketing page.
type LandingContent struct {
	Hero         CallToAction     `json:"hero" yaml:"hero"`
	Features     []LandingFeature `json:"features" yaml:"features"`
	HowItWorks   []LandingStep    `json:"how_it_works" yaml:"how_it_works"`
	Testimonials []Testimonial    `json:"testimonials" yaml:"testimonials"`
	CTA          CallToAction     `json:"cta" yaml:"cta"`
}
