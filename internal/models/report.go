package models

import "time"

// Report is the serialisable outcome of one comparison run
type Report struct {
	RunID          string    `yaml:"run_id"`
	Mode           string    `yaml:"mode"`
	TermsSource    string    `yaml:"terms_source"`
	HaystackSource string    `yaml:"haystack_source"`
	GeneratedAt    time.Time `yaml:"generated_at"`
	Total          int       `yaml:"total"`
	FoundCount     int       `yaml:"found_count"`
	MissingCount   int       `yaml:"missing_count"`
	Found          []string  `yaml:"found"`
	Missing        []string  `yaml:"missing"`
}
