package dto

import "github.com/dinesh-manogaran/Career-Compass/internal/model"

// AuthViewDTO is the entry view's renderable state. Passwords never appear
// in it.
type AuthViewDTO struct {
	Mode    string `json:"mode"`
	Email   string `json:"email"`
	Message string `json:"message,omitempty"`
}

// MatchViewDTO is the dashboard's match section, derived metrics included.
type MatchViewDTO struct {
	State   string `json:"state"`
	Message string `json:"message,omitempty"`

	JobDescriptionFile string   `json:"jd_file,omitempty"`
	ResumeFile         string   `json:"resume_file,omitempty"`
	MaxUploadMB        int      `json:"max_upload_mb"`
	AcceptedExtensions []string `json:"accepted_extensions"`

	Result *model.MatchResult `json:"result,omitempty"`

	MatchPercent         int    `json:"match_percent"`
	ColorBand            string `json:"color_band"`
	BarColor             string `json:"bar_color"`
	MatchedCount         int    `json:"matched_count"`
	MissingCount         int    `json:"missing_count"`
	HasSkillData         bool   `json:"has_skill_data"`
	MatchedPercentForPie int    `json:"matched_percent_for_pie"`
	MissingPercentForPie int    `json:"missing_percent_for_pie"`
}

// QueryViewDTO is the dashboard's Q&A section.
type QueryViewDTO struct {
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
	Error    string `json:"error,omitempty"`
	Loading  bool   `json:"loading"`
}

// DashboardViewDTO is the whole protected view.
type DashboardViewDTO struct {
	Match MatchViewDTO `json:"match"`
	Query QueryViewDTO `json:"query"`
}
