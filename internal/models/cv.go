package models

import (
	"fmt"
	"strings"
	"time"
)

// PersonalInfo is the identity block at the top of a CV.
type PersonalInfo struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Description string `json:"description"`
}

// Education is one education row of a CV.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
}

// Experience is one work experience row of a CV.
type Experience struct {
	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`
	Years    int    `json:"years"`
}

// CV is a stored curriculum vitae as returned by the API. The platform
// keeps one CV per user.
type CV struct {
	ID           string       `json:"_id"`
	OwnerID      string       `json:"userId"`
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Education    []Education  `json:"education"`
	Experience   []Experience `json:"experience"`
	IsVisible    bool         `json:"isVisible"`
}

// CVDraft is the request body for creating or fully replacing a CV.
// Updates carry the complete document; there are no merge semantics.
type CVDraft struct {
	UserID       string       `json:"userId,omitempty"`
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Education    []Education  `json:"education"`
	Experience   []Experience `json:"experience"`
	IsVisible    bool         `json:"isVisible"`
}

// Draft converts a stored CV back into an editable draft, used for
// full-replace updates.
func (c CV) Draft() CVDraft {
	return CVDraft{
		UserID:       c.OwnerID,
		PersonalInfo: c.PersonalInfo,
		Education:    c.Education,
		Experience:   c.Experience,
		IsVisible:    c.IsVisible,
	}
}

// DisplayName returns "First Last" for list rendering.
func (c CV) DisplayName() string {
	return strings.TrimSpace(c.PersonalInfo.FirstName + " " + c.PersonalInfo.LastName)
}

// Matches reports whether the CV matches a case-insensitive substring search
// over first name, last name and description.
func (c CV) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.PersonalInfo.FirstName), term) ||
		strings.Contains(strings.ToLower(c.PersonalInfo.LastName), term) ||
		strings.Contains(strings.ToLower(c.PersonalInfo.Description), term)
}

// Validate checks a draft against the CV form rules before submission.
func (d CVDraft) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(d.PersonalInfo.FirstName) == "" {
		errs = append(errs, "personalInfo.firstName: required")
	}
	if strings.TrimSpace(d.PersonalInfo.LastName) == "" {
		errs = append(errs, "personalInfo.lastName: required")
	}
	currentYear := time.Now().Year()
	for i, e := range d.Education {
		if strings.TrimSpace(e.Degree) == "" {
			errs = append(errs, fmt.Sprintf("education[%d].degree: required", i))
		}
		if strings.TrimSpace(e.Institution) == "" {
			errs = append(errs, fmt.Sprintf("education[%d].institution: required", i))
		}
		if e.Year < 1900 || e.Year > currentYear {
			errs = append(errs, fmt.Sprintf("education[%d].year: must be between 1900 and %d", i, currentYear))
		}
	}
	for i, e := range d.Experience {
		if strings.TrimSpace(e.JobTitle) == "" {
			errs = append(errs, fmt.Sprintf("experience[%d].jobTitle: required", i))
		}
		if strings.TrimSpace(e.Company) == "" {
			errs = append(errs, fmt.Sprintf("experience[%d].company: required", i))
		}
		if e.Years < 0 || e.Years > 50 {
			errs = append(errs, fmt.Sprintf("experience[%d].years: must be between 0 and 50", i))
		}
	}
	return errs.ErrOrNil()
}
