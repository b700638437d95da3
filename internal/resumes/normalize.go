package resumes

import (
	"fmt"
	"strings"
	"time"
)

// Canonical enum sets and the fixed default each field falls back to when the
// model emits something unrecognized.
var (
	experienceTypes = map[string]bool{"work": true, "internship": true, "project": true, "volunteer": true}
	educationTypes  = map[string]bool{"highSchool": true, "intermediate": true, "undergraduate": true, "graduate": true}
	skillLevels     = map[string]bool{"beginner": true, "intermediate": true, "advanced": true, "expert": true}
	languageLevels  = map[string]bool{"basic": true, "intermediate": true, "advanced": true, "fluent": true}
)

const (
	defaultExperienceType = "work"
	defaultEducationType  = "undergraduate"
	defaultSkillLevel     = "intermediate"
	defaultLanguageLevel  = "basic"
)

// Synonym tables map common alternate phrasings onto the canonical enums.
// Keys are case-folded before lookup.
var experienceSynonyms = map[string]string{
	"job":          "work",
	"employment":   "work",
	"employee":     "work",
	"full-time":    "work",
	"fulltime":     "work",
	"part-time":    "work",
	"parttime":     "work",
	"contract":     "work",
	"freelance":    "work",
	"intern":       "internship",
	"trainee":      "internship",
	"projects":     "project",
	"personal":     "project",
	"volunteering": "volunteer",
	"voluntary":    "volunteer",
}

var educationSynonyms = map[string]string{
	"high school":   "highSchool",
	"highschool":    "highSchool",
	"school":        "highSchool",
	"secondary":     "intermediate",
	"diploma":       "intermediate",
	"associate":     "intermediate",
	"bachelor":      "undergraduate",
	"bachelors":     "undergraduate",
	"bachelor's":    "undergraduate",
	"undergrad":     "undergraduate",
	"master":        "graduate",
	"masters":       "graduate",
	"master's":      "graduate",
	"phd":           "graduate",
	"doctorate":     "graduate",
	"postgraduate":  "graduate",
	"post-graduate": "graduate",
}

var skillLevelSynonyms = map[string]string{
	"basic":        "beginner",
	"novice":       "beginner",
	"entry":        "beginner",
	"medium":       "intermediate",
	"moderate":     "intermediate",
	"proficient":   "advanced",
	"experienced":  "advanced",
	"professional": "advanced",
	"master":       "expert",
	"native":       "expert",
}

var languageLevelSynonyms = map[string]string{
	"beginner":       "basic",
	"elementary":     "basic",
	"conversational": "intermediate",
	"limited":        "intermediate",
	"professional":   "advanced",
	"proficient":     "advanced",
	"native":         "fluent",
	"bilingual":      "fluent",
	"mother tongue":  "fluent",
}

// Normalize coerces a parsed model response into a canonical ResumeRecord.
// Missing or malformed fields default rather than fail; a partial record is
// more useful to the end user than a hard error.
func Normalize(raw map[string]any) ResumeRecord {
	rec := ResumeRecord{
		Experiences: []ExperienceEntry{},
		Education:   []EducationEntry{},
		Skills: Skills{
			TechnicalSkills: []Skill{},
			SoftSkills:      []Skill{},
			Certifications:  []Certification{},
			Languages:       []Language{},
			Hobbies:         []string{},
		},
		Additional: Additional{
			Publications: []string{},
			Patents:      []string{},
			Memberships:  []string{},
			Awards:       []string{},
		},
	}

	personal := asMap(raw["personal"])
	rec.Personal = Personal{
		FirstName:   asString(personal["firstName"]),
		LastName:    asString(personal["lastName"]),
		DateOfBirth: normalizeDate(asString(personal["dateOfBirth"])),
		Phone:       asString(personal["phone"]),
		Email:       asString(personal["email"]),
		LinkedIn:    asString(personal["linkedin"]),
		GitHub:      asString(personal["github"]),
		City:        asString(personal["city"]),
		State:       asString(personal["state"]),
		Summary:     asString(personal["summary"]),
		JobTitle:    asString(personal["jobTitle"]),
	}

	for _, item := range asSlice(raw["experiences"]) {
		m := asMap(item)
		typ := mapEnum(asString(m["type"]), experienceSynonyms, experienceTypes, defaultExperienceType)
		rec.Experiences = append(rec.Experiences, ExperienceEntry{
			ID:           typ,
			Type:         typ,
			Title:        asString(m["title"]),
			Organization: asString(m["organization"]),
			Location:     asString(m["location"]),
			StartDate:    normalizeDate(asString(m["startDate"])),
			EndDate:      normalizeDate(asString(m["endDate"])),
			Current:      asBool(m["current"]),
			Description:  asString(m["description"]),
			Achievements: asStringSlice(m["achievements"]),
			Technologies: asStringSlice(m["technologies"]),
		})
	}

	for _, item := range asSlice(raw["education"]) {
		m := asMap(item)
		typ := mapEnum(asString(m["type"]), educationSynonyms, educationTypes, defaultEducationType)
		rec.Education = append(rec.Education, EducationEntry{
			ID:           typ,
			Type:         typ,
			SchoolName:   asString(m["schoolName"]),
			Location:     asString(m["location"]),
			StartDate:    normalizeDate(asString(m["startDate"])),
			EndDate:      normalizeDate(asString(m["endDate"])),
			Field:        asString(m["field"]),
			Degree:       asString(m["degree"]),
			GPA:          asString(m["gpa"]),
			Description:  asString(m["description"]),
			Achievements: asStringSlice(m["achievements"]),
			Courses:      asStringSlice(m["courses"]),
		})
	}

	skills := asMap(raw["skills"])
	rec.Skills.TechnicalSkills = normalizeSkills(skills["technicalSkills"], "technical")
	rec.Skills.SoftSkills = normalizeSkills(skills["softSkills"], "soft")
	for _, item := range asSlice(skills["certifications"]) {
		m := asMap(item)
		cert := Certification{
			Name:          asString(m["name"]),
			Issuer:        asString(m["issuer"]),
			IssueDate:     normalizeDate(asString(m["issueDate"])),
			DoesNotExpire: asBool(m["doesNotExpire"]),
		}
		cert.ID = cert.Name
		if !cert.DoesNotExpire {
			cert.ExpirationDate = normalizeDate(asString(m["expirationDate"]))
		}
		rec.Skills.Certifications = append(rec.Skills.Certifications, cert)
	}
	for _, item := range asSlice(skills["languages"]) {
		m := asMap(item)
		lang := Language{
			Name:        asString(m["name"]),
			Proficiency: mapEnum(asString(m["proficiency"]), languageLevelSynonyms, languageLevels, defaultLanguageLevel),
		}
		lang.ID = lang.Name
		rec.Skills.Languages = append(rec.Skills.Languages, lang)
	}
	rec.Skills.Hobbies = asStringSlice(skills["hobbies"])

	additional := asMap(raw["additional"])
	rec.Additional.Publications = asStringSlice(additional["publications"])
	rec.Additional.Patents = asStringSlice(additional["patents"])
	rec.Additional.Memberships = asStringSlice(additional["memberships"])
	rec.Additional.Awards = asStringSlice(additional["awards"])

	return rec
}

func normalizeSkills(v any, skillType string) []Skill {
	out := []Skill{}
	for _, item := range asSlice(v) {
		switch s := item.(type) {
		case string:
			// Some model responses list skills as bare strings.
			out = append(out, Skill{
				ID:          skillType,
				Name:        strings.TrimSpace(s),
				Type:        skillType,
				Proficiency: defaultSkillLevel,
			})
		default:
			m := asMap(item)
			out = append(out, Skill{
				ID:          skillType,
				Name:        asString(m["name"]),
				Type:        skillType,
				Proficiency: mapEnum(asString(m["proficiency"]), skillLevelSynonyms, skillLevels, defaultSkillLevel),
			})
		}
	}
	return out
}

// mapEnum resolves a model-emitted enum value in two stages: a synonym lookup
// first, then membership in the canonical set, falling back to def.
func mapEnum(value string, synonyms map[string]string, canonical map[string]bool, def string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return def
	}
	if mapped, ok := synonyms[v]; ok {
		return mapped
	}
	for member := range canonical {
		if strings.EqualFold(v, member) {
			return member
		}
	}
	return def
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"02/01/2006",
	"January 2006",
	"Jan 2006",
	"January 2, 2006",
	"2006-01",
	"2006",
}

// normalizeDate reduces a date-ish string to YYYY-MM-DD, or "" when it cannot
// be parsed.
func normalizeDate(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case float64:
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s))
		}
		return fmt.Sprintf("%g", s)
	case bool:
		if s {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(strings.TrimSpace(b), "true")
	default:
		return false
	}
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func asSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return nil
}

func asStringSlice(v any) []string {
	out := []string{}
	for _, item := range asSlice(v) {
		if s := asString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
