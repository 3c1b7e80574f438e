package resume

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	EducationKeywords = []string{
		"education", "degree", "university", "college", "bachelor", "master",
		"phd", "diploma", "certification", "course", "school",
	}
	ExperienceKeywords = []string{
		"experience", "work", "employment", "job", "position", "role",
		"worked", "served", "employed", "career", "professional",
	}
	SkillKeywords = []string{
		"skills", "technical skills", "programming", "languages", "technologies",
		"tools", "software", "frameworks", "libraries",
	}
	CertificationKeywords = []string{"certification", "certificate", "course", "training", "certified"}
	SummaryKeywords       = []string{"summary", "objective", "profile", "about", "overview"}

	// a line holding one of these ends the current section
	sectionBreakKeywords = []string{
		"education", "experience", "skills", "projects", "certifications",
		"achievements", "awards", "references", "contact", "summary",
	}
	summaryStopKeywords = []string{"education", "experience", "skills"}
	nameRejectKeywords  = []string{"email", "phone", "address"}
)

const (
	maxSummaryLines = 4
	maxNameLines    = 5
	maxNameWords    = 4
	maxSkills       = 20
)

var (
	emailRe         = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe         = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedInRe      = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	nameRejectChars = regexp.MustCompile(`[0-9@]`)

	degreeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(Bachelor|Master|PhD|Ph\.D|MBA|B\.S|M\.S|B\.A|M\.A)\s+.*?(\d{4})`),
		regexp.MustCompile(`(?i)(Diploma|Certificate)\s+.*?(\d{4})`),
		regexp.MustCompile(`(?i)(University|College)\s+.*?(\d{4})`),
	}

	jobTitle = `([A-Z][a-z \t]+(?:Manager|Developer|Engineer|Analyst|Specialist|Coordinator|Director|Lead|Senior|Junior))`
	jobRes   = []*regexp.Regexp{
		regexp.MustCompile(`(?im)` + jobTitle + `[ \t]*[-–][ \t]*([A-Z][A-Za-z \t&.,]+)?[ \t]*\(?(\d{4})[ \t]*[-–][ \t]*(\d{4}|Present)`),
		regexp.MustCompile(`(?im)` + jobTitle + `[ \t]+at[ \t]+([A-Z][A-Za-z \t&.,]+?)[ \t]*\(?(\d{4})`),
	}

	skillRes = []*regexp.Regexp{
		regexp.MustCompile(`([A-Z][a-zA-Z+# \t]+(?:Python|Java|JavaScript|React|Angular|Vue|Node|SQL|HTML|CSS|AWS|Docker|Git|Linux|Windows|MacOS|Office|Excel|PowerPoint|Photoshop|Illustrator))`),
		regexp.MustCompile(`•[ \t]*([A-Za-z+# \t]+)`),
		regexp.MustCompile(`(?m)^[ \t]*-[ \t]*([A-Za-z+# \t]+)`),
		regexp.MustCompile(`(?m)^([A-Z][a-zA-Z+# \t]{2,20})$`),
	}

	certRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)([A-Z][A-Za-z \t]+(?:Certification|Certificate|Course))[ \t]*[-–][ \t]*([A-Za-z \t]+)?[ \t]*\(?(\d{4})`),
		regexp.MustCompile(`(?i)([A-Z][A-Za-z \t]+?)[ \t]+Certified[ \t]*\(?(\d{4})`),
		regexp.MustCompile(`(?i)([A-Z][A-Za-z \t]+?)[ \t]+Certificate[ \t]*\(?(\d{4})`),
	}
)

type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

type Education struct {
	Degree  string `json:"degree"`
	Details string `json:"details"`
	Year    string `json:"year,omitempty"`
}

type Experience struct {
	Title     string `json:"title"`
	Company   string `json:"company,omitempty"`
	StartYear string `json:"start_year,omitempty"`
	EndYear   string `json:"end_year,omitempty"`
	Details   string `json:"details"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Year   string `json:"year,omitempty"`
}

// FindSection returns the block starting at the first line that contains one of
// keywords and ending before the next line that names a different section.
// The line right after the header is never treated as a terminator.
func FindSection(text string, keywords []string) (string, bool) {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if containsAny(strings.ToLower(line), keywords) {
			start = i
			break
		}
	}
	if start < 0 {
		return "", false
	}

	end := len(lines)
	for i := start + 2; i < len(lines); i++ {
		line := strings.ToLower(strings.TrimSpace(lines[i]))
		if containsAny(line, sectionBreakKeywords) && !containsAny(line, keywords) {
			end = i
			break
		}
	}
	return strings.Join(lines[start:end], "\n"), true
}

func ExtractContactInfo(text string) ContactInfo {
	var c ContactInfo
	c.Email = emailRe.FindString(text)
	c.Phone = strings.TrimSpace(phoneRe.FindString(text))
	c.LinkedIn = linkedInRe.FindString(text)

	lines := strings.Split(text, "\n")
	if len(lines) > maxNameLines {
		lines = lines[:maxNameLines]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || len(strings.Fields(line)) > maxNameWords {
			continue
		}
		if containsAny(strings.ToLower(line), nameRejectKeywords) || nameRejectChars.MatchString(line) {
			continue
		}
		c.Name = line
		break
	}
	return c
}

func ExtractEducation(text string) []Education {
	section, ok := FindSection(text, EducationKeywords)
	if !ok {
		return []Education{}
	}

	out := make([]Education, 0)
	for _, re := range degreeRes {
		for _, m := range re.FindAllStringSubmatch(section, -1) {
			out = append(out, Education{Degree: m[1], Details: m[0], Year: m[2]})
		}
	}
	return out
}

func ExtractExperience(text string) []Experience {
	section, ok := FindSection(text, ExperienceKeywords)
	if !ok {
		return []Experience{}
	}

	out := make([]Experience, 0)
	for _, re := range jobRes {
		for _, m := range re.FindAllStringSubmatch(section, -1) {
			e := Experience{
				Title:     strings.TrimSpace(m[1]),
				Company:   strings.TrimSpace(m[2]),
				StartYear: m[3],
				Details:   m[0],
			}
			if len(m) > 4 {
				e.EndYear = m[4]
			}
			out = append(out, e)
		}
	}
	return out
}

// ExtractSkillsSection collects skill-like tokens from the body of the skills
// section, deduplicated in first-seen order and capped at 20.
func ExtractSkillsSection(text string) []string {
	section, ok := FindSection(text, SkillKeywords)
	if !ok {
		return []string{}
	}
	body := ""
	if i := strings.IndexByte(section, '\n'); i >= 0 {
		body = section[i+1:]
	}

	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, re := range skillRes {
		for _, m := range re.FindAllStringSubmatch(body, -1) {
			s := strings.TrimSpace(m[1])
			if len(s) < 2 || len(s) >= 30 {
				continue
			}
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	if len(out) > maxSkills {
		out = out[:maxSkills]
	}
	return out
}

func ExtractSummary(text string) string {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if containsAny(strings.ToLower(line), SummaryKeywords) {
			start = i
			break
		}
	}
	if start < 0 {
		return ""
	}

	parts := make([]string, 0, maxSummaryLines)
	for i := start + 1; i < len(lines) && i <= start+maxSummaryLines; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || containsAny(strings.ToLower(line), summaryStopKeywords) {
			break
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}

func ExtractCertifications(text string) []Certification {
	section, ok := FindSection(text, CertificationKeywords)
	if !ok {
		return []Certification{}
	}

	out := make([]Certification, 0)
	for i, re := range certRes {
		for _, m := range re.FindAllStringSubmatch(section, -1) {
			c := Certification{Name: strings.TrimSpace(m[1]), Year: m[len(m)-1]}
			if i == 0 {
				c.Issuer = strings.TrimSpace(m[2])
			}
			out = append(out, c)
		}
	}
	return out
}

// ExperienceYears sums end-start over the entries, counting "Present" or a
// missing end as now's year. Entries without a start year are skipped.
func ExperienceYears(entries []Experience, now time.Time) float64 {
	total := 0
	for _, e := range entries {
		start, err := strconv.Atoi(strings.TrimSpace(e.StartYear))
		if err != nil || start <= 0 {
			continue
		}
		end := now.Year()
		if y, err := strconv.Atoi(strings.TrimSpace(e.EndYear)); err == nil {
			end = y
		}
		total += end - start
	}
	return float64(total)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
