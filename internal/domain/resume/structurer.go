package resume

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// Parsed is a resume segmented into its sections.
type Parsed struct {
	Text           string          `json:"text"`
	Contact        ContactInfo     `json:"contact_info"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Skills         []string        `json:"skills"`
	Summary        string          `json:"summary,omitempty"`
	Certifications []Certification `json:"certifications"`
}

type Structurer struct {
	decoder Decoder
	logger  *log.Logger
}

func NewStructurer(decoder Decoder, logger *log.Logger) *Structurer {
	if decoder == nil {
		decoder = NewFormatDecoder()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Structurer{decoder: decoder, logger: logger}
}

func (s *Structurer) ParseFile(path string) (Parsed, error) {
	ext, err := FormatOf(path)
	if err != nil {
		return Parsed{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Parsed{}, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}
	return s.parse(ext, data)
}

// Parse decodes an in-memory document; filename only selects the decoder.
func (s *Structurer) Parse(filename string, data []byte) (Parsed, error) {
	ext, err := FormatOf(filename)
	if err != nil {
		return Parsed{}, err
	}
	return s.parse(ext, data)
}

func (s *Structurer) parse(ext string, data []byte) (Parsed, error) {
	if len(data) == 0 {
		return Parsed{}, ErrEmptyDocument
	}
	text, err := s.decoder.Decode(ext, data)
	if err != nil {
		return Parsed{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Parsed{}, ErrEmptyDocument
	}
	return s.Structure(text), nil
}

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Structure runs every section extractor over text. A failing extractor leaves
// its section empty and the others untouched. Line endings are normalized to \n.
func (s *Structurer) Structure(text string) Parsed {
	text = newlines.Replace(text)
	p := Parsed{Text: text}
	p.Contact = guard(s.logger, "contact", ContactInfo{}, func() ContactInfo { return ExtractContactInfo(text) })
	p.Education = guard(s.logger, "education", []Education{}, func() []Education { return ExtractEducation(text) })
	p.Experience = guard(s.logger, "experience", []Experience{}, func() []Experience { return ExtractExperience(text) })
	p.Skills = guard(s.logger, "skills", []string{}, func() []string { return ExtractSkillsSection(text) })
	p.Summary = guard(s.logger, "summary", "", func() string { return ExtractSummary(text) })
	p.Certifications = guard(s.logger, "certifications", []Certification{}, func() []Certification { return ExtractCertifications(text) })
	return p
}

func guard[T any](logger *log.Logger, section string, fallback T, fn func() T) (out T) {
	defer func() {
		if r := recover(); r != nil {
			if logger != nil {
				logger.Printf("resume section=%s status=error err=%v", section, r)
			}
			out = fallback
		}
	}()
	return fn()
}

// CompletenessScore rates how complete a parsed resume is, out of 100.
func CompletenessScore(p Parsed) int {
	score := 0
	if p.Contact.Email != "" {
		score += 10
	}
	if p.Contact.Phone != "" {
		score += 5
	}
	if p.Contact.Name != "" {
		score += 5
	}
	if len(p.Education) > 0 {
		score += 20
	}
	score += min(30, 10*len(p.Experience))
	score += min(20, 2*len(p.Skills))
	if p.Summary != "" {
		score += 10
	}
	return min(score, 100)
}

// YearsOfExperience is ExperienceYears against the current clock.
func (p Parsed) YearsOfExperience() float64 {
	return ExperienceYears(p.Experience, time.Now())
}
