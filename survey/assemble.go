package survey

import (
	"errors"
	"fmt"
	"strings"
)

// QuestionSpec is a single assembled form question. Immutable once assembled - every question
// is required and single-select.
type QuestionSpec struct {
	Prompt       Text     `json:"prompt"`
	Options      []string `json:"options"`
	Required     bool     `json:"required"`
	SingleSelect bool     `json:"single_select"`
}

// SectionSpec is the assembled question section for one AC (exactly six questions), or the
// common closing section (exactly two questions, Key empty). Built once, never mutated,
// consumed once by the form emitter.
type SectionSpec struct {
	Key       string         `json:"ac"`
	Questions []QuestionSpec `json:"questions"`
}

// Plan is the fully assembled form specification, complete before any emission begins.
type Plan struct {
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	Introduction Text          `json:"introduction"`
	Keys         []string      `json:"ac_numbers"`
	Sections     []SectionSpec `json:"sections"`
	Closing      SectionSpec   `json:"closing"`
}

// Assemble builds the six AC-specific questions for one key, in fixed order: voting intention,
// prior-vote history, MP-vote history, MLA preference, Congress preference, social category.
func Assemble(key string, questions QuestionSet, x *Extractor) (SectionSpec, error) {
	parties, err := x.PartyOptions(key)
	if err != nil {
		return SectionSpec{}, err
	}

	mp, err := x.MPCandidates(key)
	if err != nil {
		return SectionSpec{}, err
	}

	mla, err := x.MLACandidates(key)
	if err != nil {
		return SectionSpec{}, err
	}

	congress, err := x.CongressCandidates(key)
	if err != nil {
		return SectionSpec{}, err
	}

	castes, err := x.CasteOptions(key)
	if err != nil {
		return SectionSpec{}, err
	}

	section := SectionSpec{
		Key: normaliseKey(key),
		Questions: []QuestionSpec{
			question(questions.AC.VotingIntention, parties),
			question(questions.AC.PriorVote, parties),
			question(questions.AC.MPVote, mp),
			question(questions.AC.MLAPreference, mla),
			question(questions.AC.Congress, congress),
			question(questions.AC.SocialCategory, castes),
		},
	}

	if err := section.check(6); err != nil {
		return SectionSpec{}, err
	}

	return section, nil
}

// ClosingSection builds the common closing section - family income and interview language,
// with their literal fixed option lists. Appended exactly once per form, not per AC.
func ClosingSection(questions QuestionSet) (SectionSpec, error) {
	section := SectionSpec{
		Questions: []QuestionSpec{
			question(Text{English: questions.Final.Income.English, Bengali: questions.Final.Income.Bengali}, questions.Final.Income.Options),
			question(Text{English: questions.Final.Language.English, Bengali: questions.Final.Language.Bengali}, questions.Final.Language.Options),
		},
	}

	if err := section.check(2); err != nil {
		return SectionSpec{}, err
	}

	return section, nil
}

// Introduction returns the introduction text with every occurrence of the caller token
// replaced by the configured caller name. The substitution is a literal string replace.
func Introduction(questions QuestionSet, callerName string) Text {
	return Text{
		English: strings.ReplaceAll(questions.Introduction.English, CallerToken, callerName),
		Bengali: strings.ReplaceAll(questions.Introduction.Bengali, CallerToken, callerName),
	}
}

// BuildPlan assembles the complete form specification for the given keys (all keys in the
// index when keys is empty). Keys unknown to every table are skipped and reported in the
// returned warnings; fallback option lists are likewise reported. The plan is complete before
// it is returned - emission never starts against a partial plan.
func BuildPlan(index *TableIndex, questions QuestionSet, title, callerName string, keys []string) (*Plan, []string, error) {
	if err := questions.Check(); err != nil {
		return nil, nil, err
	}

	if len(keys) == 0 {
		keys = index.Keys()
	}

	x := NewExtractor(index)
	warnings := []string{}

	plan := Plan{
		Title:        title,
		Introduction: Introduction(questions, callerName),
	}

	for _, key := range keys {
		section, err := Assemble(key, questions, x)
		if err != nil {
			var invalid *InvalidKeyError
			if errors.As(err, &invalid) {
				warnings = append(warnings, fmt.Sprintf("AC %s: not found in any sheet, skipped", invalid.Key))
				continue
			}

			return nil, warnings, err
		}

		for i, q := range section.Questions {
			if IsFallback(q.Options) {
				warnings = append(warnings, fmt.Sprintf("AC %s: question %d has no extracted options, using '%s'", section.Key, i+1, q.Options[0]))
			}
		}

		plan.Keys = append(plan.Keys, section.Key)
		plan.Sections = append(plan.Sections, section)
	}

	if len(plan.Sections) == 0 {
		return nil, warnings, fmt.Errorf("no AC sections could be assembled")
	}

	closing, err := ClosingSection(questions)
	if err != nil {
		return nil, warnings, err
	}

	plan.Closing = closing

	return &plan, warnings, nil
}

func question(prompt Text, options []string) QuestionSpec {
	return QuestionSpec{
		Prompt:       prompt,
		Options:      options,
		Required:     true,
		SingleSelect: true,
	}
}

func (s SectionSpec) check(expected int) error {
	if len(s.Questions) != expected {
		return fmt.Errorf("section for AC '%s' has %d questions, expected %d", s.Key, len(s.Questions), expected)
	}

	for i, q := range s.Questions {
		if strings.TrimSpace(q.Prompt.English) == "" || strings.TrimSpace(q.Prompt.Bengali) == "" {
			return fmt.Errorf("section for AC '%s': question %d is missing one or both language variants", s.Key, i+1)
		}

		if len(q.Options) == 0 {
			return fmt.Errorf("section for AC '%s': question %d has an empty option list", s.Key, i+1)
		}
	}

	return nil
}
