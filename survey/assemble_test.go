package survey

import (
	"reflect"
	"strings"
	"testing"
)

func TestAssemble(t *testing.T) {
	x := testExtractor(t)

	section, err := Assemble("7", DefaultQuestions(), x)
	if err != nil {
		t.Fatalf("Unexpected error returned from Assemble (%v)", err)
	}

	if section.Key != "7" {
		t.Errorf("Incorrect section key - expected:%v, got:%v", "7", section.Key)
	}

	if len(section.Questions) != 6 {
		t.Fatalf("Incorrect question count - expected:%v, got:%v", 6, len(section.Questions))
	}

	expected := [][]string{
		{"BJP", "INC"},
		{"BJP", "INC"},
		{"Candidate A", "Candidate B"},
		{"MLA One", "MLA Two"},
		{"MLA One"},
		{"General", "OBC"},
	}

	for i, q := range section.Questions {
		if !q.Required {
			t.Errorf("Question %d is not marked required", i+1)
		}

		if !q.SingleSelect {
			t.Errorf("Question %d is not marked single-select", i+1)
		}

		if strings.TrimSpace(q.Prompt.English) == "" || strings.TrimSpace(q.Prompt.Bengali) == "" {
			t.Errorf("Question %d is missing one or both language variants", i+1)
		}

		if !reflect.DeepEqual(q.Options, expected[i]) {
			t.Errorf("Question %d has incorrect options\n   expected: %v\n   got:      %v\n", i+1, expected[i], q.Options)
		}
	}
}

func TestAssembleWithUnknownKey(t *testing.T) {
	x := testExtractor(t)

	if _, err := Assemble("99", DefaultQuestions(), x); err == nil {
		t.Fatalf("Expected error return for unknown key, got %v", err)
	}
}

func TestClosingSection(t *testing.T) {
	questions := DefaultQuestions()

	section, err := ClosingSection(questions)
	if err != nil {
		t.Fatalf("Unexpected error returned from ClosingSection (%v)", err)
	}

	if len(section.Questions) != 2 {
		t.Fatalf("Incorrect question count - expected:%v, got:%v", 2, len(section.Questions))
	}

	if !reflect.DeepEqual(section.Questions[0].Options, questions.Final.Income.Options) {
		t.Errorf("Incorrect income options\n   expected: %v\n   got:      %v\n", questions.Final.Income.Options, section.Questions[0].Options)
	}

	if !reflect.DeepEqual(section.Questions[1].Options, questions.Final.Language.Options) {
		t.Errorf("Incorrect language options\n   expected: %v\n   got:      %v\n", questions.Final.Language.Options, section.Questions[1].Options)
	}
}

func TestIntroduction(t *testing.T) {
	questions := DefaultQuestions()
	questions.Introduction = Text{
		English: "Hello [caller_name]",
		Bengali: "নমস্কার [caller_name]",
	}

	intro := Introduction(questions, "Team A")

	if intro.English != "Hello Team A" {
		t.Errorf("Incorrect introduction - expected:%q, got:%q", "Hello Team A", intro.English)
	}

	if intro.Bengali != "নমস্কার Team A" {
		t.Errorf("Incorrect introduction - expected:%q, got:%q", "নমস্কার Team A", intro.Bengali)
	}

	if strings.Contains(intro.English, CallerToken) || strings.Contains(intro.Bengali, CallerToken) {
		t.Errorf("Residual caller token in introduction (%q / %q)", intro.English, intro.Bengali)
	}
}

func TestIntroductionReplacesAllOccurrences(t *testing.T) {
	questions := DefaultQuestions()
	questions.Introduction = Text{
		English: "[caller_name] and [caller_name]",
		Bengali: "[caller_name]",
	}

	intro := Introduction(questions, "Team A")

	if intro.English != "Team A and Team A" {
		t.Errorf("Incorrect introduction - expected:%q, got:%q", "Team A and Team A", intro.English)
	}
}

func TestBuildPlan(t *testing.T) {
	index, err := NewTableIndex(testTables()...)
	if err != nil {
		t.Fatalf("Unexpected error returned from NewTableIndex (%v)", err)
	}

	plan, warnings, err := BuildPlan(index, DefaultQuestions(), "Political Survey", "Team A", nil)
	if err != nil {
		t.Fatalf("Unexpected error returned from BuildPlan (%v)", err)
	}

	if !reflect.DeepEqual(plan.Keys, []string{"7", "8"}) {
		t.Errorf("Incorrect plan keys\n   expected: %v\n   got:      %v\n", []string{"7", "8"}, plan.Keys)
	}

	if len(plan.Sections) != 2 {
		t.Fatalf("Incorrect section count - expected:%v, got:%v", 2, len(plan.Sections))
	}

	for _, section := range plan.Sections {
		if len(section.Questions) != 6 {
			t.Errorf("AC %s: incorrect question count - expected:%v, got:%v", section.Key, 6, len(section.Questions))
		}
	}

	if len(plan.Closing.Questions) != 2 {
		t.Errorf("Incorrect closing question count - expected:%v, got:%v", 2, len(plan.Closing.Questions))
	}

	// AC 8 has no INC-tagged MLA rows, so its Congress question falls back
	fallback := false
	for _, w := range warnings {
		if strings.Contains(w, "AC 8") {
			fallback = true
		}
	}

	if !fallback {
		t.Errorf("Expected a fallback warning for AC 8, got %v", warnings)
	}
}

func TestBuildPlanSkipsUnknownKeys(t *testing.T) {
	index, err := NewTableIndex(testTables()...)
	if err != nil {
		t.Fatalf("Unexpected error returned from NewTableIndex (%v)", err)
	}

	plan, warnings, err := BuildPlan(index, DefaultQuestions(), "Political Survey", "Team A", []string{"7", "99"})
	if err != nil {
		t.Fatalf("Unexpected error returned from BuildPlan (%v)", err)
	}

	if !reflect.DeepEqual(plan.Keys, []string{"7"}) {
		t.Errorf("Incorrect plan keys\n   expected: %v\n   got:      %v\n", []string{"7"}, plan.Keys)
	}

	skipped := false
	for _, w := range warnings {
		if strings.Contains(w, "AC 99") {
			skipped = true
		}
	}

	if !skipped {
		t.Errorf("Expected a skip warning for AC 99, got %v", warnings)
	}
}

func TestBuildPlanWithNoAssemblableSections(t *testing.T) {
	index, err := NewTableIndex(testTables()...)
	if err != nil {
		t.Fatalf("Unexpected error returned from NewTableIndex (%v)", err)
	}

	if _, _, err := BuildPlan(index, DefaultQuestions(), "Political Survey", "Team A", []string{"98", "99"}); err == nil {
		t.Fatalf("Expected error return when no sections can be assembled, got %v", err)
	}
}

func TestQuestionSetCheck(t *testing.T) {
	questions := DefaultQuestions()
	if err := questions.Check(); err != nil {
		t.Fatalf("Unexpected error returned from Check (%v)", err)
	}

	questions.AC.MPVote.Bengali = ""
	if err := questions.Check(); err == nil {
		t.Fatalf("Expected error return for missing language variant, got %v", err)
	}

	questions = DefaultQuestions()
	questions.Final.Income.Options = nil
	if err := questions.Check(); err == nil {
		t.Fatalf("Expected error return for missing income options, got %v", err)
	}
}
