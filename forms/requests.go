package forms

import (
	"fmt"

	gforms "google.golang.org/api/forms/v1"

	"surveyforms/survey"
)

// Choice question types used by the Forms API.
const (
	radio    = "RADIO"
	dropdown = "DROP_DOWN"
)

// IntroItem builds the introduction text item at the given index. Returns the requests and
// the next free index.
func IntroItem(intro survey.Text, index int64) ([]*gforms.Request, int64) {
	requests := []*gforms.Request{
		createItem(&gforms.Item{
			Title:       "Introduction / পরিচয়",
			Description: fmt.Sprintf("%s\n\n%s", intro.English, intro.Bengali),
			TextItem:    &gforms.TextItem{},
		}, index),
	}

	return requests, index + 1
}

// BasicInfoItems builds the basic information questions - agent ID, mobile number, gender and
// the AC selection dropdown.
func BasicInfoItems(questions survey.BasicInfoText, acs []string, index int64) ([]*gforms.Request, int64) {
	options := make([]string, len(acs))
	for i, ac := range acs {
		options[i] = fmt.Sprintf("AC %s", ac)
	}

	requests := []*gforms.Request{
		createItem(&gforms.Item{
			Title: bilingual(questions.AgentID),
			QuestionItem: &gforms.QuestionItem{
				Question: &gforms.Question{
					Required:     true,
					TextQuestion: &gforms.TextQuestion{},
				},
			},
		}, index),
		createItem(&gforms.Item{
			Title: bilingual(questions.MobileNumber),
			QuestionItem: &gforms.QuestionItem{
				Question: &gforms.Question{
					Required:     true,
					TextQuestion: &gforms.TextQuestion{},
				},
			},
		}, index+1),
		createItem(&gforms.Item{
			Title:        bilingual(survey.Text{English: questions.Gender.English, Bengali: questions.Gender.Bengali}),
			QuestionItem: choiceQuestion(radio, questions.Gender.Options),
		}, index+2),
		createItem(&gforms.Item{
			Title:        bilingual(questions.ACSelection),
			QuestionItem: choiceQuestion(dropdown, options),
		}, index+3),
	}

	return requests, index + 4
}

// SectionItems builds one AC section: a page break, a section header and the six questions.
func SectionItems(section survey.SectionSpec, index int64) ([]*gforms.Request, int64) {
	requests := []*gforms.Request{
		createItem(&gforms.Item{
			PageBreakItem: &gforms.PageBreakItem{},
		}, index),
		createItem(&gforms.Item{
			Title:       fmt.Sprintf("Questions for AC %s", section.Key),
			Description: fmt.Sprintf("Please answer the following questions specific to Assembly Constituency %s", section.Key),
			TextItem:    &gforms.TextItem{},
		}, index+1),
	}

	index += 2

	for _, q := range section.Questions {
		requests = append(requests, createItem(&gforms.Item{
			Title:        bilingual(q.Prompt),
			QuestionItem: choiceQuestion(radio, q.Options),
		}, index))

		index++
	}

	return requests, index
}

// ClosingItems builds the common closing section: a page break, a section header and the two
// common questions.
func ClosingItems(section survey.SectionSpec, index int64) ([]*gforms.Request, int64) {
	requests := []*gforms.Request{
		createItem(&gforms.Item{
			PageBreakItem: &gforms.PageBreakItem{},
		}, index),
		createItem(&gforms.Item{
			Title:       "Final Questions / চূড়ান্ত প্রশ্ন",
			Description: "Please answer these final questions / অনুগ্রহ করে এই চূড়ান্ত প্রশ্নগুলির উত্তর দিন",
			TextItem:    &gforms.TextItem{},
		}, index+1),
	}

	index += 2

	for _, q := range section.Questions {
		requests = append(requests, createItem(&gforms.Item{
			Title:        bilingual(q.Prompt),
			QuestionItem: choiceQuestion(radio, q.Options),
		}, index))

		index++
	}

	return requests, index
}

func createItem(item *gforms.Item, index int64) *gforms.Request {
	return &gforms.Request{
		CreateItem: &gforms.CreateItemRequest{
			Item: item,
			Location: &gforms.Location{
				Index:           index,
				ForceSendFields: []string{"Index"},
			},
		},
	}
}

func choiceQuestion(kind string, options []string) *gforms.QuestionItem {
	values := make([]*gforms.Option, len(options))
	for i, option := range options {
		values[i] = &gforms.Option{
			Value: option,
		}
	}

	return &gforms.QuestionItem{
		Question: &gforms.Question{
			Required: true,
			ChoiceQuestion: &gforms.ChoiceQuestion{
				Type:    kind,
				Options: values,
				Shuffle: false,
			},
		},
	}
}

func bilingual(text survey.Text) string {
	return fmt.Sprintf("%s | %s", text.English, text.Bengali)
}
