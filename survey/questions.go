package survey

import (
	"fmt"
	"strings"
)

// CallerToken is the placeholder in the introduction text replaced with the configured caller
// name. Every occurrence is replaced, literally.
const CallerToken = "[caller_name]"

// Text is a bilingual prompt. Both variants are required.
type Text struct {
	English string `json:"english"`
	Bengali string `json:"bengali"`
}

// ChoiceText is a bilingual prompt with a fixed option list.
type ChoiceText struct {
	English string   `json:"english"`
	Bengali string   `json:"bengali"`
	Options []string `json:"options"`
}

// BasicInfoText holds the prompts for the basic information section.
type BasicInfoText struct {
	AgentID      Text       `json:"agent_id"`
	MobileNumber Text       `json:"mobile_number"`
	Gender       ChoiceText `json:"gender"`
	ACSelection  Text       `json:"ac_selection"`
}

// ACText holds the six AC-specific question prompts, in form order.
type ACText struct {
	VotingIntention Text `json:"q1"`
	PriorVote       Text `json:"q2"`
	MPVote          Text `json:"q3"`
	MLAPreference   Text `json:"q4"`
	Congress        Text `json:"q5"`
	SocialCategory  Text `json:"q6"`
}

// FinalText holds the two common closing questions with their literal option lists.
type FinalText struct {
	Income   ChoiceText `json:"q7"`
	Language ChoiceText `json:"q8"`
}

// QuestionSet is the complete bilingual question configuration. The JSON layout matches
// questions.json so a deployment can override the built-in texts.
type QuestionSet struct {
	Introduction Text          `json:"introduction"`
	BasicInfo    BasicInfoText `json:"basic_info"`
	AC           ACText        `json:"ac_questions"`
	Final        FinalText     `json:"final_questions"`
}

// DefaultQuestions returns the built-in bilingual question set.
func DefaultQuestions() QuestionSet {
	return QuestionSet{
		Introduction: Text{
			English: "Hello, I am calling on behalf of [caller_name]. We are conducting a short survey about the upcoming assembly election in your constituency. Your responses are confidential and will be used for research purposes only.",
			Bengali: "নমস্কার, আমি [caller_name] এর পক্ষ থেকে ফোন করছি। আপনার নির্বাচনী এলাকার আসন্ন বিধানসভা নির্বাচন সম্পর্কে আমরা একটি সংক্ষিপ্ত সমীক্ষা করছি। আপনার উত্তরগুলি গোপন রাখা হবে এবং শুধুমাত্র গবেষণার কাজে ব্যবহৃত হবে।",
		},
		BasicInfo: BasicInfoText{
			AgentID: Text{
				English: "Agent ID",
				Bengali: "এজেন্ট আইডি",
			},
			MobileNumber: Text{
				English: "Respondent mobile number",
				Bengali: "উত্তরদাতার মোবাইল নম্বর",
			},
			Gender: ChoiceText{
				English: "Gender of the respondent",
				Bengali: "উত্তরদাতার লিঙ্গ",
				Options: []string{"Male", "Female", "Other"},
			},
			ACSelection: Text{
				English: "Select the Assembly Constituency",
				Bengali: "বিধানসভা কেন্দ্র নির্বাচন করুন",
			},
		},
		AC: ACText{
			VotingIntention: Text{
				English: "Which party will you vote for in the upcoming assembly election?",
				Bengali: "আসন্ন বিধানসভা নির্বাচনে আপনি কোন দলকে ভোট দেবেন?",
			},
			PriorVote: Text{
				English: "Which party did you vote for in the 2021 assembly election?",
				Bengali: "২০২১ সালের বিধানসভা নির্বাচনে আপনি কোন দলকে ভোট দিয়েছিলেন?",
			},
			MPVote: Text{
				English: "Which candidate did you vote for in the 2024 Lok Sabha election?",
				Bengali: "২০২৪ সালের লোকসভা নির্বাচনে আপনি কোন প্রার্থীকে ভোট দিয়েছিলেন?",
			},
			MLAPreference: Text{
				English: "Who would you prefer as the MLA of your constituency?",
				Bengali: "আপনার কেন্দ্রের বিধায়ক হিসেবে আপনি কাকে পছন্দ করেন?",
			},
			Congress: Text{
				English: "Which Congress candidate would you prefer for your constituency?",
				Bengali: "আপনার কেন্দ্রের জন্য কংগ্রেসের কোন প্রার্থীকে আপনি পছন্দ করেন?",
			},
			SocialCategory: Text{
				English: "Which social category do you belong to?",
				Bengali: "আপনি কোন সামাজিক শ্রেণীর অন্তর্ভুক্ত?",
			},
		},
		Final: FinalText{
			Income: ChoiceText{
				English: "What is your family's monthly income?",
				Bengali: "আপনার পরিবারের মাসিক আয় কত?",
				Options: []string{
					"Below ₹5,000",
					"₹5,000 - ₹10,000",
					"₹10,000 - ₹20,000",
					"₹20,000 - ₹30,000",
					"₹30,000 - ₹50,000",
					"₹50,000 - ₹75,000",
					"₹75,000 - ₹1,00,000",
					"Above ₹1,00,000",
					"Prefer not to say",
				},
			},
			Language: ChoiceText{
				English: "In which language was this interview conducted?",
				Bengali: "এই সাক্ষাৎকারটি কোন ভাষায় নেওয়া হয়েছে?",
				Options: []string{"Assamese", "Bengali", "Hindi", "English", "Other"},
			},
		},
	}
}

// Check verifies that every prompt is present in both languages and that the closing questions
// carry their literal option lists.
func (q QuestionSet) Check() error {
	texts := map[string]Text{
		"introduction":               q.Introduction,
		"basic_info.agent_id":        q.BasicInfo.AgentID,
		"basic_info.mobile_number":   q.BasicInfo.MobileNumber,
		"basic_info.gender":          {English: q.BasicInfo.Gender.English, Bengali: q.BasicInfo.Gender.Bengali},
		"basic_info.ac_selection":    q.BasicInfo.ACSelection,
		"ac_questions.q1":            q.AC.VotingIntention,
		"ac_questions.q2":            q.AC.PriorVote,
		"ac_questions.q3":            q.AC.MPVote,
		"ac_questions.q4":            q.AC.MLAPreference,
		"ac_questions.q5":            q.AC.Congress,
		"ac_questions.q6":            q.AC.SocialCategory,
		"final_questions.q7":         {English: q.Final.Income.English, Bengali: q.Final.Income.Bengali},
		"final_questions.q8":         {English: q.Final.Language.English, Bengali: q.Final.Language.Bengali},
	}

	for name, text := range texts {
		if strings.TrimSpace(text.English) == "" || strings.TrimSpace(text.Bengali) == "" {
			return fmt.Errorf("question '%s' is missing one or both language variants", name)
		}
	}

	if len(q.BasicInfo.Gender.Options) == 0 {
		return fmt.Errorf("question 'basic_info.gender' has no options")
	}

	if len(q.Final.Income.Options) == 0 {
		return fmt.Errorf("question 'final_questions.q7' has no options")
	}

	if len(q.Final.Language.Options) == 0 {
		return fmt.Errorf("question 'final_questions.q8' has no options")
	}

	return nil
}
