package dto

import (
	"mime/multipart"
	"strconv"
	"strings"

	helper "quizapp_backend/internals/helpers"
)

const MaxQuestions = 10

// Flag nilai boolean-ish dari form/JSON ("1", "0", "true", 1, true).
type Flag string

func (f *Flag) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = ""
		return nil
	}
	if uq, err := strconv.Unquote(s); err == nil {
		s = uq
	}
	*f = Flag(s)
	return nil
}

// Int 1 untuk benar, selain itu 0.
func (f Flag) Int() int {
	switch strings.ToLower(strings.TrimSpace(string(f))) {
	case "1", "true":
		return 1
	}
	return 0
}

type OptionInput struct {
	ID      *uint  `json:"id,omitempty"`
	Title   string `json:"title" validate:"required"`
	Correct Flag   `json:"correct" validate:"required,booleanish"`
}

type QuestionInput struct {
	ID       *uint                 `json:"id,omitempty"`
	Question string                `json:"question" validate:"required"`
	Image    *multipart.FileHeader `json:"-"`
	Options  []OptionInput         `json:"options" validate:"omitempty,dive"`
}

type CreateQuizRequest struct {
	Title     string          `json:"title" validate:"required"`
	Type      string          `json:"type" validate:"required,oneof=quiz essay"`
	Questions []QuestionInput `json:"questions" validate:"required,min=1,max=10,dive"`
}

type UpdateQuizRequest struct {
	Title     string          `json:"title" validate:"required"`
	Questions []QuestionInput `json:"questions" validate:"required,min=1,max=10,dive"`
}

// ===================== FORM (bracket notation) =====================

func questionsFromForm(root *helper.FormNode) []QuestionInput {
	nodes := root.Indexed("questions")
	out := make([]QuestionInput, 0, len(nodes))
	for _, qn := range nodes {
		q := QuestionInput{
			ID:       qn.OptionalUint("id"),
			Question: qn.String("question"),
			Image:    qn.FileOf("image"),
		}
		for _, on := range qn.Indexed("options") {
			q.Options = append(q.Options, OptionInput{
				ID:      on.OptionalUint("id"),
				Title:   on.String("title"),
				Correct: Flag(on.String("correct")),
			})
		}
		out = append(out, q)
	}
	return out
}

func CreateQuizRequestFromForm(root *helper.FormNode) CreateQuizRequest {
	return CreateQuizRequest{
		Title:     root.String("title"),
		Type:      root.String("type"),
		Questions: questionsFromForm(root),
	}
}

func UpdateQuizRequestFromForm(root *helper.FormNode) UpdateQuizRequest {
	return UpdateQuizRequest{
		Title:     root.String("title"),
		Questions: questionsFromForm(root),
	}
}
