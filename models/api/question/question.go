package questionapimodels

import (
	"strings"

	"github.com/pkg/errors"
	dbmodels "survey-form/models/db"
)

var ErrEmptyQuestion = errors.New("не указан текст вопроса")

// QuestionForm поля формы опроса
type QuestionForm struct {
	QuestionText string `form:"question_text" json:"question_text"`
	Answer       string `form:"answer" json:"answer"`
}

func (q QuestionForm) Validate() error {
	if strings.TrimSpace(q.QuestionText) == "" {
		return ErrEmptyQuestion
	}
	return nil
}

// ToDB пустой ответ не сохраняется
func (q QuestionForm) ToDB() dbmodels.Question {
	rec := dbmodels.Question{
		QuestionText: q.QuestionText,
	}
	if strings.TrimSpace(q.Answer) != "" {
		answer := q.Answer
		rec.Answer = &answer
	}
	return rec
}
