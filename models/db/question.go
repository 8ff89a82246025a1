package dbmodels

type Question struct {
	ID           string  `bson:"_id,omitempty" json:"id,omitempty"`
	QuestionText string  `bson:"question_text" json:"question_text"`
	Answer       *string `bson:"answer,omitempty" json:"answer,omitempty"`
}
