package question

import (
	"context"

	questionstore "survey-form/lib/question/store"
	initchecker "survey-form/lib/utils/init-checker"
	questionapimodels "survey-form/models/api/question"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Submit(ctx context.Context, form questionapimodels.QuestionForm) (id string, err error)
}

func NewHandler(store questionstore.Provider) Provider {
	instance := impl{
		store: store,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store questionstore.Provider
}

func (i impl) Submit(ctx context.Context, form questionapimodels.QuestionForm) (id string, err error) {
	if err = form.Validate(); err != nil {
		return "", err
	}
	id, err = i.store.Insert(ctx, form.ToDB())
	if err != nil {
		return "", err
	}
	log.WithField("question_id", id).Debug("вопрос сохранен")
	return id, nil
}
