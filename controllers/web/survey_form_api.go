package webapi

import (
	"survey-form/controllers"
	"survey-form/lib/form"
	"survey-form/lib/question"
	questionapimodels "survey-form/models/api/question"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type surveyFormController struct {
	controllers.BaseAPIController
	handler question.Provider
}

func InitSurveyFormRouters(app fiber.Router, handler question.Provider) {
	controller := surveyFormController{
		handler: handler,
	}
	app.Get("/", controller.formPage)
	app.Post(form.SubmitPath, controller.submit)
}

// @Summary Форма опроса
// @Tags Опрос
// @Description Статическая html страница с формой
// @Produce html
// @Success 200
// @router / [get]
func (c *surveyFormController) formPage(ctx *fiber.Ctx) error {
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.Status(fiber.StatusOK).Send(form.Page())
}

// @Summary Отправка формы
// @Tags Опрос
// @Description Сохраняет вопрос и ответ, перенаправляет обратно на форму
// @Accept x-www-form-urlencoded
// @Param   question_text  formData  string  true   "Текст вопроса"
// @Param   answer         formData  string  false  "Ответ"
// @Success 303
// @Failure 400
// @Failure 500
// @router /submit [post]
func (c *surveyFormController) submit(ctx *fiber.Ctx) error {
	var payload questionapimodels.QuestionForm
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	id, err := c.handler.Submit(ctx.UserContext(), payload)
	if err != nil {
		if errors.Is(err, questionapimodels.ErrEmptyQuestion) {
			return ctx.Status(fiber.StatusBadRequest).SendString(err.Error())
		}
		return c.SendError(ctx, log.WithField("question_text", payload.QuestionText), err, "Ошибка сохранения вопроса")
	}
	log.WithField("question_id", id).Info("вопрос добавлен")
	return ctx.Redirect("/", fiber.StatusSeeOther)
}
