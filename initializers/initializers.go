package initializers

import (
	"context"

	"survey-form/config"
	"survey-form/db"
	"survey-form/fiberlog"
	"survey-form/lib/question"
	questionstore "survey-form/lib/question/store"
)

type Services struct {
	LoggerConfig *fiberlog.Config
	DB           *db.Connection
	Question     question.Provider
}

func InitAllServices(ctx context.Context) *Services {
	loggerConfig := InitLogger()
	config.InitConfig()
	conn := InitDBConnection(ctx)
	store := questionstore.NewInstance(conn.Collection(config.Conf.Database.Collection))
	return &Services{
		LoggerConfig: loggerConfig,
		DB:           conn,
		Question:     question.NewHandler(store),
	}
}
