package initializers

import (
	"context"

	"survey-form/config"
	"survey-form/db"
)

func InitDBConnection(ctx context.Context) *db.Connection {
	conn, err := db.Connect(ctx, config.Conf.Database.URL, config.Conf.Database.Name, config.Conf.DBConnectTimeout())
	if err != nil {
		panic(err.Error())
	}
	return conn
}
