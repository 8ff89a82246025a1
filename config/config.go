package config

import (
	"time"

	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr    string `default:"" env:"APP_HOST"`
		Port          int    `default:"8000" env:"APP_PORT"`
		BodyLimit     int64  `default:"1048576" env:"APP_BODY_LIMIT"`
		ErrNotifyAddr string `default:"" env:"ERR_NOTIFY_ADDR"`
	}
	Database struct {
		URL            string `required:"true" env:"DATABASE_URL"`
		Name           string `default:"survey_db" env:"DB_NAME"`
		Collection     string `default:"questions" env:"DB_COLLECTION"`
		ConnectTimeout int    `default:"10" env:"DB_CONNECT_TIMEOUT"` // секунды
	}
}

func (c *Configuration) DBConnectTimeout() time.Duration {
	return time.Duration(c.Database.ConnectTimeout) * time.Second
}

func configFiles() []string {
	return []string{"config.yml"}
}

// Load читает .env (если есть), config.yml и переменные окружения
func Load(files ...string) (*Configuration, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug(".env не найден, используются переменные окружения")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, files...)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка загрузки конфигурации")
	}
	return conf, nil
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf, err := Load(configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
