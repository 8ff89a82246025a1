package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run(`defaults check`, func(t *testing.T) {
		t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
		conf, err := Load()
		require.Nil(t, err)
		require.Equal(t, "mongodb://localhost:27017", conf.Database.URL)
		require.Equal(t, "survey_db", conf.Database.Name)
		require.Equal(t, "questions", conf.Database.Collection)
		require.Equal(t, 10*time.Second, conf.DBConnectTimeout())
		require.Equal(t, 8000, conf.App.Port)
		require.Equal(t, int64(1048576), conf.App.BodyLimit)
		require.Equal(t, "", conf.App.ErrNotifyAddr)
	})

	t.Run(`env override check`, func(t *testing.T) {
		t.Setenv("DATABASE_URL", "mongodb://db:27017")
		t.Setenv("DB_NAME", "survey_test")
		t.Setenv("APP_PORT", "9090")
		t.Setenv("DB_CONNECT_TIMEOUT", "3")
		conf, err := Load()
		require.Nil(t, err)
		require.Equal(t, "survey_test", conf.Database.Name)
		require.Equal(t, 9090, conf.App.Port)
		require.Equal(t, 3*time.Second, conf.DBConnectTimeout())
	})

	t.Run(`missing DATABASE_URL check`, func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		conf, err := Load()
		require.NotNil(t, err)
		require.Nil(t, conf)
	})
}
