package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run(`malformed uri check`, func(t *testing.T) {
		conn, err := Connect(context.TODO(), "not-a-uri", "survey_db", 100*time.Millisecond)
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "ошибка подключения к БД")
		require.Nil(t, conn)
	})

	t.Run(`unreachable host check`, func(t *testing.T) {
		uri := "mongodb://127.0.0.1:1/?connectTimeoutMS=100&serverSelectionTimeoutMS=100"
		conn, err := Connect(context.TODO(), uri, "survey_db", 100*time.Millisecond)
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "БД не отвечает")
		require.Nil(t, conn)
	})
}
