package handler

import (
	"testing"

	"photo-share-server/internal/config"
)

func TestMain(m *testing.M) {
	config.InitConfig("testdata_no_such_dir")
	m.Run()
}
