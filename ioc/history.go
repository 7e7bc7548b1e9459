package ioc

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/quantlark/oi-sentinel/internal/repo"
)

func InitHistoryRepo() repo.HistoryRepo {
	switch driver := viper.GetString("history.driver"); driver {
	case "csv":
		return repo.NewCSVHistory(viper.GetString("history.path"))
	case "sqlite":
		db := InitDB()
		if err := repo.InitTables(db); err != nil {
			panic(err)
		}
		return repo.NewSnapshotRepo(db)
	default:
		panic(fmt.Sprintf("unknown history driver: %s", driver))
	}
}
