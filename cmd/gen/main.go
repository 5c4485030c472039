package main

import (
	"lightmap/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.LightMarkerModel{},
		model.UserAccountModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
