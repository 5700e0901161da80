package main

import (
	"sommelier/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.DrinkModel{},
		model.ReviewModel{},
		model.WishModel{},
		model.UserModel{},
		model.CounterUpdateModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
