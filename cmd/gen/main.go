// Command gen generates typed gorm query builders for the persistence models.
//
// Grouped catalog reads are written by hand in the postgres product repository
// and are not generated here.
package main

import (
	"flag"

	"ecobazaar/internal/infra/persistence/model"

	"gorm.io/gen"
)

// generatedModels lists the tables that get a typed query builder.
func generatedModels() []any {
	return []any{
		model.UserModel{},
		model.CategoryModel{},
		model.ProductModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.NotificationModel{},
	}
}

func main() {
	outPath := flag.String("out", "./internal/infra/persistence/postgres/query", "Output directory of the generated package")
	flag.Parse()

	g := gen.NewGenerator(gen.Config{
		OutPath:       *outPath,
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface | gen.WithoutContext,
		FieldNullable: true,
	})

	g.ApplyBasic(generatedModels()...)

	g.Execute()
}
