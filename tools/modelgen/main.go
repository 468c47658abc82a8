package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gen"
	"gorm.io/gorm"
)

func main() {
	var dsn, out, tables string
	flag.StringVar(&dsn, "dsn", os.Getenv("SURVIVALCRAFT_DB_DSN"), "postgres dsn")
	flag.StringVar(&out, "out", "internal/adapter/repo/gorm/model", "output dir for generated models")
	flag.StringVar(&tables, "tables", "world_saves", "comma separated tables to generate; empty means all")
	flag.Parse()

	if dsn == "" {
		log.Fatal("missing --dsn or SURVIVALCRAFT_DB_DSN")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:      out,
		ModelPkgPath: "model",
		Mode:         gen.WithoutContext | gen.WithDefaultQuery,
	})
	g.UseDB(db)
	if names := splitTables(tables); len(names) > 0 {
		for _, name := range names {
			g.ApplyBasic(g.GenerateModel(name))
		}
	} else {
		g.ApplyBasic(g.GenerateAllTable()...)
	}
	g.Execute()

	fmt.Printf("generated gorm models at %s\n", out)
}

func splitTables(raw string) []string {
	out := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
