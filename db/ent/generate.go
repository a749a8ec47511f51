package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target: "gen/ent",
			// full import path so the generated sub-packages import each
			// other through the module, not a bare "ent/" prefix
			Package: "github.com/snapledger/snapledger/gen/ent",
			Schema:  "github.com/snapledger/snapledger/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
