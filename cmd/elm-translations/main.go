package main

import (
	"context"
	_ "embed"

	"github.com/goaux/headline"
	"github.com/takumakei/elm-translations-go/generator"
)

//go:embed usage.md
var usage string

var version = "v0.1.0"

func main() {
	generator.Main(context.Background(), generator.Config{
		Use:           "elm-translations",
		Short:         headline.Get(usage),
		Long:          usage,
		Version:       version,
		DefaultModule: "Translations",
	})
}
