package main

import (
	"flag"
	"log"

	"github.com/danmuck/modrecon/internal/config"
)

func main() {
	output := flag.String("output", "reconctl.toml", "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing config file")
	input := flag.String("input", "reconctl.toml", "config path for validation")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()

	if *validate {
		if _, err := config.LoadToolConfig(*input); err != nil {
			log.Fatal(err)
		}
		log.Printf("Validated reconctl config at %s", *input)
		return
	}

	if err := config.WriteTemplate(*output, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote reconctl config template to %s", *output)
}
