package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
	"gopkg.in/yaml.v3"
)

// levelgen prints the layout the game would build for a level, as YAML.
// Saving the output as levels/level<N>.yaml pins a generated level so it can
// be edited by hand.
func main() {
	level := flag.Int("level", 1, "level number")
	script := flag.String("script", "", "generator script in levels/ (default "+levels.GeneratorScript+")")
	out := flag.String("o", "", "write to this file instead of stdout")
	summary := flag.Bool("summary", false, "print entity counts instead of the layout")
	flag.Parse()

	catalog := levels.NewCatalog(common.WorldWidth, common.WorldHeight)
	catalog.Script = *script

	layout, err := catalog.Layout(*level)
	if err != nil {
		log.Fatalf("levelgen: %v", err)
	}

	if *summary {
		fmt.Printf("%s: %d platforms, %d moving, %d enemies, %d coins, %d power-ups, spawn (%g, %g)\n",
			layout.Name, len(layout.Platforms), len(layout.MovingPlatforms), len(layout.Enemies),
			len(layout.Coins), len(layout.PowerUps), layout.Spawn.X, layout.Spawn.Y)
		return
	}

	data, err := yaml.Marshal(layout)
	if err != nil {
		log.Fatalf("levelgen: marshal: %v", err)
	}

	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("levelgen: write %s: %v", *out, err)
	}
	log.Printf("wrote %s", *out)
}
