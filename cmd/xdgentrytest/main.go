package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/codelif/xdgentries"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s FILE...", os.Args[0])
	}

	loader := xdgentries.NewLoader()
	for _, path := range os.Args[1:] {
		t := time.Now()
		file, err := loader.Load(path)
		fmt.Printf("First Load: %dus\n", time.Since(t).Microseconds())

		t = time.Now()
		_, _ = loader.Load(path)
		fmt.Printf("Second Load: %dus\n", time.Since(t).Microseconds())

		if err != nil {
			log.Fatalf("%v", err)
		}

		for _, name := range file.Groups() {
			group := file.Group(name)
			fmt.Printf("[%s]\n", name)
			for _, key := range group.Keys() {
				v, err := group.Value(key)
				if err != nil {
					fmt.Printf("  %s: error: %v\n", key, err)
					continue
				}
				fmt.Printf("  %s (%s) = %s\n", key, v.Kind, v)
			}
		}
	}
}
