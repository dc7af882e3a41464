package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"t9dict/internal/app/infrastructure/keypad"
	"t9dict/pkg/logger"
)

func main() {
	words := flag.String("words", "words.txt", "newline-delimited word list")
	dump := flag.Bool("dump", false, "print the trie before the lookups")
	encode := flag.Bool("encode", false, "treat arguments as words and print their key sequences")
	flag.Parse()

	log := logger.New()

	if *encode {
		for _, w := range flag.Args() {
			keys, err := keypad.Encode(w)
			if err != nil {
				log.Error("Cannot encode word", err, "word", w)
				continue
			}
			fmt.Printf("%s\t%s\n", w, keys)
		}
		return
	}

	t, err := keypad.BuildFile(*words, keypad.WithRejectHandler(func(line int, word string, err error) {
		log.Warn("Word rejected", "line", line, "word", word, "reason", err.Error())
	}))
	if err != nil {
		log.Error("Error reading word list", err, "path", *words)
	}
	defer t.Clear()

	if *dump {
		if err := t.Dump(os.Stdout); err != nil {
			log.Fatal("Error dumping trie", err)
		}
	}

	for _, keys := range flag.Args() {
		if !strings.HasSuffix(keys, string(keypad.Sentinel)) {
			keys += string(keypad.Sentinel)
		}

		n := t.Search(keys)
		if found := n.Words(); len(found) > 0 {
			fmt.Printf("%s\t%s\n", keys, strings.Join(found, " "))
		} else {
			fmt.Printf("%s\tnot found\n", keys)
		}
	}
}
