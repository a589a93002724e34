//go:build ignore

// e2e_encoders exercises both phonetic encoders over a shared name
// corpus in a single run: per-name codes, cross-spelling match rates,
// and a concurrent-use check. Run from the project root:
//
//	go run e2e/e2e_encoders.go
package main

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/sbromberger/arcoder/encoder"
)

const (
	concWorkers = 8
	concIter    = 200
	separator   = "=========================================================="
)

// corpus pairs alternate transliterations of the same underlying name.
var corpus = [][2]string{
	{"Sohaib", "Suhayb"},
	{"Mohammed", "Muhamad"},
	{"Abdul-Rahman", "Abdel Rahman"},
	{"Hussein", "Husain"},
	{"Khadija", "Khadeeja"},
	{"Noor", "Nur"},
	{"Aly", "Ali"},
	{"Qadir", "Kadir"},
	{"Yusuf", "Yousef"},
	{"Fatima", "Fatimah"},
}

func main() {
	ok := true
	for _, name := range encoder.Names() {
		enc, err := encoder.ByName(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, "encoder lookup:", err)
			os.Exit(1)
		}

		fmt.Println(separator)
		fmt.Printf("encoder: %s\n", name)

		matches := 0
		for _, pair := range corpus {
			a, b := pair[0], pair[1]
			match := encoder.Equivalent(enc, a, b)
			if match {
				matches++
			}
			fmt.Printf("  %-14s -> %-30s %-14s -> %-30s match=%v\n",
				a, strings.Join(enc.Encode(a), ","),
				b, strings.Join(enc.Encode(b), ","),
				match)
		}
		fmt.Printf("matched %d/%d pairs\n", matches, len(corpus))

		if !concurrentStable(enc) {
			fmt.Println("CONCURRENCY CHECK FAILED")
			ok = false
		}
	}

	if !ok {
		os.Exit(1)
	}
	fmt.Println(separator)
	fmt.Println("all checks passed")
}

// concurrentStable verifies that concurrent encoding of the same name
// always produces the same codes.
func concurrentStable(enc encoder.Encoder) bool {
	want := enc.Encode("Abdul-Rahman")
	stable := true
	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < concWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < concIter; i++ {
				if got := enc.Encode("Abdul-Rahman"); !reflect.DeepEqual(got, want) {
					mu.Lock()
					stable = false
					mu.Unlock()
					return
				}
			}
		}()
	}
	wg.Wait()
	return stable
}
