package main

import (
	"errors"
	"fmt"

	"github.com/mgnsk/indexlist"
)

func main() {
	l := indexlist.New[string](
		indexlist.WithCapacity(8),
	)

	for _, v := range []string{"x", "y"} {
		if err := l.PushBack(v); err != nil {
			panic(err)
		}
	}

	if err := l.InsertBefore("y", "z"); err != nil {
		panic(err)
	}

	// Elements are unique.
	if err := l.PushFront("x"); errors.Is(err, indexlist.ErrDuplicateElement) {
		fmt.Println(err)
	}

	for v := range l.All() {
		fmt.Println(v)
	}

	if v, ok := l.At(1); ok {
		fmt.Println("at 1:", v)
	}

	seq, err := l.BackwardFrom("z")
	if err != nil {
		panic(err)
	}

	for v := range seq {
		fmt.Println(v)
	}
}
