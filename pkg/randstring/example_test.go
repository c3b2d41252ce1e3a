package randstring_test

import (
	"fmt"

	"randstring/pkg/randstring"
)

func ExampleNewURLSafe() {
	s, err := randstring.NewURLSafe()
	if err != nil {
		panic(err)
	}
	defer s.Close()

	token, err := s.Generate(22)
	if err != nil {
		panic(err)
	}

	fmt.Println(len(token))
	// Output: 22
}

func ExampleBias() {
	r := randstring.Bias(10)
	fmt.Println(r.Favored, r.Uniform())
	// Output: 6 false
}
