package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"randstring/internal/lib/logger/sl"
	"randstring/internal/lib/logger/slogcute"
	"randstring/pkg/randstring"
)

type params struct {
	alphabet   string
	characters string
	length     int
	count      int
	unbiased   bool
	showBias   bool
}

func main() {
	var p params

	flag.StringVar(&p.alphabet, "alphabet", randstring.PresetURLSafe,
		"preset alphabet: "+strings.Join(randstring.PresetNames(), ", "))
	flag.StringVar(&p.characters, "chars", "", "custom alphabet, overrides -alphabet")
	flag.IntVar(&p.length, "length", 22, "length of each string")
	flag.IntVar(&p.count, "n", 1, "number of strings to print")
	flag.BoolVar(&p.unbiased, "unbiased", false, "use rejection sampling instead of modulo reduction")
	flag.BoolVar(&p.showBias, "bias", false, "print the alphabet's modulo bias to stderr")
	flag.Parse()

	opts := slogcute.CuteHandlerOptions{SlogOptions: &slog.HandlerOptions{Level: slog.LevelWarn}}
	log := slog.New(opts.NewCuteHandler(os.Stderr))

	if err := run(os.Stdout, os.Stderr, p); err != nil {
		log.Error("failed to generate", sl.Err(err))
		os.Exit(1)
	}
}

func run(out, diag io.Writer, p params) error {
	chars := p.characters
	if chars == "" {
		preset, ok := randstring.Preset(p.alphabet)
		if !ok {
			return fmt.Errorf("unknown alphabet %q", p.alphabet)
		}
		chars = preset
	}

	var opts []randstring.Option
	if p.unbiased {
		opts = append(opts, randstring.WithUnbiased())
	}

	s, err := randstring.NewSampler(chars, opts...)
	if err != nil {
		return err
	}
	defer s.Close()

	if p.showBias {
		b := s.Bias()
		fmt.Fprintf(diag, "size=%d uniform=%t favored=%d p(favored)=%.6f p(other)=%.6f\n",
			b.Size, b.Uniform(), b.Favored, b.FavoredProbability, b.OtherProbability)
	}

	w := bufio.NewWriter(out)

	for i := 0; i < p.count; i++ {
		str, err := s.Generate(p.length)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintln(w, str); err != nil {
			return err
		}
	}

	return w.Flush()
}
