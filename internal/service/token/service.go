package token

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domain "randstring/internal/domain/token"
	"randstring/internal/generator/instrumented"
	"randstring/internal/storage"
	"randstring/pkg/randstring"
)

// IssuanceRecorder keeps the ledger of issue requests.
//go:generate go run github.com/vektra/mockery/v3
type IssuanceRecorder interface {
	SaveIssuance(ctx context.Context, iss storage.Issuance) (int64, error)
	Stats(ctx context.Context) ([]storage.AlphabetStats, error)
}

type Options struct {
	DefaultAlphabet string
	DefaultLength   int
	MaxLength       int
	MaxCount        int
	// Unbiased forces rejection sampling for every request.
	Unbiased bool
	// Source is shared by every sampler when set; otherwise each sampler owns a crypto source.
	Source randstring.ByteSource
}

type samplerKey struct {
	alphabet string
	unbiased bool
}

type Service struct {
	log        *slog.Logger
	recorder   IssuanceRecorder
	opts       Options
	generators map[samplerKey]*instrumented.Generator
}

// New creates the token service with one biased and one unbiased sampler per preset.
func New(log *slog.Logger, recorder IssuanceRecorder, opts Options) (*Service, error) {
	const op = "token.New"

	if _, ok := randstring.Preset(opts.DefaultAlphabet); !ok {
		return nil, fmt.Errorf("%s: default %q: %w", op, opts.DefaultAlphabet, domain.ErrUnknownAlphabet)
	}

	s := &Service{
		log:        log,
		recorder:   recorder,
		opts:       opts,
		generators: make(map[samplerKey]*instrumented.Generator),
	}

	for _, name := range randstring.PresetNames() {
		chars, _ := randstring.Preset(name)

		for _, unbiased := range []bool{false, true} {
			sampler, err := randstring.NewSampler(chars, s.samplerOptions(unbiased)...)
			if err != nil {
				_ = s.Close()
				return nil, fmt.Errorf("%s: preset %s: %w", op, name, err)
			}

			s.generators[samplerKey{alphabet: name, unbiased: unbiased}] = instrumented.New(sampler, name)
		}
	}

	return s, nil
}

func (s *Service) samplerOptions(unbiased bool) []randstring.Option {
	var opts []randstring.Option
	if s.opts.Source != nil {
		opts = append(opts, randstring.WithSource(s.opts.Source))
	}
	if unbiased {
		opts = append(opts, randstring.WithUnbiased())
	}
	return opts
}

// Alphabets lists the presets with their bias characteristics.
func (s *Service) Alphabets() []domain.AlphabetInfo {
	names := randstring.PresetNames()
	infos := make([]domain.AlphabetInfo, 0, len(names))

	for _, name := range names {
		chars, _ := randstring.Preset(name)
		bias := randstring.Bias(len(chars))

		infos = append(infos, domain.AlphabetInfo{
			Name:       name,
			Characters: chars,
			Size:       len(chars),
			Uniform:    bias.Uniform(),
			Bias:       bias,
			Default:    name == s.opts.DefaultAlphabet,
		})
	}

	return infos
}

// Stats returns ledger totals per alphabet.
func (s *Service) Stats(ctx context.Context) ([]storage.AlphabetStats, error) {
	const op = "token.Service.Stats"

	stats, err := s.recorder.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}

// Close releases every preset sampler.
func (s *Service) Close() error {
	var errs []error
	for _, g := range s.generators {
		if err := g.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
